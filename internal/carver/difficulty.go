package carver

import "fmt"

// Difficulty maps a named tier to its carving targets and error
// budget. TargetGivens is the number of clue cells the carver aims to
// leave (out of 729); MinGivensPerSlice is a hard floor applied
// independently to each of the 27 slices; MaxErrors is how many
// wrong placements a game tolerates before it is lost.
type Difficulty struct {
	Name              string `json:"name"`
	TargetGivens      int    `json:"target_givens"`
	MinGivensPerSlice int    `json:"min_givens_per_slice"`
	MaxErrors         int    `json:"max_errors"`
}

var (
	Beginner = Difficulty{"beginner", 480, 50, 10}
	Easy     = Difficulty{"easy", 400, 40, 7}
	Medium   = Difficulty{"medium", 320, 32, 5}
	Hard     = Difficulty{"hard", 240, 24, 3}
	Expert   = Difficulty{"expert", 180, 17, 1}
)

// Tiers lists the difficulties from most to least lenient.
var Tiers = []Difficulty{Beginner, Easy, Medium, Hard, Expert}

// ByName resolves a tier by its name.
func ByName(name string) (Difficulty, error) {
	for _, d := range Tiers {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}
