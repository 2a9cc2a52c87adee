// carve generates a solved cube, carves a puzzle out of it and prints
// the slices of one axis. Useful for eyeballing difficulty tiers and
// reproducing seeds from bug reports.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/askarov/sudocube-server/internal/carver"
	"github.com/askarov/sudocube-server/internal/cube"
	"github.com/askarov/sudocube-server/internal/generator"
)

var log = logrus.New()

var (
	seed       = flag.Uint64("seed", 1, "generation seed")
	daily      = flag.Bool("daily", false, "use today's daily seed instead of -seed")
	difficulty = flag.String("difficulty", "medium", "difficulty tier")
	axisFlag   = flag.String("axis", "xy", "axis of the slices to print (xy, xz, yz)")
	solution   = flag.Bool("solution", false, "print the solved cube instead of the puzzle")
)

func pickAxis(name string) (cube.Axis, error) {
	for _, axis := range cube.Axes {
		if axis.String() == name {
			return axis, nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", name)
}

func main() {
	flag.Parse()

	axis, err := pickAxis(*axisFlag)
	if err != nil {
		log.Fatal(err)
	}

	tier, err := carver.ByName(*difficulty)
	if err != nil {
		log.Fatal(err)
	}

	s := *seed
	if *daily {
		s = generator.DailySeed(time.Now().UTC())
	}

	solved := generator.Generate(s)
	if err := generator.Verify(solved); err != nil {
		log.Fatal("generator produced an invalid cube: ", err)
	}

	out := solved
	if !*solution {
		out = carver.Carve(solved, tier, s)
	}

	log.WithFields(logrus.Fields{
		"seed":       s,
		"difficulty": tier.Name,
		"givens":     out.CountGivens(),
		"empty":      out.CountEmpty(),
	}).Info("carved")

	for slice := range cube.Size {
		fmt.Printf("%s slice %d\n%s\n", axis, slice, out.SliceString(axis, slice))
	}
}
