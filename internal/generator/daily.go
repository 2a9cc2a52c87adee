package generator

import (
	"fmt"
	"hash/fnv"
	"time"
)

// DailySeed derives the seed for the daily puzzle of the given date.
// The same calendar day always maps to the same seed.
func DailySeed(t time.Time) uint64 {
	key := fmt.Sprintf("daily_%d_%d_%d", t.Year(), int(t.Month()), t.Day())
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}
