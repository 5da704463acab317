package sim

import (
	"math/rand"
	"time"
)

// Die is one grid cell with its own independent re-roll timer and
// current face value.
type Die struct {
	X, Y float32
	Size float32

	UpdateInterval time.Duration
	LastUpdate     time.Time

	Value int
	sides int
}

func newDie(x, y, size float32, interval time.Duration, sides int, now time.Time, rng *rand.Rand) *Die {
	return &Die{
		X:              x,
		Y:              y,
		Size:           size,
		UpdateInterval: interval,
		LastUpdate:     now,
		Value:          rng.Intn(sides) + 1,
		sides:          sides,
	}
}

// Update re-rolls the face once the update interval has elapsed.
// Returns true if a re-roll happened, false if the die is not due yet.
func (d *Die) Update(now time.Time, rng *rand.Rand) bool {
	if now.Sub(d.LastUpdate) < d.UpdateInterval {
		return false
	}
	d.Value = rng.Intn(d.sides) + 1
	d.LastUpdate = now
	return true
}
