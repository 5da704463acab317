package sim

import (
	"fmt"
	"math/rand"
	"time"
)

// Phase tells whether the dice are still rolling.
type Phase int

const (
	Active Phase = iota
	Finished
)

// Event is one journal entry, tagged with the roll count it happened at.
type Event struct {
	Rolls   int
	Type    string
	Message string
}

// Stats is a point-in-time summary of the tally.
type Stats struct {
	Rolls     int
	Low       int
	High      int
	LowShare  float64
	HighShare float64
}

// Simulation owns the dice grid, the tally and the phase flag. It is
// single-writer: only Step mutates it, once per frame.
type Simulation struct {
	cfg Config
	rng *rand.Rand

	Dice []*Die

	RollCount int
	CountLow  int
	CountHigh int

	phase  Phase
	events []Event
}

// New builds the row-major dice grid. Die 0 is the slowest (BaseInterval),
// the last die the fastest (MinInterval), with intervals linearly
// interpolated in between. Positions are relative to the grid origin.
func New(cfg Config, now time.Time) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	n := cfg.Rows * cfg.Columns
	span := cfg.BaseInterval - cfg.MinInterval
	dice := make([]*Die, 0, n)
	for i := 0; i < n; i++ {
		col := i % cfg.Columns
		row := i / cfg.Columns
		x := float32(col) * (cfg.DieSize + cfg.Spacing)
		y := float32(row) * (cfg.DieSize + cfg.Spacing)
		interval := cfg.BaseInterval
		if n > 1 {
			interval -= time.Duration(float64(i) / float64(n-1) * float64(span))
		}
		dice = append(dice, newDie(x, y, cfg.DieSize, interval, cfg.Sides, now, rng))
	}

	s := &Simulation{cfg: cfg, rng: rng, Dice: dice}
	s.addEvent("START", fmt.Sprintf("%dx%d grid, rolling to %d", cfg.Rows, cfg.Columns, cfg.MaxRolls))
	return s
}

// Step advances the simulation one frame. Each die that re-rolls counts as
// one global roll and lands in the low or high bucket. The moment the roll
// cap is reached the phase flips to Finished and the remaining dice of this
// frame are left untouched.
func (s *Simulation) Step(now time.Time) {
	if s.phase == Finished {
		return
	}
	for _, d := range s.Dice {
		if !d.Update(now, s.rng) {
			continue
		}
		s.RollCount++
		if d.Value <= s.cfg.LowThreshold {
			s.CountLow++
		} else {
			s.CountHigh++
		}
		if s.RollCount >= s.cfg.MaxRolls {
			s.phase = Finished
			s.addEvent("END", fmt.Sprintf("cap reached (%d rolls)", s.cfg.MaxRolls))
			break
		}
		if s.RollCount%100 == 0 {
			st := s.Stats()
			s.addEvent("MILESTONE", fmt.Sprintf("%d rolls: low %.1f%% / high %.1f%%",
				st.Rolls, st.LowShare*100, st.HighShare*100))
		}
	}
}

// Phase reports whether the simulation is still Active or has Finished.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Stats summarizes the current tally.
func (s *Simulation) Stats() Stats {
	st := Stats{Rolls: s.RollCount, Low: s.CountLow, High: s.CountHigh}
	if st.Rolls > 0 {
		st.LowShare = float64(st.Low) / float64(st.Rolls)
		st.HighShare = float64(st.High) / float64(st.Rolls)
	}
	return st
}

// Events returns the journal, oldest first.
func (s *Simulation) Events() []Event {
	return s.events
}

func (s *Simulation) addEvent(eventType, message string) {
	s.events = append(s.events, Event{
		Rolls:   s.RollCount,
		Type:    eventType,
		Message: message,
	})
	if len(s.events) > 10 {
		s.events = s.events[1:]
	}
}

// BarHeight converts a bucket count into a bar height proportional to the
// roll cap. The count never exceeds the cap, so the result never exceeds
// maxHeight.
func BarHeight(count, maxRolls int, maxHeight float32) float32 {
	return float32(count) / float32(maxRolls) * maxHeight
}
