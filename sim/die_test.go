package sim

import (
	"math/rand"
	"testing"
	"time"
)

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestUpdateBeforeIntervalIsNoOp(t *testing.T) {
	t0 := time.Unix(0, 0)
	rng := testRNG(1)
	d := newDie(0, 0, 40, time.Second, 20, t0, rng)

	valueBefore := d.Value
	if d.Update(t0.Add(500*time.Millisecond), rng) {
		t.Fatal("expected no re-roll before the interval elapsed")
	}
	if d.Value != valueBefore {
		t.Errorf("value changed from %d to %d without a re-roll", valueBefore, d.Value)
	}
	if !d.LastUpdate.Equal(t0) {
		t.Errorf("last update moved to %v without a re-roll", d.LastUpdate)
	}
}

func TestUpdateAfterIntervalRerolls(t *testing.T) {
	t0 := time.Unix(0, 0)
	rng := testRNG(1)
	d := newDie(0, 0, 40, time.Second, 20, t0, rng)

	now := t0.Add(time.Second)
	if !d.Update(now, rng) {
		t.Fatal("expected a re-roll once the interval elapsed")
	}
	if !d.LastUpdate.Equal(now) {
		t.Errorf("last update = %v, want %v", d.LastUpdate, now)
	}
}

func TestValueStaysInRange(t *testing.T) {
	t0 := time.Unix(0, 0)
	rng := testRNG(2)
	d := newDie(0, 0, 40, time.Second, 20, t0, rng)

	prev := d.LastUpdate
	now := t0
	for i := 0; i < 500; i++ {
		now = now.Add(time.Second)
		d.Update(now, rng)
		if d.Value < 1 || d.Value > 20 {
			t.Fatalf("value %d out of range after %d updates", d.Value, i+1)
		}
		if d.LastUpdate.Before(prev) {
			t.Fatalf("last update went backwards: %v before %v", d.LastUpdate, prev)
		}
		prev = d.LastUpdate
	}
}
