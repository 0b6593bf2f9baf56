package tracker

import (
	"math/rand"
	"testing"

	"github.com/sandeepkv93/habitd/internal/model"
)

func grid(marked ...int) []bool {
	days := make([]bool, model.ChallengeDayCount)
	for _, i := range marked {
		days[i] = true
	}
	return days
}

func TestComputeStreaksScenario(t *testing.T) {
	// true,true,false,true,true,true then padding of false.
	days := grid(0, 1, 3, 4, 5)
	current, longest := ComputeStreaks(days)
	if longest != 3 {
		t.Fatalf("longest = %d, want 3", longest)
	}
	if current != 0 {
		t.Fatalf("current = %d, want 0 (last day unmarked)", current)
	}
}

func TestComputeStreaksRunEndingOnLastDay(t *testing.T) {
	days := grid(85, 86, 87, 88, 89)
	current, longest := ComputeStreaks(days)
	if current != 5 || longest != 5 {
		t.Fatalf("got current=%d longest=%d, want 5/5", current, longest)
	}

	// An earlier, longer run never counts as current.
	days = grid(10, 11, 12, 13, 14, 15, 89)
	current, longest = ComputeStreaks(days)
	if longest != 6 {
		t.Fatalf("longest = %d, want 6", longest)
	}
	if current != 1 {
		t.Fatalf("current = %d, want 1", current)
	}
}

func TestComputeStreaksEdges(t *testing.T) {
	current, longest := ComputeStreaks(make([]bool, model.ChallengeDayCount))
	if current != 0 || longest != 0 {
		t.Fatalf("empty grid: got %d/%d, want 0/0", current, longest)
	}

	full := make([]bool, model.ChallengeDayCount)
	for i := range full {
		full[i] = true
	}
	current, longest = ComputeStreaks(full)
	if current != model.ChallengeDayCount || longest != model.ChallengeDayCount {
		t.Fatalf("full grid: got %d/%d, want 90/90", current, longest)
	}
}

func TestComputeStreaksProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		days := make([]bool, model.ChallengeDayCount)
		for i := range days {
			days[i] = rng.Intn(2) == 1
		}
		current, longest := ComputeStreaks(days)
		if longest < current {
			t.Fatalf("trial %d: longest %d < current %d", trial, longest, current)
		}
		if !days[len(days)-1] && current != 0 {
			t.Fatalf("trial %d: last day false but current = %d", trial, current)
		}
		if days[len(days)-1] && current == 0 {
			t.Fatalf("trial %d: last day true but current = 0", trial)
		}
	}
}
