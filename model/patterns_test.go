package model

import (
	"math/rand"
	"testing"
)

func TestPatternCellsWrap(t *testing.T) {
	cells, err := PatternCells("block", 3, 3, 4, 4)
	if err != nil {
		t.Fatalf("PatternCells: %v", err)
	}
	want := map[Point]bool{{3, 3}: true, {0, 3}: true, {3, 0}: true, {0, 0}: true}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for _, c := range cells {
		if !want[c] {
			t.Errorf("unexpected cell %v", c)
		}
	}
}

func TestPatternCellsErrors(t *testing.T) {
	if _, err := PatternCells("pulsar-xl", 0, 0, 10, 10); err == nil {
		t.Error("unknown pattern: want error")
	}
	if _, err := PatternCells("block", 0, 0, 0, 10); err == nil {
		t.Error("empty grid: want error")
	}
}

func TestPatternNamesSorted(t *testing.T) {
	names := PatternNames()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestStillLifePatternsAreStable(t *testing.T) {
	for _, name := range []string{"block", "beehive"} {
		t.Run(name, func(t *testing.T) {
			cells, err := PatternCells(name, 2, 2, 10, 10)
			if err != nil {
				t.Fatal(err)
			}
			g := gridWith(10, 10, cells...)
			if got := g.Step().Outcome(); got != Stabilized {
				t.Errorf("Outcome = %v, want %v", got, Stabilized)
			}
		})
	}
}

func TestRandomCellsDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := RandomCells(10, 10, 0, rng); len(got) != 0 {
		t.Errorf("density 0: got %d cells", len(got))
	}
	if got := RandomCells(10, 10, 1, rng); len(got) != 100 {
		t.Errorf("density 1: got %d cells, want 100", len(got))
	}
}
