package model

import (
	"testing"

	"github.com/sheikhrachel/canvas-gol/rules"
)

func gridWith(width, height int, alive ...Point) *Grid {
	g := NewGrid(width, height)
	for _, p := range alive {
		g.Set(p.X, p.Y, true)
	}
	return g
}

func TestNeighborCountWrapsHorizontally(t *testing.T) {
	g := gridWith(5, 5, Point{0, 2}, Point{4, 2})

	if got := g.NeighborCount(0, 2); got != 1 {
		t.Errorf("NeighborCount(0, 2) = %d, want 1 (neighbour at last column)", got)
	}
	if got := g.NeighborCount(4, 2); got != 1 {
		t.Errorf("NeighborCount(4, 2) = %d, want 1 (neighbour at column 0)", got)
	}
}

func TestNeighborCountWrapsVertically(t *testing.T) {
	g := gridWith(5, 5, Point{2, 0}, Point{2, 4})

	if got := g.NeighborCount(2, 0); got != 1 {
		t.Errorf("NeighborCount(2, 0) = %d, want 1", got)
	}
	if got := g.NeighborCount(2, 4); got != 1 {
		t.Errorf("NeighborCount(2, 4) = %d, want 1", got)
	}
}

func TestNeighborCountWrapsCorners(t *testing.T) {
	g := gridWith(4, 4, Point{3, 3})

	if got := g.NeighborCount(0, 0); got != 1 {
		t.Errorf("NeighborCount(0, 0) = %d, want 1 (diagonal across both edges)", got)
	}
}

func TestNeighborCountNeverExceedsEight(t *testing.T) {
	g := NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, true)
		}
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := g.NeighborCount(x, y); got < 0 || got > 8 {
				t.Fatalf("NeighborCount(%d, %d) = %d, out of [0, 8]", x, y, got)
			}
		}
	}
}

func TestNextStateRuleTable(t *testing.T) {
	// centre cell (2, 2) of a 5x5 grid, neighbours taken from the ring around it
	ring := []Point{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}

	tests := []struct {
		name      string
		alive     bool
		neighbors int
		want      uint8
	}{
		{"live, 1 neighbour dies", true, 1, rules.Dead},
		{"live, 2 neighbours lives", true, 2, rules.Alive},
		{"live, 3 neighbours lives", true, 3, rules.Alive},
		{"live, 4 neighbours dies", true, 4, rules.Dead},
		{"dead, 3 neighbours born", false, 3, rules.Alive},
		{"dead, 2 neighbours stays dead", false, 2, rules.Dead},
		{"dead, 4 neighbours stays dead", false, 4, rules.Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridWith(5, 5, ring[:tt.neighbors]...)
			g.Set(2, 2, tt.alive)
			if got := g.NextState(2, 2); got != tt.want {
				t.Errorf("NextState = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStepEmptyGridIsExtinct(t *testing.T) {
	g := NewGrid(6, 4)

	res := g.Step()
	if len(res.Changed) != 0 {
		t.Fatalf("Changed = %v, want empty", res.Changed)
	}
	if res.AnyAlive {
		t.Error("AnyAlive = true, want false")
	}
	if res.Outcome() != Extinct {
		t.Errorf("Outcome = %v, want %v", res.Outcome(), Extinct)
	}
}

func TestStepBlockIsStabilized(t *testing.T) {
	g := gridWith(4, 4, Point{1, 1}, Point{2, 1}, Point{1, 2}, Point{2, 2})

	res := g.Step()
	if len(res.Changed) != 0 {
		t.Fatalf("Changed = %v, want empty", res.Changed)
	}
	if !res.AnyAlive || res.Population != 4 {
		t.Errorf("AnyAlive = %v, Population = %d, want true, 4", res.AnyAlive, res.Population)
	}
	if res.Outcome() != Stabilized {
		t.Errorf("Outcome = %v, want %v", res.Outcome(), Stabilized)
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	g := gridWith(5, 5, Point{1, 2}, Point{2, 2}, Point{3, 2})

	res := g.Step()
	if res.Outcome() != Continuing {
		t.Fatalf("Outcome = %v, want %v", res.Outcome(), Continuing)
	}
	if len(res.Changed) != 4 {
		t.Fatalf("len(Changed) = %d, want 4", len(res.Changed))
	}
	for _, p := range []Point{{2, 1}, {2, 2}, {2, 3}} {
		if !g.IsAlive(p.X, p.Y) {
			t.Errorf("cell %v dead after step, want alive", p)
		}
	}
	if g.IsAlive(1, 2) || g.IsAlive(3, 2) {
		t.Error("horizontal ends still alive after step")
	}

	g.Step()
	for _, p := range []Point{{1, 2}, {2, 2}, {3, 2}} {
		if !g.IsAlive(p.X, p.Y) {
			t.Errorf("cell %v dead after second step, want alive", p)
		}
	}
}

func TestStepUsesPreviousGeneration(t *testing.T) {
	// both cells die in the same generation, each judged on the old one
	g := gridWith(6, 6, Point{0, 0}, Point{1, 0})

	res := g.Step()
	if res.Outcome() != Continuing || len(res.Changed) != 2 {
		t.Fatalf("got %v with %d changes, want continuing with 2", res.Outcome(), len(res.Changed))
	}
	if g.CountLivingCells() != 0 {
		t.Errorf("CountLivingCells = %d, want 0", g.CountLivingCells())
	}
}

func TestStepReportsChangedStates(t *testing.T) {
	g := gridWith(5, 5, Point{1, 2}, Point{2, 2}, Point{3, 2})

	for _, c := range g.Step().Changed {
		if got := g.Get(c.X, c.Y); got != c.State {
			t.Errorf("cell (%d, %d) = %d, diff says %d", c.X, c.Y, got, c.State)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g := NewGrid(3, 3)

	if got := g.Toggle(1, 1); got != rules.Alive {
		t.Fatalf("first Toggle = %d, want alive", got)
	}
	if got := g.Toggle(1, 1); got != rules.Dead {
		t.Fatalf("second Toggle = %d, want dead", got)
	}
	if got := g.Toggle(7, 7); got != rules.Dead {
		t.Errorf("out of range Toggle = %d, want dead", got)
	}
}

func TestResetKeepsDimensionsAndClears(t *testing.T) {
	g := gridWith(3, 2, Point{0, 0}, Point{2, 1})

	g.Reset(3, 2)
	if g.CountLivingCells() != 0 {
		t.Errorf("CountLivingCells = %d after reset, want 0", g.CountLivingCells())
	}
	if g.GetWidth() != 3 || g.GetHeight() != 2 {
		t.Errorf("size = %dx%d, want 3x2", g.GetWidth(), g.GetHeight())
	}
}

func TestGridPoolReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(4, 3)
	g.Set(1, 1, true)

	GridToPool(g, pool)
	GridToPool(nil, pool)
	GridToPool(g, nil)

	got := pool.Get(4, 3)
	if got.GetWidth() != 4 || got.GetHeight() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", got.GetWidth(), got.GetHeight())
	}
	if got.CountLivingCells() != 0 {
		t.Errorf("CountLivingCells = %d, want 0", got.CountLivingCells())
	}
}
