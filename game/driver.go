// Package game drives a Game of Life board: it toggles cells while idle,
// animates generations while running and reports how a run ended.
package game

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/canvas-gol/model"
	"github.com/sheikhrachel/canvas-gol/sched"
	"github.com/sheikhrachel/canvas-gol/utils"
)

// DefaultFPS is the number of generations drawn per second
const DefaultFPS = 5

// State of the driver
type State int

const (
	// Idle accepts cell toggles
	Idle State = iota
	// Running animates generations, toggles are ignored
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Scheduler delays ticks without blocking. sched.Loop implements it.
type Scheduler interface {
	After(d time.Duration, fn func()) sched.Handle
	Cancel(h sched.Handle) bool
}

// Notifier tells the user how a run ended
type Notifier interface {
	Notify(outcome model.Outcome)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(outcome model.Outcome)

func (f NotifierFunc) Notify(outcome model.Outcome) { f(outcome) }

// Options are the construction parameters of a Driver
type Options struct {
	Rows     int
	Cols     int
	CellSize int
	FPS      int
}

// Driver owns the grid and runs the idle/running state machine. It is not
// safe for concurrent use; every call must come from the scheduler's goroutine.
type Driver struct {
	opts     Options
	interval time.Duration

	grid  *model.Grid
	pool  *model.GridPool
	stats *utils.Stats
	now   func() time.Time

	renderer  model.Renderer
	scheduler Scheduler
	notifier  Notifier

	state      State
	generation int
	lastResult model.Outcome

	// pending is the scheduled tick, valid while hasPending is set. epoch is
	// bumped on every start and reset so a tick from an earlier run is ignored.
	pending    sched.Handle
	hasPending bool
	epoch      uint64
}

// New creates an idle driver with an all-dead grid and draws it
func New(opts Options, renderer model.Renderer, scheduler Scheduler, notifier Notifier) (*Driver, error) {
	if opts.FPS == 0 {
		opts.FPS = DefaultFPS
	}
	switch {
	case opts.Rows <= 0 || opts.Cols <= 0:
		return nil, errors.Errorf("[New] grid must be at least 1x1, got %dx%d", opts.Cols, opts.Rows)
	case opts.CellSize <= 0:
		return nil, errors.Errorf("[New] cell size must be positive, got %d", opts.CellSize)
	case opts.FPS < 0:
		return nil, errors.Errorf("[New] fps must be positive, got %d", opts.FPS)
	case renderer == nil || scheduler == nil:
		return nil, errors.New("[New] renderer and scheduler are required")
	}
	if notifier == nil {
		notifier = NotifierFunc(func(model.Outcome) {})
	}

	d := &Driver{
		opts:      opts,
		interval:  time.Second / time.Duration(opts.FPS),
		pool:      model.NewGridPool(),
		stats:     utils.NewStats(),
		now:       time.Now,
		renderer:  renderer,
		scheduler: scheduler,
		notifier:  notifier,
	}
	d.grid = d.pool.Get(opts.Cols, opts.Rows)
	d.renderer.DrawGridLines()
	d.renderer.Present()
	return d, nil
}

// State returns the current state
func (d *Driver) State() State {
	return d.state
}

// Grid returns the current generation. Callers must not modify it.
func (d *Driver) Grid() *model.Grid {
	return d.grid
}

// Stats returns the statistics of the current run
func (d *Driver) Stats() *utils.Stats {
	return d.stats
}

// Generation returns the number of generations computed since the last reset
func (d *Driver) Generation() int {
	return d.generation
}

// LastOutcome returns the outcome of the most recent generation
func (d *Driver) LastOutcome() model.Outcome {
	return d.lastResult
}

// Interval returns the delay between two generations
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// HasPendingTick reports whether a generation is scheduled
func (d *Driver) HasPendingTick() bool {
	return d.hasPending
}

// Options returns the construction parameters
func (d *Driver) Options() Options {
	return d.opts
}

// Start begins the animation. The first generation is computed right away.
func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	d.cancelPending()
	d.state = Running
	d.tick(d.epoch)
}

// Reset stops any run and empties the board
func (d *Driver) Reset() {
	d.cancelPending()
	d.state = Idle
	d.generation = 0
	d.lastResult = model.Continuing
	d.stats.Reset(d.now())

	d.renderer.Clear()
	model.GridToPool(d.grid, d.pool)
	d.grid = d.pool.Get(d.opts.Cols, d.opts.Rows)
	d.renderer.DrawGridLines()
	d.renderer.Present()
}

// Toggle flips the cell under a pixel position while idle and redraws it.
// It reports whether a cell was flipped.
func (d *Driver) Toggle(pixelX, pixelY int) bool {
	if !d.toggle(pixelX, pixelY) {
		return false
	}
	d.renderer.Present()
	return true
}

func (d *Driver) toggle(pixelX, pixelY int) bool {
	if d.state != Idle || pixelX < 0 || pixelY < 0 {
		return false
	}
	x, y := pixelX/d.opts.CellSize, pixelY/d.opts.CellSize
	if x >= d.opts.Cols || y >= d.opts.Rows {
		return false
	}

	d.drawCell(x, y, d.grid.Toggle(x, y))
	return true
}

// cancelPending drops the scheduled tick and invalidates any callback already
// in flight
func (d *Driver) cancelPending() {
	if d.hasPending {
		d.scheduler.Cancel(d.pending)
		d.hasPending = false
	}
	d.epoch++
}

func (d *Driver) drawCell(x, y int, state uint8) {
	size := d.opts.CellSize
	d.renderer.DrawCell(x*size, y*size, model.CellColor(state))
}

func (d *Driver) tick(epoch uint64) {
	if epoch != d.epoch || d.state != Running {
		return
	}
	d.hasPending = false

	res := d.grid.Step()
	d.lastResult = res.Outcome()

	if d.lastResult != model.Continuing {
		d.state = Idle
		d.notifier.Notify(d.lastResult)
		if d.lastResult == model.Extinct {
			d.Reset()
			d.lastResult = model.Extinct
		}
		return
	}

	d.generation++
	d.stats.Update(d.generation, res.Population, d.now())
	for _, c := range res.Changed {
		d.drawCell(c.X, c.Y, c.State)
	}
	d.renderer.Present()

	d.pending = d.scheduler.After(d.interval, func() { d.tick(epoch) })
	d.hasPending = true
}
