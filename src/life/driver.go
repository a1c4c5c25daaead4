package life

import (
	"context"
	"time"
)

//Status represents the state of the simulation at a concrete moment
type Status struct {
	Generation int
	LiveCells  int
	StepTime   time.Duration //time spent computing this generation
}

//Renderer is the interface to anything that can display one generation
type Renderer interface {
	Draw(g Grid, st Status) error
}

//Driver owns the generation loop: draw, wait, step, repeat
type Driver struct {
	grid     Grid
	renderer Renderer
	interval time.Duration
	limit    int //0 means unlimited
}

//NewDriver creates a Driver over the given generation-0 grid
func NewDriver(g Grid, r Renderer, c Config) *Driver {
	return &Driver{
		grid:     g,
		renderer: r,
		interval: c.Interval,
		limit:    c.Iterations,
	}
}

//Grid returns the generation the Driver currently holds
func (d *Driver) Grid() Grid {
	return d.grid
}

//Run executes the loop until the iteration limit is exceeded or ctx is
//canceled. Each pass draws the current grid, waits one interval (the
//wait aborts as soon as ctx is done), bumps the generation counter and
//computes the next grid. The counter starts at 0 and a limit of n means
//generations 0..n are all rendered.
//Returns the number of completed generations; the error is ctx.Err() on
//interruption, a renderer failure, or nil on normal completion.
func (d *Driver) Run(ctx context.Context) (int, error) {
	generations := 0
	stepTime := time.Duration(0)
	timer := time.NewTimer(d.interval)
	defer timer.Stop()

	for {
		st := Status{
			Generation: generations,
			LiveCells:  d.grid.LiveCells(),
			StepTime:   stepTime,
		}
		if err := d.renderer.Draw(d.grid, st); err != nil {
			return generations, err
		}

		select {
		case <-ctx.Done():
			return generations, ctx.Err()
		case <-timer.C:
		}
		timer.Reset(d.interval)

		generations++
		if d.limit != 0 && generations > d.limit {
			return generations, nil
		}

		start := time.Now()
		d.grid = d.grid.Step()
		stepTime = time.Since(start)
	}
}
