package life

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

//frameRecorder captures every rendered generation and can trigger a
//callback per frame, standing in for the terminal
type frameRecorder struct {
	frames  []Status
	onFrame func(st Status)
	err     error
}

func (r *frameRecorder) Draw(_ Grid, st Status) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, st)
	if r.onFrame != nil {
		r.onFrame(st)
	}
	return nil
}

func testConfig(limit int) Config {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Interval = time.Millisecond
	cfg.Iterations = limit
	return cfg
}

func TestDriverRendersThroughLimit(t *testing.T) {
	cfg := testConfig(2)
	g, err := NewGrid(cfg)
	if err != nil {
		t.Fatal(err)
	}

	rec := &frameRecorder{}
	gens, err := NewDriver(g, rec, cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	//a limit of 2 means generations 0, 1 and 2 are all rendered
	if len(rec.frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(rec.frames))
	}
	for i, st := range rec.frames {
		if st.Generation != i {
			t.Fatalf("frame %d carries generation %d", i, st.Generation)
		}
	}
	if gens != 3 {
		t.Fatalf("got %d completed generations, want 3", gens)
	}
}

func TestDriverInterruptDuringWait(t *testing.T) {
	cfg := testConfig(0)
	cfg.Interval = time.Hour //the wait itself must be interruptible
	g, err := NewGrid(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	rec := &frameRecorder{onFrame: func(Status) { cancel() }}

	start := time.Now()
	_, err = NewDriver(g, rec, cfg).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("interrupt took %v, wait is not interruptible", elapsed)
	}
	if len(rec.frames) != 1 {
		t.Fatalf("got %d frames before interrupt, want 1", len(rec.frames))
	}
}

func TestDriverPropagatesRendererError(t *testing.T) {
	cfg := testConfig(0)
	g, err := NewGrid(cfg)
	if err != nil {
		t.Fatal(err)
	}

	drawErr := errors.New("terminal gone")
	_, err = NewDriver(g, &frameRecorder{err: drawErr}, cfg).Run(context.Background())
	if !errors.Is(err, drawErr) {
		t.Fatalf("got error %v, want %v", err, drawErr)
	}
}

func TestDriverStepsBetweenFrames(t *testing.T) {
	//blinker on a 5x5: frame 1 must differ from frame 0
	cells := make([]bool, 25)
	cells[11], cells[12], cells[13] = true, true, true
	g, err := FromCells(cells)
	if err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(1)
	cfg.Size = 25

	var grids []Grid
	d := NewDriver(g, renderFunc(func(g Grid, st Status) error {
		grids = append(grids, g)
		return nil
	}), cfg)

	if _, err = d.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(grids) != 2 {
		t.Fatalf("got %d frames, want 2", len(grids))
	}
	if !grids[0].Alive(11) || grids[1].Alive(11) {
		t.Fatal("second frame is not the stepped grid")
	}
	if !grids[1].Alive(7) || !grids[1].Alive(17) {
		t.Fatal("blinker did not turn vertical between frames")
	}
}

//renderFunc adapts a function to the Renderer interface
type renderFunc func(g Grid, st Status) error

func (f renderFunc) Draw(g Grid, st Status) error { return f(g, st) }
