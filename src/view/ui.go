package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"

	"github.com/militantwalrus/life/src/life"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

/*
	UI is the interactive terminal front end. It implements life.Renderer,
	so a running Driver draws straight into the colony view; the run/stop
	keys start and cancel that Driver on a background goroutine.
*/
type UI struct {
	g   *gocui.Gui
	k   []keyBinding
	cfg life.Config

	mu     sync.Mutex
	grid   life.Grid
	st     life.Status
	cancel context.CancelFunc
	eg     *errgroup.Group

	liveFiller string
	deadFiller string
}

//NewUI creates the terminal UI showing the given generation-0 grid
func NewUI(cfg life.Config, grid life.Grid) (*UI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	t := &UI{
		g:          g,
		cfg:        cfg,
		grid:       grid,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
	t.st = life.Status{LiveCells: grid.LiveCells()}

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'n', "N", "Next generation", t.cmdStep},
		{'r', "R", "Run", t.cmdRun},
		{'s', "S", "Stop", t.cmdStop},
		{'w', "W", "Reseed random", t.cmdReseed},
	}

	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		err = g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() })
		if err != nil {
			g.Close()
			return nil, err
		}
	}

	return t, nil
}

//Start runs the UI main loop and blocks until the user exits
func (t *UI) Start() error {
	defer t.g.Close()
	err := t.g.MainLoop()
	t.stopRun()
	if err == gocui.ErrQuit {
		return nil
	}
	return err
}

//Draw implements life.Renderer for a Driver running behind the UI
func (t *UI) Draw(g life.Grid, st life.Status) error {
	t.mu.Lock()
	t.grid = g
	t.st = st
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *UI) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *UI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("colony")
		if err != nil {
			return err
		}
		v.Clear()

		t.mu.Lock()
		grid := t.grid
		t.mu.Unlock()

		dim := grid.Dim()
		maxW, maxH := v.Size()

		var b bytes.Buffer
		for row := 0; row < dim; row++ {
			if row >= maxH {
				break
			}
			if row != 0 {
				b.WriteByte('\n')
			}
			if row == maxH-1 && dim > maxH {
				b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
				break
			}
			for col := 0; col < dim; col++ {
				if col >= maxW {
					break
				}
				if grid.Alive(row*dim + col) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *UI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()

		t.mu.Lock()
		st := t.st
		running := t.cancel != nil
		t.mu.Unlock()

		limit := "unlimited"
		if t.cfg.Iterations != 0 {
			limit = fmt.Sprintf("%d", t.cfg.Iterations)
		}
		mode := aurora.Blue("waiting").String()
		if running {
			mode = aurora.Cyan("running").String()
		}

		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.cfg.Dim(), t.cfg.Dim()))
		_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.cfg.Interval))
		_, _ = fmt.Fprintln(v, t.renderProp("Limit", "%v", limit))
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", st.Generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", st.LiveCells))
		_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", st.StepTime.Round(time.Microsecond)))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		return nil
	})
}

func (t *UI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueformat, values...)
}

func (t *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("header", -1, -1, maxX+1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorGreen
		v.FgColor = gocui.ColorBlack
		text := "Conway's Game of Life"
		if maxX > len(text) {
			_, _ = fmt.Fprintln(v, strings.Repeat(" ", (maxX-len(text))/2)+text)
		}
	}

	if v, err := g.SetView("status", 0, 2, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("colony", leftColumnWidth+1, 2, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Colony"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, kb := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *UI) cmdQuit() error {
	return gocui.ErrQuit
}

func (t *UI) cmdStep() error {
	t.mu.Lock()
	if t.cancel == nil {
		start := time.Now()
		t.grid = t.grid.Step()
		t.st = life.Status{
			Generation: t.st.Generation + 1,
			LiveCells:  t.grid.LiveCells(),
			StepTime:   time.Since(start),
		}
	}
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *UI) cmdRun() error {
	t.mu.Lock()
	if t.cancel != nil {
		t.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	d := life.NewDriver(t.grid, t, t.cfg)
	eg := &errgroup.Group{}
	t.eg = eg
	t.mu.Unlock()

	eg.Go(func() error {
		_, err := d.Run(ctx)
		t.mu.Lock()
		t.cancel = nil
		t.mu.Unlock()
		t.refresh()
		if err == context.Canceled {
			return nil
		}
		return err
	})
	t.refresh()
	return nil
}

func (t *UI) cmdStop() error {
	t.stopRun()
	t.refresh()
	return nil
}

func (t *UI) cmdReseed() error {
	t.stopRun()

	cfg := t.cfg
	cfg.Mode = life.SeedRandom
	grid, err := life.NewGrid(cfg)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.grid = grid
	t.st = life.Status{LiveCells: grid.LiveCells()}
	t.mu.Unlock()
	t.refresh()
	return nil
}

//stopRun cancels an active Driver and waits for its goroutine to exit
func (t *UI) stopRun() {
	t.mu.Lock()
	cancel := t.cancel
	eg := t.eg
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	_ = eg.Wait()
}
