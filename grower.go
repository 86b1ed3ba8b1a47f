package fractree

import "fmt"

// maxGenerations caps recursion depth: the termination floor is the root
// trunk length shrunk by the branch ratio this many times, so exactly
// this many generations past the root are ever drawn, regardless of the
// ratio's value or the absolute pixel size.
const maxGenerations = 7

// DefaultStepInterval is the time between scheduling ticks in seconds.
const DefaultStepInterval = 0.010

// Grower schedules the animated growth of one tree. It owns a FIFO
// queue of pending branches seeded with the root; each scheduling tick
// pops one branch, draws it, and enqueues its two children, so the tree
// grows breadth-first until the branches shrink below the floor.
//
// A Grower is driven from a single update loop and is not safe for
// concurrent use.
type Grower struct {
	// StepInterval is the time between ticks in seconds while running.
	// Defaults to DefaultStepInterval.
	StepInterval float64

	cfg      Config
	canvas   Canvas
	queue    []Branch
	minTrunk float64
	running  bool
	accum    float64
}

// NewGrower validates cfg and returns a Grower drawing to canvas, with
// the root branch already queued. Zero-valued stroke colors fall back
// to the package defaults.
func NewGrower(cfg Config, canvas Canvas) (*Grower, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("fractree: invalid config: %w", err)
	}
	if cfg.Trunk == (Color{}) {
		cfg.Trunk = TrunkColor
	}
	if cfg.Highlight == (Color{}) {
		cfg.Highlight = HighlightColor
	}

	// The floor is computed by the same repeated multiplication the
	// branch lengths themselves undergo, so a depth-7 branch compares
	// bit-identical to it and always terminates.
	min := cfg.TrunkHeight
	for i := 0; i < maxGenerations; i++ {
		min *= cfg.BranchRatio
	}

	g := &Grower{
		StepInterval: DefaultStepInterval,
		cfg:          cfg,
		canvas:       canvas,
		minTrunk:     min,
	}
	g.queue = append(g.queue, cfg.Root())
	return g, nil
}

// Step runs one scheduling tick: pop the front branch, draw it, and
// enqueue its two children. An empty queue is idle, not an error. A
// branch at or below the size floor is discarded without drawing and
// without children; in particular a too-small root draws nothing at all.
//
// Step is exported as the manual tick for tests and headless rendering.
func (g *Grower) Step() {
	if len(g.queue) == 0 {
		return
	}
	b := g.queue[0]
	g.queue = g.queue[1:]

	if b.TrunkLength <= g.minTrunk {
		if len(g.queue) == 0 {
			Logger().Debug("growth complete")
		}
		return
	}

	g.draw(b)
	g.queue = append(g.queue, b.Left(), b.Right())
}

// draw renders one branch: trunk and left branch in the trunk style,
// right branch in the highlight style.
func (g *Grower) draw(b Branch) {
	p1 := b.TrunkEnd()
	c := g.canvas

	c.BeginPath()
	c.SetStrokeColor(g.cfg.Trunk)
	c.MoveTo(b.Origin)
	c.LineTo(p1)
	c.Stroke()

	c.BeginPath()
	c.MoveTo(p1)
	c.LineTo(b.LeftEnd())
	c.Stroke()

	c.BeginPath()
	c.SetStrokeColor(g.cfg.Highlight)
	c.MoveTo(p1)
	c.LineTo(b.RightEnd())
	c.Stroke()
}

// Start begins animated growth. Idempotent: starting a running grower
// has no additional effect. If the queue was cleared by a previous
// Stop, a fresh root is reseeded — partial trees are never resumed.
func (g *Grower) Start() {
	if g.running {
		return
	}
	if len(g.queue) == 0 {
		g.queue = append(g.queue, g.cfg.Root())
	}
	g.running = true
	g.accum = 0
	Logger().Debug("grower started", "pending", len(g.queue))
}

// Stop halts growth, discards all pending branches, and clears the
// surface to a blank state. Safe to call when not running.
func (g *Grower) Stop() {
	if g.running {
		Logger().Debug("grower stopped", "discarded", len(g.queue))
	}
	g.running = false
	g.queue = g.queue[:0]
	g.accum = 0
	g.canvas.Clear()
}

// Update advances the grower by dt seconds, firing Step once per
// StepInterval while running. The host's frame loop is the tick source;
// nothing here touches a wall clock.
func (g *Grower) Update(dt float64) {
	if !g.running {
		return
	}
	interval := g.StepInterval
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	g.accum += dt
	for g.accum >= interval {
		g.accum -= interval
		g.Step()
	}
}

// Running reports whether the grower is currently animating.
func (g *Grower) Running() bool {
	return g.running
}

// Pending returns the number of branches waiting in the queue.
func (g *Grower) Pending() int {
	return len(g.queue)
}
