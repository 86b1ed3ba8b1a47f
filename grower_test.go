package fractree

import (
	"testing"
)

// recLine is one stroked line with the color it was drawn in.
type recLine struct {
	from, to Vec2
	color    Color
}

// recordingCanvas captures canvas operations for assertions.
type recordingCanvas struct {
	lines  []recLine
	path   []recLine
	cur    Vec2
	color  Color
	clears int
}

func (c *recordingCanvas) BeginPath() { c.path = c.path[:0] }

func (c *recordingCanvas) SetStrokeColor(col Color) { c.color = col }

func (c *recordingCanvas) MoveTo(p Vec2) { c.cur = p }

func (c *recordingCanvas) LineTo(p Vec2) {
	c.path = append(c.path, recLine{from: c.cur, to: p})
	c.cur = p
}

func (c *recordingCanvas) Stroke() {
	for _, l := range c.path {
		l.color = c.color
		c.lines = append(c.lines, l)
	}
	c.path = c.path[:0]
}

func (c *recordingCanvas) Clear() {
	c.clears++
	c.lines = c.lines[:0]
}

func testConfig() Config {
	return Config{
		TrunkHeight: 100,
		BranchRatio: 0.7,
		BranchAngle: 30,
		Width:       400,
		Height:      400,
	}
}

func newTestGrower(t *testing.T) (*Grower, *recordingCanvas) {
	t.Helper()
	rec := &recordingCanvas{}
	g, err := NewGrower(testConfig(), rec)
	if err != nil {
		t.Fatalf("NewGrower: %v", err)
	}
	return g, rec
}

func TestNewGrowerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.BranchRatio = 1.5
	if _, err := NewGrower(cfg, &recordingCanvas{}); err == nil {
		t.Error("NewGrower accepted a branch ratio above one")
	}
}

func TestNewGrowerSeedsRoot(t *testing.T) {
	g, _ := newTestGrower(t)
	if g.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1 (the root)", g.Pending())
	}
	if g.Running() {
		t.Error("a new grower should be idle")
	}
}

func TestStepDrawsBranchAndEnqueuesChildren(t *testing.T) {
	g, rec := newTestGrower(t)
	root := testConfig().Root()

	g.Step()

	if len(rec.lines) != 3 {
		t.Fatalf("one step drew %d lines, want 3 (trunk, left, right)", len(rec.lines))
	}
	if rec.lines[0].from != root.Origin || rec.lines[0].to != root.TrunkEnd() {
		t.Error("first line is not the trunk p0→p1")
	}
	if rec.lines[1].from != root.TrunkEnd() || rec.lines[1].to != root.LeftEnd() {
		t.Error("second line is not the left branch p1→p2")
	}
	if rec.lines[2].from != root.TrunkEnd() || rec.lines[2].to != root.RightEnd() {
		t.Error("third line is not the right branch p1→p3")
	}

	// The right branch is drawn in the distinguishing style.
	if rec.lines[0].color != TrunkColor || rec.lines[1].color != TrunkColor {
		t.Error("trunk and left branch should use the trunk style")
	}
	if rec.lines[2].color != HighlightColor {
		t.Error("right branch should use the highlight style")
	}
	if rec.lines[2].color == rec.lines[0].color {
		t.Error("right branch style should differ from the trunk style")
	}

	if g.Pending() != 2 {
		t.Errorf("Pending() = %d after one step, want 2 children", g.Pending())
	}
}

func TestGrowthIsBreadthFirst(t *testing.T) {
	g, rec := newTestGrower(t)
	root := testConfig().Root()

	g.Step() // root
	g.Step() // left child
	g.Step() // right child

	if len(rec.lines) != 9 {
		t.Fatalf("three steps drew %d lines, want 9", len(rec.lines))
	}
	// The second branch drawn is the root's left child, the third its
	// right child.
	if rec.lines[3].from != root.TrunkEnd() {
		t.Error("left child trunk does not start at the root's branch point")
	}
	if rec.lines[3].to != root.Left().TrunkEnd() {
		t.Error("second branch drawn is not the left child")
	}
	if rec.lines[6].from != root.TrunkEnd() {
		t.Error("right child trunk does not start at the root's branch point")
	}
	if rec.lines[6].to != root.Right().TrunkEnd() {
		t.Error("third branch drawn is not the right child")
	}
}

func TestGrowthTerminates(t *testing.T) {
	g, rec := newTestGrower(t)

	steps := 0
	for g.Pending() > 0 {
		g.Step()
		steps++
		if steps > 1000 {
			t.Fatal("queue did not empty after 1000 steps")
		}
	}

	// Depths 0..7 inclusive: 2^8 − 1 descriptors pass through the queue.
	if steps != 255 {
		t.Errorf("queue processed %d descriptors, want 255", steps)
	}
	// Depths 0..6 are drawn; depth-7 branches are at the size floor and
	// are discarded without drawing.
	if len(rec.lines) != 127*3 {
		t.Errorf("drew %d lines, want %d (127 branches × 3 segments)", len(rec.lines), 127*3)
	}
}

func TestStepOnEmptyQueueIsIdle(t *testing.T) {
	g, rec := newTestGrower(t)
	for g.Pending() > 0 {
		g.Step()
	}
	drawn := len(rec.lines)

	g.Step()

	if len(rec.lines) != drawn {
		t.Error("stepping an empty queue drew something")
	}
	if rec.clears != 0 {
		t.Error("stepping an empty queue cleared the canvas")
	}
}

func TestTooSmallRootDrawsNothing(t *testing.T) {
	g, rec := newTestGrower(t)

	// Replace the seeded root with one exactly at the size floor: it
	// must be discarded with no draw and no children.
	small := testConfig().Root()
	small.TrunkLength = g.minTrunk
	g.queue = append(g.queue[:0], small)

	g.Step()

	if len(rec.lines) != 0 {
		t.Errorf("a root at the size floor drew %d lines, want 0", len(rec.lines))
	}
	if g.Pending() != 0 {
		t.Errorf("a discarded root spawned %d children, want 0", g.Pending())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	g, _ := newTestGrower(t)

	g.Start()
	if !g.Running() {
		t.Fatal("grower not running after Start")
	}
	pending := g.Pending()

	g.Start()
	if !g.Running() || g.Pending() != pending {
		t.Error("second Start changed observable state")
	}
}

func TestStopClearsEverything(t *testing.T) {
	g, rec := newTestGrower(t)
	g.Start()
	g.Step()
	g.Step()

	g.Stop()

	if g.Running() {
		t.Error("grower still running after Stop")
	}
	if g.Pending() != 0 {
		t.Errorf("Pending() = %d after Stop, want 0", g.Pending())
	}
	if len(rec.lines) != 0 {
		t.Error("canvas not blank after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	g, rec := newTestGrower(t)
	g.Start()
	g.Step()

	g.Stop()
	g.Stop()

	if g.Running() || g.Pending() != 0 || len(rec.lines) != 0 {
		t.Error("double Stop does not match single Stop end state")
	}
	if rec.clears == 0 {
		t.Error("Stop never cleared the canvas")
	}
}

func TestStopWhenIdleIsSafe(t *testing.T) {
	g, _ := newTestGrower(t)
	g.Stop() // never started
	if g.Running() || g.Pending() != 0 {
		t.Error("Stop on an idle grower left unexpected state")
	}
}

func TestStartAfterStopReseedsRoot(t *testing.T) {
	g, rec := newTestGrower(t)
	g.Start()
	g.Step()
	g.Stop()

	g.Start()

	if g.Pending() != 1 {
		t.Errorf("Pending() = %d after restart, want 1 (fresh root)", g.Pending())
	}
	g.Step()
	if len(rec.lines) != 3 {
		t.Error("restarted grower did not draw the root branch")
	}
}

func TestUpdateFiresStepsAtInterval(t *testing.T) {
	g, rec := newTestGrower(t)
	g.StepInterval = 0.01
	g.Start()

	g.Update(0.004)
	g.Update(0.004)
	if len(rec.lines) != 0 {
		t.Error("Update fired a step before the interval elapsed")
	}

	g.Update(0.003)
	if len(rec.lines) != 3 {
		t.Errorf("drew %d lines after one full interval, want 3", len(rec.lines))
	}

	// A large dt fires multiple catch-up steps.
	g.Update(0.035)
	if len(rec.lines) != 12 {
		t.Errorf("drew %d lines after three more intervals, want 12", len(rec.lines))
	}
}

func TestUpdateWhileIdleDoesNothing(t *testing.T) {
	g, rec := newTestGrower(t)

	g.Update(1.0)

	if len(rec.lines) != 0 {
		t.Error("Update drew while idle")
	}
	if g.Pending() != 1 {
		t.Error("Update consumed the queue while idle")
	}
}
