package fractree

import (
	"fmt"
	"math"
)

// rootAnchorY places the root origin near the bottom of the surface:
// horizontally centered, at 88% of the height.
const rootAnchorY = 0.88

// TrunkColor is the default stroke style for trunks and left branches.
var TrunkColor = Color{R: 0.33, G: 0.22, B: 0.13, A: 1}

// HighlightColor is the default stroke style that visually distinguishes
// right branches.
var HighlightColor = Color{R: 0.22, G: 0.56, B: 0.24, A: 1}

// Config holds the numeric parameters supplied by the host, read once
// at grower construction.
type Config struct {
	// TrunkHeight is the root trunk length in pixels. Must be positive.
	TrunkHeight float64
	// BranchRatio is the per-generation shrink factor. Must be in (0, 1).
	BranchRatio float64
	// BranchAngle is the spread between the two children at a split,
	// in degrees. Converted to radians internally.
	BranchAngle float64
	// Width and Height are the drawing surface dimensions in pixels.
	Width, Height float64
	// Trunk is the stroke style for trunks and left branches.
	Trunk Color
	// Highlight is the stroke style for right branches.
	Highlight Color
}

// DefaultConfig returns a Config with pleasant defaults for a surface
// of the given size: trunk a quarter of the height, ratio 0.7, spread 30°.
func DefaultConfig(width, height float64) Config {
	return Config{
		TrunkHeight: height / 4,
		BranchRatio: 0.7,
		BranchAngle: 30,
		Width:       width,
		Height:      height,
		Trunk:       TrunkColor,
		Highlight:   HighlightColor,
	}
}

// Validate reports malformed numeric configuration. Out-of-range or
// non-finite values are a precondition violation surfaced here rather
// than a runtime failure later.
func (c Config) Validate() error {
	if !isFinite(c.TrunkHeight) || c.TrunkHeight <= 0 {
		return fmt.Errorf("trunk height must be a positive finite number, got %v", c.TrunkHeight)
	}
	if !isFinite(c.BranchRatio) || c.BranchRatio <= 0 || c.BranchRatio >= 1 {
		return fmt.Errorf("branch ratio must be in (0, 1), got %v", c.BranchRatio)
	}
	if !isFinite(c.BranchAngle) {
		return fmt.Errorf("branch angle must be finite, got %v", c.BranchAngle)
	}
	if !isFinite(c.Width) || c.Width <= 0 {
		return fmt.Errorf("width must be a positive finite number, got %v", c.Width)
	}
	if !isFinite(c.Height) || c.Height <= 0 {
		return fmt.Errorf("height must be a positive finite number, got %v", c.Height)
	}
	return nil
}

// Root returns the root branch descriptor: horizontally centered near
// the bottom of the surface, pointing straight up.
func (c Config) Root() Branch {
	return Branch{
		Origin:      Vec2{X: c.Width / 2, Y: c.Height * rootAnchorY},
		TrunkLength: c.TrunkHeight,
		BranchRatio: c.BranchRatio,
		BranchAngle: Radians(c.BranchAngle),
		Incline:     0,
	}
}

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
