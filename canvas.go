package fractree

// Canvas is the drawing surface contract. The grower issues exactly
// these operation kinds and no others: begin a new path, set the stroke
// color, move to a point, line to a point, stroke the current path, and
// clear the whole surface.
//
// Implementations in this package: [EbitenCanvas] for a live window and
// [ImageCanvas] for offscreen rendering. Anything else that satisfies
// the interface works; tests use a recording double.
type Canvas interface {
	// BeginPath discards the current path and starts a new one.
	BeginPath()
	// SetStrokeColor sets the color used by subsequent Stroke calls.
	SetStrokeColor(c Color)
	// MoveTo starts a new subpath at p.
	MoveTo(p Vec2)
	// LineTo adds a line from the current point to p.
	LineTo(p Vec2)
	// Stroke draws the current path with the current stroke color.
	Stroke()
	// Clear resets the surface to a blank state.
	Clear()
}
