package fractree

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// segment is one line of the path being accumulated between BeginPath
// and Stroke.
type segment struct {
	from, to Vec2
}

// EbitenCanvas is a Canvas backed by an offscreen [ebiten.Image],
// stroked with the ebiten vector package. Draw its Image onto the
// screen each frame; [Run] does this for you.
type EbitenCanvas struct {
	image *ebiten.Image
	segs  []segment
	cur   Vec2
	color Color

	// LineWidth is the stroke width in pixels. Defaults to 1.
	LineWidth float32
	// AntiAlias enables anti-aliased strokes. Defaults to true.
	AntiAlias bool
}

var _ Canvas = (*EbitenCanvas)(nil)

// NewEbitenCanvas creates an EbitenCanvas with the given pixel dimensions.
func NewEbitenCanvas(width, height int) *EbitenCanvas {
	return &EbitenCanvas{
		image:     ebiten.NewImage(width, height),
		LineWidth: 1,
		AntiAlias: true,
	}
}

// BeginPath discards the current path.
func (c *EbitenCanvas) BeginPath() {
	c.segs = c.segs[:0]
}

// SetStrokeColor sets the stroke color.
func (c *EbitenCanvas) SetStrokeColor(col Color) {
	c.color = col
}

// MoveTo starts a new subpath at p.
func (c *EbitenCanvas) MoveTo(p Vec2) {
	c.cur = p
}

// LineTo adds a line from the current point to p.
func (c *EbitenCanvas) LineTo(p Vec2) {
	c.segs = append(c.segs, segment{from: c.cur, to: p})
	c.cur = p
}

// Stroke draws the accumulated path onto the backing image and clears it.
func (c *EbitenCanvas) Stroke() {
	for _, s := range c.segs {
		vector.StrokeLine(c.image,
			float32(s.from.X), float32(s.from.Y),
			float32(s.to.X), float32(s.to.Y),
			c.LineWidth, c.color, c.AntiAlias)
	}
	c.segs = c.segs[:0]
}

// Clear resets the backing image to transparent.
func (c *EbitenCanvas) Clear() {
	c.image.Clear()
}

// Image returns the backing image for compositing onto the screen.
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.image
}
