package fractree

import (
	"image"

	"github.com/gogpu/gg"
)

// ImageCanvas is a Canvas backed by an offscreen software raster,
// suitable for headless rendering and PNG output. It wraps a
// [gg.Context].
type ImageCanvas struct {
	dc *gg.Context
}

var _ Canvas = (*ImageCanvas)(nil)

// NewImageCanvas creates an ImageCanvas with the given pixel dimensions.
func NewImageCanvas(width, height int) *ImageCanvas {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	return &ImageCanvas{dc: dc}
}

// BeginPath discards the current path.
func (c *ImageCanvas) BeginPath() {
	c.dc.ClearPath()
}

// SetStrokeColor sets the stroke color.
func (c *ImageCanvas) SetStrokeColor(col Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

// MoveTo starts a new subpath at p.
func (c *ImageCanvas) MoveTo(p Vec2) {
	c.dc.MoveTo(p.X, p.Y)
}

// LineTo adds a line to p.
func (c *ImageCanvas) LineTo(p Vec2) {
	c.dc.LineTo(p.X, p.Y)
}

// Stroke draws the current path. Rasterization failures are logged at
// Warn; the drawing contract itself is fire-and-forget.
func (c *ImageCanvas) Stroke() {
	if err := c.dc.Stroke(); err != nil {
		Logger().Warn("stroke failed", "err", err)
	}
}

// Clear resets the surface to transparent.
func (c *ImageCanvas) Clear() {
	c.dc.Clear()
}

// Width returns the surface width in pixels.
func (c *ImageCanvas) Width() int {
	return c.dc.Width()
}

// Height returns the surface height in pixels.
func (c *ImageCanvas) Height() int {
	return c.dc.Height()
}

// Image returns the rendered image.
func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (c *ImageCanvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}
