// pkg/render/camera.go
package render

import "math"

// Camera keeps a world point at the center of the viewport.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// NewCamera creates a camera for a viewport of the given size.
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow centers the camera on a world point.
func (c *Camera) Follow(x, y float64) {
	c.X, c.Y = x, y
}

// WorldToScreen converts world coordinates to viewport pixels.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X + c.Width/2, y - c.Y + c.Height/2
}

// ScreenToWorld converts viewport pixels to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X - c.Width/2, sy + c.Y - c.Height/2
}

// Visible reports whether a box of the given half size around a world point
// intersects the viewport.
func (c *Camera) Visible(x, y, half float64) bool {
	sx, sy := c.WorldToScreen(x, y)
	return sx+half >= 0 && sy+half >= 0 && sx-half <= c.Width && sy-half <= c.Height
}

// GridOffset returns the screen offset of the first grid line for a grid with
// the given world spacing, so a static grid scrolls with the camera.
func (c *Camera) GridOffset(spacing float64) (float64, float64) {
	left, top := c.ScreenToWorld(0, 0)
	ox := math.Ceil(left/spacing)*spacing - left
	oy := math.Ceil(top/spacing)*spacing - top
	return ox, oy
}
