package ink

// Camera maps between world and screen coordinates.
//
// The transform is screen = (world + pan) * zoom, so the inverse is
// world = screen/zoom - pan. Pan is stored in world units.
type Camera struct {
	PanX, PanY float64
	Zoom       float64
}

// Zoom limits.
const (
	minZoom = 0.2
	maxZoom = 5.0
)

// NewCamera returns a camera at the origin with unit zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1.0}
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p Vec) Vec {
	return Vec{
		X: (p.X + c.PanX) * c.Zoom,
		Y: (p.Y + c.PanY) * c.Zoom,
	}
}

// ScreenToWorld converts a screen point to world coordinates by
// inverting the camera transform.
func (c *Camera) ScreenToWorld(p Vec) Vec {
	return c.Matrix().Invert().Apply(p)
}

// Pan translates the camera by a screen-space delta.
func (c *Camera) Pan(dxScreen, dyScreen float64) {
	c.PanX += dxScreen / c.Zoom
	c.PanY += dyScreen / c.Zoom
}

// ZoomAround multiplies the zoom by factor, clamped to [0.2, 5.0],
// keeping the world point under the given screen pivot fixed.
func (c *Camera) ZoomAround(factor float64, pivot Vec) {
	anchor := c.ScreenToWorld(pivot)
	c.Zoom = clamp(c.Zoom*factor, minZoom, maxZoom)
	// Re-solve pan so the anchor maps back to the pivot.
	c.PanX = pivot.X/c.Zoom - anchor.X
	c.PanY = pivot.Y/c.Zoom - anchor.Y
}

// Matrix returns the world-to-screen transform in affine form.
func (c *Camera) Matrix() Matrix {
	return Scale(c.Zoom, c.Zoom).Multiply(Translate(c.PanX, c.PanY))
}

// VisibleWorldRect returns the world-space rectangle covered by a screen
// viewport of the given size.
func (c *Camera) VisibleWorldRect(width, height float64) Rect {
	return NewRect(
		c.ScreenToWorld(Vec{}),
		c.ScreenToWorld(Vec{X: width, Y: height}),
	)
}
