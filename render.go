package ink

// RenderTarget is the surface the engine draws into. The core never
// touches a toolkit type: hosts adapt their canvas to this interface,
// tests use a recording implementation, and raster export uses the
// software pixmap target.
//
// Geometry arrives in world coordinates; implementations apply the
// transform installed by SetTransform.
type RenderTarget interface {
	// Size returns the target dimensions in screen pixels.
	Size() (w, h float64)
	// Clear fills the whole target with a color.
	Clear(c RGBA)
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGBA)
	// StrokeSegment draws a line segment of the given width with round
	// caps.
	StrokeSegment(a, b Vec, width float64, c RGBA)
	// FillDisk fills a circle of the given radius.
	FillDisk(center Vec, radius float64, c RGBA)
	// SetTransform installs the world-to-screen transform applied to all
	// subsequent geometry.
	SetTransform(m Matrix)
}

// DrawStroke tessellates and draws one committed stroke.
func DrawStroke(t RenderTarget, s *Stroke) {
	c := s.Config.rgba()
	if len(s.Points) == 1 {
		t.FillDisk(s.Points[0].Pos(), dotWidth(s.Config, s.Points[0])/2, c)
		return
	}
	for _, seg := range Tessellate(s.Points, s.Config) {
		t.StrokeSegment(seg.A, seg.B, seg.Width, c)
	}
}

// DrawDocument redraws the full scene: paper, grid, then strokes in
// render order.
func DrawDocument(t RenderTarget, d *Document, camera *Camera, gridType GridType) {
	w, h := t.Size()
	t.SetTransform(Identity())
	t.Clear(Paper)
	t.SetTransform(camera.Matrix())
	DrawGrid(t, camera, gridType, w, h)
	for _, s := range d.Strokes {
		DrawStroke(t, s)
	}
}
