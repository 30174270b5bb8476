package ink

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// SoftwareTarget renders into a Pixmap using the x/image/vector
// anti-aliased rasterizer. It is the target behind raster export and the
// reference implementation for host adapters.
type SoftwareTarget struct {
	pm        *Pixmap
	transform Matrix
}

// NewSoftwareTarget creates a target over a fresh pixmap.
func NewSoftwareTarget(width, height int) *SoftwareTarget {
	return &SoftwareTarget{
		pm:        NewPixmap(width, height),
		transform: Identity(),
	}
}

// Pixmap returns the underlying pixel buffer.
func (t *SoftwareTarget) Pixmap() *Pixmap {
	return t.pm
}

// Size returns the target dimensions in pixels.
func (t *SoftwareTarget) Size() (w, h float64) {
	return float64(t.pm.Width()), float64(t.pm.Height())
}

// SetTransform installs the world-to-screen transform.
func (t *SoftwareTarget) SetTransform(m Matrix) {
	t.transform = m
}

// Clear fills the whole pixmap, ignoring the transform.
func (t *SoftwareTarget) Clear(c RGBA) {
	t.pm.Clear(c)
}

// scale returns the uniform scale factor of the current transform.
// Camera transforms are uniform; anisotropic transforms use the mean.
func (t *SoftwareTarget) scale() float64 {
	sx := math.Hypot(t.transform.A, t.transform.D)
	sy := math.Hypot(t.transform.B, t.transform.E)
	return (sx + sy) / 2
}

// FillRect fills an axis-aligned world rectangle.
func (t *SoftwareTarget) FillRect(r Rect, c RGBA) {
	t.fillPolygon([]Vec{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}, c)
}

// StrokeSegment draws a world-space segment with round caps: a quad body
// plus a disk at each endpoint.
func (t *SoftwareTarget) StrokeSegment(a, b Vec, width float64, c RGBA) {
	sa := t.transform.Apply(a)
	sb := t.transform.Apply(b)
	half := width * t.scale() / 2
	if half <= 0 {
		return
	}

	d := sb.Sub(sa)
	if d.Length() < 1e-9 {
		t.fillScreenDisk(sa, half, c)
		return
	}
	n := d.Normalize().Perp().Mul(half)
	t.fillScreenPolygon([]Vec{
		sa.Add(n), sb.Add(n), sb.Sub(n), sa.Sub(n),
	}, c)
	t.fillScreenDisk(sa, half, c)
	t.fillScreenDisk(sb, half, c)
}

// FillDisk fills a world-space circle.
func (t *SoftwareTarget) FillDisk(center Vec, radius float64, c RGBA) {
	t.fillScreenDisk(t.transform.Apply(center), radius*t.scale(), c)
}

// diskSides is the polygon resolution for rasterized disks.
const diskSides = 24

func (t *SoftwareTarget) fillScreenDisk(center Vec, radius float64, c RGBA) {
	if radius <= 0 {
		return
	}
	poly := make([]Vec, diskSides)
	for i := range poly {
		theta := 2 * math.Pi * float64(i) / diskSides
		poly[i] = Vec{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	t.fillScreenPolygon(poly, c)
}

// fillPolygon fills a world-space polygon.
func (t *SoftwareTarget) fillPolygon(poly []Vec, c RGBA) {
	screen := make([]Vec, len(poly))
	for i, p := range poly {
		screen[i] = t.transform.Apply(p)
	}
	t.fillScreenPolygon(screen, c)
}

// fillScreenPolygon rasterizes a screen-space polygon with the
// anti-aliased scanline rasterizer.
func (t *SoftwareTarget) fillScreenPolygon(poly []Vec, c RGBA) {
	if len(poly) < 3 {
		return
	}
	r := vector.NewRasterizer(t.pm.Width(), t.pm.Height())
	r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()

	src := image.NewUniform(c.Color())
	r.Draw(t.pm.Image(), t.pm.Image().Bounds(), src, image.Point{})
}
