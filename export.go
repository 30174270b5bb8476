package ink

// exportOversample is the raster export supersampling factor.
const exportOversample = 2

// ExportImage renders the current visible view into PNG bytes at 2x
// oversampling: paper fill, then grid, then strokes, through the same
// tessellator the screen uses. viewW and viewH are the on-screen
// viewport dimensions in pixels.
func ExportImage(d *Document, camera *Camera, gridType GridType, viewW, viewH int) ([]byte, error) {
	if viewW <= 0 || viewH <= 0 {
		return nil, ErrSurfaceUnavailable
	}

	target := NewSoftwareTarget(viewW*exportOversample, viewH*exportOversample)

	// Doubling the zoom (without the interactive clamp) renders the same
	// world rectangle at twice the pixel density.
	exportCam := &Camera{
		PanX: camera.PanX,
		PanY: camera.PanY,
		Zoom: camera.Zoom * exportOversample,
	}

	DrawDocument(target, d, exportCam, gridType)
	return target.Pixmap().EncodePNG()
}
