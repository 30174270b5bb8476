package ink

import (
	"encoding/json"
	"fmt"
)

// serializedVersion is the drawing format version this package reads
// and writes.
const serializedVersion = 1

// SerializedStroke is the wire form of one stroke.
type SerializedStroke struct {
	Config RenderConfig `json:"config"`
	Points []Point      `json:"points"`
}

// SerializedDrawing is the version-1 drawing interchange format. All
// numeric fields are float64 end to end, so a marshal/unmarshal round
// trip preserves exact values.
type SerializedDrawing struct {
	Version  int                `json:"version"`
	GridType GridType           `json:"gridType"`
	Strokes  []SerializedStroke `json:"strokes"`
}

// ExportStrokes deep-copies the document into its wire form.
func ExportStrokes(d *Document, gridType GridType) SerializedDrawing {
	out := SerializedDrawing{
		Version:  serializedVersion,
		GridType: gridType,
		Strokes:  make([]SerializedStroke, 0, len(d.Strokes)),
	}
	for _, s := range d.Strokes {
		out.Strokes = append(out.Strokes, SerializedStroke{
			Config: s.Config,
			Points: clonePoints(s.Points),
		})
	}
	return out
}

// validate rejects drawings this version cannot represent.
func (sd SerializedDrawing) validate() error {
	if sd.Version != serializedVersion {
		return fmt.Errorf("%w: version %d", ErrInvalidSerialization, sd.Version)
	}
	for i, s := range sd.Strokes {
		if len(s.Points) == 0 {
			return fmt.Errorf("%w: stroke %d has no points", ErrInvalidSerialization, i)
		}
		if s.Config.BaseStrokeWidth <= 0 {
			return fmt.Errorf("%w: stroke %d has non-positive width", ErrInvalidSerialization, i)
		}
	}
	return nil
}

// LoadStrokes replaces the document contents with the serialized
// drawing, clearing undo, redo, and selection. On any validation error
// the prior document is preserved untouched. Returns the drawing's grid
// type.
func LoadStrokes(d *Document, sd SerializedDrawing) (GridType, error) {
	if err := sd.validate(); err != nil {
		return GridNone, err
	}

	strokes := make([]*Stroke, 0, len(sd.Strokes))
	for _, s := range sd.Strokes {
		strokes = append(strokes, NewStroke(clonePoints(s.Points), s.Config))
	}

	d.Strokes = strokes
	d.ClearSelection()
	d.resetHistory()
	return ParseGridType(string(sd.GridType)), nil
}

// MarshalDrawing encodes a drawing as UTF-8 JSON.
func MarshalDrawing(sd SerializedDrawing) ([]byte, error) {
	return json.Marshal(sd)
}

// UnmarshalDrawing decodes a drawing from JSON bytes.
func UnmarshalDrawing(data []byte) (SerializedDrawing, error) {
	var sd SerializedDrawing
	if err := json.Unmarshal(data, &sd); err != nil {
		return SerializedDrawing{}, fmt.Errorf("%w: %v", ErrInvalidSerialization, err)
	}
	return sd, nil
}
