package ink

import (
	"math"
	"testing"
)

func fixtureDrawing() SerializedDrawing {
	cfg := testConfig()
	cfg.BaseStrokeWidth = math.Pi // awkward float survives the trip
	return SerializedDrawing{
		Version:  1,
		GridType: GridHex,
		Strokes: []SerializedStroke{
			{Config: cfg, Points: []Point{
				{X: 0.1, Y: -0.2, Pressure: 0.30000000000000004, Timestamp: 1234.5678, TiltX: -45, TiltY: 12.000001},
				{X: 1e-9, Y: 1e9, Pressure: 1, Timestamp: 1250},
			}},
			{Config: testConfig(), Points: []Point{{X: 5, Y: 5, Pressure: 0.5}}},
		},
	}
}

func TestSerialize_JSONRoundTripBitExact(t *testing.T) {
	in := fixtureDrawing()
	data, err := MarshalDrawing(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := UnmarshalDrawing(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Version != in.Version || out.GridType != in.GridType {
		t.Fatalf("header mismatch: %+v", out)
	}
	if len(out.Strokes) != len(in.Strokes) {
		t.Fatalf("stroke count = %d", len(out.Strokes))
	}
	for i := range in.Strokes {
		if out.Strokes[i].Config != in.Strokes[i].Config {
			t.Errorf("stroke %d config mismatch", i)
		}
		for j := range in.Strokes[i].Points {
			if out.Strokes[i].Points[j] != in.Strokes[i].Points[j] {
				t.Errorf("stroke %d point %d: %+v != %+v",
					i, j, out.Strokes[i].Points[j], in.Strokes[i].Points[j])
			}
		}
	}
}

func TestSerialize_LoadExportRoundTrip(t *testing.T) {
	d := NewDocument()
	grid, err := LoadStrokes(d, fixtureDrawing())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if grid != GridHex {
		t.Errorf("grid = %v, want hex", grid)
	}

	out := ExportStrokes(d, grid)
	in := fixtureDrawing()
	for i := range in.Strokes {
		for j := range in.Strokes[i].Points {
			if out.Strokes[i].Points[j] != in.Strokes[i].Points[j] {
				t.Errorf("stroke %d point %d changed across load/export", i, j)
			}
		}
		if out.Strokes[i].Config != in.Strokes[i].Config {
			t.Errorf("stroke %d config changed across load/export", i)
		}
	}
}

func TestSerialize_LoadClearsHistoryAndSelection(t *testing.T) {
	d := NewDocument()
	d.AddStroke(strokeAt(0, 0))
	d.Select(0, false)

	if _, err := LoadStrokes(d, fixtureDrawing()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.CanUndo() || d.CanRedo() || len(d.Selection) != 0 {
		t.Error("load left history or selection behind")
	}
}

func TestSerialize_InvalidInputsPreserveDocument(t *testing.T) {
	tests := []struct {
		name string
		sd   SerializedDrawing
	}{
		{"wrong version", SerializedDrawing{Version: 2}},
		{"empty stroke", SerializedDrawing{
			Version: 1,
			Strokes: []SerializedStroke{{Config: testConfig()}},
		}},
		{"zero width", SerializedDrawing{
			Version: 1,
			Strokes: []SerializedStroke{{Points: []Point{{X: 1}}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			d.AddStroke(strokeAt(0, 0))

			if _, err := LoadStrokes(d, tt.sd); err == nil {
				t.Fatal("expected error")
			}
			if len(d.Strokes) != 1 || !d.CanUndo() {
				t.Error("failed load did not preserve the prior document")
			}
		})
	}
}

func TestSerialize_MalformedJSON(t *testing.T) {
	if _, err := UnmarshalDrawing([]byte(`{"version": `)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestSerialize_ExportIsDeepCopy(t *testing.T) {
	d := NewDocument()
	d.AddStroke(strokeAt(0, 0))
	out := ExportStrokes(d, GridNone)
	out.Strokes[0].Points[0].X = 999
	if d.Strokes[0].Points[0].X == 999 {
		t.Error("export shares point storage with the document")
	}
}
