package svgscan

import (
	"math"
	"os"
	"strings"
	"testing"
)

func extractFile(t *testing.T, filename string) []Primitive {
	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("can't open svg source: %s", err)
	}
	defer f.Close()
	prims, err := Extract(f)
	if err != nil {
		t.Fatal(err)
	}
	return prims
}

func TestExtractDocument(t *testing.T) {
	prims := extractFile(t, "testdata/ethanol.svg")
	// the incomplete line and the text without font-size are dropped
	if len(prims) != 4 {
		t.Fatalf("expected 4 primitives, got %d", len(prims))
	}
	seg, ok := prims[0].(Segment)
	if !ok || seg != (Segment{60, 100, 95, 80}) {
		t.Errorf("unexpected first segment: %v", prims[0])
	}
	seg, ok = prims[1].(Segment)
	if !ok || seg != (Segment{95, 80, 124, 96.5}) {
		t.Errorf("unexpected second segment: %v", prims[1])
	}
	label, ok := prims[2].(Label)
	if !ok || label != (Label{130, 100, 13, "OH"}) {
		t.Errorf("unexpected first label: %v", prims[2])
	}
	// font sizes are read per element, never assumed uniform
	label, ok = prims[3].(Label)
	if !ok || label != (Label{95, 70, 9.75, "H"}) {
		t.Errorf("unexpected second label: %v", prims[3])
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	first := extractFile(t, "testdata/ethanol.svg")
	second := extractFile(t, "testdata/ethanol.svg")
	if len(first) != len(second) {
		t.Fatalf("extraction is not stable: %d != %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("primitive %d differs between runs", i)
		}
	}
}

func TestExtractNaNCoordinate(t *testing.T) {
	// NaN parses as a number: the element is kept, the crop stage
	// decides it contributes nothing
	prims, err := ExtractString(`<svg viewBox="0 0 10 10">` +
		`<line x1="1" y1="2" x2="NaN" y2="4"/></svg>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 1 {
		t.Fatalf("expected 1 primitive, got %d", len(prims))
	}
	seg := prims[0].(Segment)
	if !math.IsNaN(seg.X2) || seg.X1 != 1 {
		t.Errorf("unexpected segment: %v", seg)
	}
}

func TestExtractStyleFontSize(t *testing.T) {
	prims, err := ExtractString(`<svg>` +
		`<text x="5" y="6" font-size="10" style="fill:#000;font-size:6.5px">N</text>` +
		`</svg>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 1 {
		t.Fatalf("expected 1 primitive, got %d", len(prims))
	}
	if label := prims[0].(Label); label.FontSize != 6.5 {
		t.Errorf("style font-size should win, got %g", label.FontSize)
	}
}

func TestExtractNestedText(t *testing.T) {
	prims, err := ExtractString(`<svg>` +
		`<text x="5" y="6" font-size="10">NH<tspan dy="2">2</tspan></text>` +
		`</svg>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 1 {
		t.Fatalf("expected 1 primitive, got %d", len(prims))
	}
	if label := prims[0].(Label); label.Text != "NH2" {
		t.Errorf("expected collected text NH2, got %q", label.Text)
	}
}

func TestExtractCoordinateList(t *testing.T) {
	// per-glyph positioning: the anchor is the first coordinate
	prims, err := ExtractString(`<svg>` +
		`<text x="10,16.5" y="20 21" font-size="7">Cl</text>` +
		`</svg>`)
	if err != nil {
		t.Fatal(err)
	}
	label := prims[0].(Label)
	if label.X != 10 || label.Y != 20 {
		t.Errorf("unexpected anchor: (%g, %g)", label.X, label.Y)
	}
}

func TestExtractSkipsEmptyText(t *testing.T) {
	prims, err := ExtractString(`<svg>` +
		`<text x="1" y="2" font-size="3"> </text>` +
		`<text x="1" y="2" font-size="3"/>` +
		`</svg>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(prims) != 0 {
		t.Errorf("empty text runs must not contribute, got %d primitives", len(prims))
	}
}

func TestExtractInvalidDocument(t *testing.T) {
	if _, err := Extract(strings.NewReader("not markup at all")); err == nil {
		t.Error("expected an error on a document without elements")
	}
}
