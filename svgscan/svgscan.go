// Extracts drawable primitives from rendered SVG documents.
// Structure depiction tools emit geometry as two element kinds only:
// stroked lines for bonds and anchored text runs for atom labels.
// This package scrapes both into a typed list, which the crop stage
// then folds into a bounding rectangle.
// Elements of any other kind, and elements missing a required numeric
// attribute, contribute nothing and are skipped silently.
package svgscan

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Primitive is one drawable element found in a document:
// either a Segment or a Label.
type Primitive interface {
	isPrimitive()
}

// Segment is a stroked line, typically a bond stroke. No attempt is
// made to tell bonds from decorative strokes: the renderer is the sole
// source of which lines exist.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Label is an anchored text run, typically an atom symbol or charge
// annotation. FontSize is the size this element declares itself,
// which may differ between label classes after upstream restyling.
type Label struct {
	X, Y, FontSize float64
	Text           string
}

func (Segment) isPrimitive() {}
func (Label) isPrimitive()   {}

// scanCursor is used while walking the document tokens
type scanCursor struct {
	prims   []Primitive
	pending *Label // text element waiting for its character data
	depth   int    // nesting below the pending text element
}

// Extract walks the document in a single pass and returns its
// primitives in document order. Extraction has no side effects:
// calling it again on the same input yields the same list.
func Extract(stream io.Reader) ([]Primitive, error) {
	cursor := &scanCursor{}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg document")
				}
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			cursor.readStartElement(se)
		case xml.EndElement:
			cursor.readEndElement(se)
		case xml.CharData:
			if cursor.pending != nil {
				cursor.pending.Text += string(se)
			}
		}
	}
	return cursor.prims, nil
}

// ExtractString is Extract on an in-memory document.
func ExtractString(doc string) ([]Primitive, error) {
	return Extract(strings.NewReader(doc))
}

func (c *scanCursor) readStartElement(se xml.StartElement) {
	if c.pending != nil {
		// markup nested in a text run (tspan and friends):
		// keep collecting its character data
		c.depth++
		return
	}
	switch se.Name.Local {
	case "line":
		c.readLine(se.Attr)
	case "text":
		c.readText(se.Attr)
	}
}

func (c *scanCursor) readEndElement(se xml.EndElement) {
	if c.pending == nil {
		return
	}
	if c.depth > 0 {
		c.depth--
		return
	}
	if se.Name.Local == "text" {
		c.pending.Text = strings.TrimSpace(c.pending.Text)
		if c.pending.Text != "" {
			c.prims = append(c.prims, *c.pending)
		}
		c.pending = nil
	}
}

func (c *scanCursor) readLine(attrs []xml.Attr) {
	var seg Segment
	var have int
	for _, attr := range attrs {
		var dst *float64
		switch attr.Name.Local {
		case "x1":
			dst = &seg.X1
		case "y1":
			dst = &seg.Y1
		case "x2":
			dst = &seg.X2
		case "y2":
			dst = &seg.Y2
		default:
			continue
		}
		v, err := parseFloat(attr.Value)
		if err != nil {
			return // not numeric: the element is dropped, not an error
		}
		*dst = v
		have++
	}
	if have != 4 {
		return // decoration without full coordinates
	}
	c.prims = append(c.prims, seg)
}

func (c *scanCursor) readText(attrs []xml.Attr) {
	var label Label
	var haveX, haveY, haveAttrSize, haveStyleSize bool
	var attrSize, styleSize float64
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "x":
			label.X, err = firstPoint(attr.Value)
			haveX = err == nil
		case "y":
			label.Y, err = firstPoint(attr.Value)
			haveY = err == nil
		case "font-size":
			attrSize, err = parseFloat(attr.Value)
			haveAttrSize = err == nil
		case "style":
			for _, pair := range strings.Split(attr.Value, ";") {
				kv := strings.SplitN(pair, ":", 2)
				if len(kv) == 2 && strings.TrimSpace(kv[0]) == "font-size" {
					styleSize, err = parseFloat(kv[1])
					haveStyleSize = err == nil
				}
			}
		}
	}
	// the style pair wins over the presentation attribute,
	// matching CSS precedence
	switch {
	case haveStyleSize:
		label.FontSize = styleSize
	case haveAttrSize:
		label.FontSize = attrSize
	default:
		return
	}
	if !haveX || !haveY {
		return
	}
	c.pending = &label
}
