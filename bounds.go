package svgcrop

import (
	"math"
	"unicode/utf8"

	"github.com/benoitkugler/svgcrop/svgscan"
)

// labelWidthFactor approximates the advance width of one glyph as a
// fraction of the font size. It is the measuring convention of the
// upstream depiction pipeline, not a true font metric, and must stay
// as is for visual parity with it.
const labelWidthFactor = 0.6

// Bounds is an axis-aligned rectangle accumulator.
// NewBounds returns it in inverted sentinel form, so that the first
// contributing point wins on all four sides at once; a Bounds is
// therefore either fully sentinel or fully finite, never in between.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBounds returns the sentinel rectangle (min = +Inf, max = -Inf).
func NewBounds() Bounds {
	return Bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

// Empty reports whether no point has contributed yet.
func (b Bounds) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// add grows the rectangle to include (x, y). Once a side has been
// widened, later points can only widen it further.
func (b *Bounds) add(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// Union merges two rectangles component-wise. Partial extents
// accumulated independently may be combined this way, in any order.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Pad grows the rectangle by m on all four sides.
func (b Bounds) Pad(m float64) Bounds {
	return Bounds{b.MinX - m, b.MinY - m, b.MaxX + m, b.MaxY + m}
}

// PrimitiveExtent returns the rectangle p contributes to the crop.
// ok is false when a non-finite value makes p contribute nothing.
//
// A Segment contributes its two endpoints. A Label contributes an
// approximate glyph box around its anchor: the anchor sits on the
// baseline, ascenders reach one font size above it and descenders half
// a font size below, and the half-width is
// runes(Text) * FontSize * 0.6 / 2.
func PrimitiveExtent(p svgscan.Primitive) (Bounds, bool) {
	switch p := p.(type) {
	case svgscan.Segment:
		if !finite(p.X1, p.Y1, p.X2, p.Y2) {
			return Bounds{}, false
		}
		b := NewBounds()
		b.add(p.X1, p.Y1)
		b.add(p.X2, p.Y2)
		return b, true
	case svgscan.Label:
		if !finite(p.X, p.Y, p.FontSize) {
			return Bounds{}, false
		}
		halfWidth := float64(utf8.RuneCountInString(p.Text)) * p.FontSize * labelWidthFactor / 2
		return Bounds{
			MinX: p.X - halfWidth,
			MinY: p.Y - p.FontSize,
			MaxX: p.X + halfWidth,
			MaxY: p.Y + p.FontSize/2,
		}, true
	}
	return Bounds{}, false
}

// AddPrimitive grows the rectangle by the extent of p.
func (b *Bounds) AddPrimitive(p svgscan.Primitive) {
	r, ok := PrimitiveExtent(p)
	if !ok {
		return
	}
	b.add(r.MinX, r.MinY)
	b.add(r.MaxX, r.MaxY)
}

// Extent folds the primitives into one rectangle. The fold is
// commutative and associative: order does not matter, and partial
// results may be merged with Union.
func Extent(prims []svgscan.Primitive) Bounds {
	b := NewBounds()
	for _, p := range prims {
		b.AddPrimitive(p)
	}
	return b
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
