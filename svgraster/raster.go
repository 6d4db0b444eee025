// Implements a raster preview of the geometry the crop stage works
// from, by wrapping rasterx.
// Bond strokes are drawn as lines and label footprints as filled
// boxes, inside the same padded rectangle Crop would declare as the
// new viewport. The preview exists to inspect what the extent
// reconstruction saw, not to reproduce the renderer's output.
package svgraster

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/svgcrop"
	"github.com/benoitkugler/svgcrop/svgscan"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// strokes in black, label footprints as translucent boxes
var (
	strokeColor = color.NRGBA{A: 0xff}
	labelColor  = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xff, A: 0x80}
)

// Preview rasterizes the extents of the primitives of doc into an
// image sized by their padded bounding rectangle, translated to the
// origin. It fails with svgcrop.ErrNoGeometry when nothing
// contributes, like Crop does.
func Preview(doc string, margin float64) (*image.RGBA, error) {
	prims, err := svgscan.ExtractString(doc)
	if err != nil {
		return nil, err
	}
	bounds := svgcrop.Extent(prims)
	if bounds.Empty() {
		return nil, svgcrop.ErrNoGeometry
	}
	bounds = bounds.Pad(margin)

	w := int(math.Ceil(bounds.MaxX - bounds.MinX))
	h := int(math.Ceil(bounds.MaxY - bounds.MinY))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())

	fillLabelBoxes(scanner, w, h, prims, bounds)
	strokeSegments(scanner, w, h, prims, bounds)
	return img, nil
}

func strokeSegments(scanner rasterx.Scanner, w, h int, prims []svgscan.Primitive, bounds svgcrop.Bounds) {
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(fixed.I(1), fixed.I(4), rasterx.ButtCap, rasterx.ButtCap,
		rasterx.FlatGap, rasterx.Bevel, nil, 0)
	any := false
	for _, p := range prims {
		seg, ok := p.(svgscan.Segment)
		if !ok {
			continue
		}
		if _, ok := svgcrop.PrimitiveExtent(seg); !ok {
			continue
		}
		dasher.Start(toFixed(seg.X1-bounds.MinX, seg.Y1-bounds.MinY))
		dasher.Line(toFixed(seg.X2-bounds.MinX, seg.Y2-bounds.MinY))
		dasher.Stop(false)
		any = true
	}
	if any {
		scanner.SetColor(strokeColor)
		dasher.Draw()
		dasher.Clear()
	}
}

func fillLabelBoxes(scanner rasterx.Scanner, w, h int, prims []svgscan.Primitive, bounds svgcrop.Bounds) {
	filler := rasterx.NewFiller(w, h, scanner)
	any := false
	for _, p := range prims {
		if _, ok := p.(svgscan.Label); !ok {
			continue
		}
		r, ok := svgcrop.PrimitiveExtent(p)
		if !ok {
			continue
		}
		filler.Start(toFixed(r.MinX-bounds.MinX, r.MinY-bounds.MinY))
		filler.Line(toFixed(r.MaxX-bounds.MinX, r.MinY-bounds.MinY))
		filler.Line(toFixed(r.MaxX-bounds.MinX, r.MaxY-bounds.MinY))
		filler.Line(toFixed(r.MinX-bounds.MinX, r.MaxY-bounds.MinY))
		filler.Stop(true)
		any = true
	}
	if any {
		scanner.SetColor(labelColor)
		filler.Draw()
		filler.Clear()
	}
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
