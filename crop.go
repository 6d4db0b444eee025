// Tightens the declared viewport of a rendered SVG document around its
// actual geometry.
// Depiction renderers declare a generous canvas; after font-size and
// stroke-width rewrites the drawing often occupies a fraction of it.
// Crop reconstructs the extents of every bond stroke and atom label,
// pads them by a margin, and rewrites the viewBox declaration.
// Extraction lives in svgcrop/svgscan; a raster preview of the
// reconstructed extents lives in svgcrop/svgraster.
package svgcrop

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/benoitkugler/svgcrop/svgscan"
)

// DefaultMargin is the padding, in user units, left around the
// tightened geometry.
const DefaultMargin = 30.0

var (
	// ErrNoViewBox means the document declares no viewBox, so there is
	// nothing to rewrite.
	ErrNoViewBox = errors.New("svgcrop: document has no viewBox declaration")

	// ErrNoGeometry means no line or text element contributed an
	// extent. See CropOrOriginal for the usual fallback.
	ErrNoGeometry = errors.New("svgcrop: document has no drawable geometry")
)

var viewBoxRe = regexp.MustCompile(`viewBox\s*=\s*"[^"]*"`)

// Crop recomputes a minimal viewport enclosing every stroked line and
// every text label of doc, pads it by margin on all four sides, and
// returns a copy of doc with the first viewBox declaration replaced.
// doc itself is never modified.
//
// Crop fails with ErrNoViewBox when doc declares no viewBox at all,
// and with ErrNoGeometry when no element contributed an extent; it
// never emits an inverted or non-finite viewport.
func Crop(doc string, margin float64) (string, error) {
	loc := viewBoxRe.FindStringIndex(doc)
	if loc == nil {
		return "", ErrNoViewBox
	}
	prims, err := svgscan.ExtractString(doc)
	if err != nil {
		return "", err
	}
	bounds := Extent(prims)
	if bounds.Empty() {
		return "", ErrNoGeometry
	}
	bounds = bounds.Pad(margin)
	viewBox := `viewBox="` + formatFloat(bounds.MinX) + " " + formatFloat(bounds.MinY) + " " +
		formatFloat(bounds.MaxX-bounds.MinX) + " " + formatFloat(bounds.MaxY-bounds.MinY) + `"`
	return doc[:loc[0]] + viewBox + doc[loc[1]:], nil
}

// CropOrOriginal applies Crop, but returns doc unchanged when it
// contains no geometry: an empty rendering is left exactly as the
// renderer emitted it. A missing viewBox still fails.
func CropOrOriginal(doc string, margin float64) (string, error) {
	out, err := Crop(doc, margin)
	if err == ErrNoGeometry {
		return doc, nil
	}
	return out, err
}

// formatFloat renders v the shortest way that round-trips through
// strconv.ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
