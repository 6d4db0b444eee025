// Implements the style rewrites the depiction pipeline applies before
// cropping: uniform font sizes for atom labels and a fixed stroke
// width for bonds.
// Rewrites operate on presentation attributes in the document text, so
// the renderer's own formatting is preserved everywhere else. Values a
// rewrite cannot parse are left untouched.
package svgstyle

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	fontSizeRe    = regexp.MustCompile(`font-size\s*=\s*"[^"]*"`)
	strokeWidthRe = regexp.MustCompile(`stroke-width\s*=\s*"[^"]*"`)
)

// SetFontSize rewrites every font-size attribute of doc to size,
// in user units.
func SetFontSize(doc string, size float64) string {
	return fontSizeRe.ReplaceAllLiteralString(doc, `font-size="`+formatFloat(size)+`"`)
}

// ScaleFontSize multiplies every numeric font-size attribute of doc by
// factor. Sizes in units this package does not understand (em, named
// sizes) stay as they are.
func ScaleFontSize(doc string, factor float64) string {
	return fontSizeRe.ReplaceAllStringFunc(doc, func(m string) string {
		v, err := attrValue(m)
		if err != nil {
			return m
		}
		return `font-size="` + formatFloat(v*factor) + `"`
	})
}

// SetStrokeWidth rewrites every stroke-width attribute of doc to
// width, in user units.
func SetStrokeWidth(doc string, width float64) string {
	return strokeWidthRe.ReplaceAllLiteralString(doc, `stroke-width="`+formatFloat(width)+`"`)
}

// attrValue parses the number in a matched attr="value" chunk,
// tolerating a px or pt suffix.
func attrValue(m string) (float64, error) {
	open := strings.IndexByte(m, '"')
	v := strings.TrimSpace(m[open+1 : len(m)-1])
	v = strings.TrimSuffix(v, "px")
	v = strings.TrimSuffix(v, "pt")
	return strconv.ParseFloat(v, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
