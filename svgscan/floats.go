package svgscan

import (
	"errors"
	"strconv"
	"strings"
)

var errEmptyCoordinate = errors.New("empty coordinate list")

// parseFloat reads a float, tolerating the trailing unit suffixes
// renderers commonly emit on font sizes. A bare number is in user
// units, which is what px means as well.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSuffix(s, "pt")
	return strconv.ParseFloat(s, 64)
}

// firstPoint returns the first number of a comma or space separated
// coordinate list, as found in text x and y attributes with per-glyph
// positioning.
func firstPoint(s string) (float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return 0, errEmptyCoordinate
	}
	return parseFloat(fields[0])
}
