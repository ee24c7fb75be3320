package circuit

import (
	"fmt"
	"strconv"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits of coordinates in debug output such as Wire.String.
var Precision = 8

// num is a coordinate rounded for display. It must not be used for data that is read back.
type num float64

func (f num) String() string {
	return string(minify.Number([]byte(fmt.Sprintf("%.*g", Precision, f)), Precision))
}

// coord formats a coordinate in the shortest form that parses back to exactly f.
func coord(f float64) string {
	return string(minify.Number([]byte(strconv.FormatFloat(f, 'g', -1, 64)), -1))
}
