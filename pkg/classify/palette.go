package classify

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Entry is one palette colour and the display colour id it is drawn with.
type Entry struct {
	Name   string
	Color  v3.Vec // RGB 0..255
	Device int    // 0..7 standard, 8..15 bright
}

// Palette is an ordered, read-only list of entries.
type Palette []Entry

// defaultPalette is the 16-colour terminal palette.
var defaultPalette = Palette{
	{"black", v3.Vec{X: 12, Y: 12, Z: 12}, 0},
	{"red", v3.Vec{X: 255, Y: 0, Z: 0}, 1},
	{"green", v3.Vec{X: 0, Y: 255, Z: 0}, 2},
	{"yellow", v3.Vec{X: 255, Y: 255, Z: 0}, 3},
	{"blue", v3.Vec{X: 0, Y: 0, Z: 255}, 4},
	{"magenta", v3.Vec{X: 255, Y: 0, Z: 255}, 5},
	{"cyan", v3.Vec{X: 0, Y: 255, Z: 255}, 6},
	{"white", v3.Vec{X: 230, Y: 230, Z: 230}, 7},
	{"bright black", v3.Vec{X: 127, Y: 127, Z: 127}, 8},
	{"bright red", v3.Vec{X: 230, Y: 70, Z: 80}, 9},
	{"bright green", v3.Vec{X: 70, Y: 230, Z: 80}, 10},
	{"bright yellow", v3.Vec{X: 230, Y: 230, Z: 80}, 11},
	{"bright blue", v3.Vec{X: 70, Y: 80, Z: 230}, 12},
	{"bright magenta", v3.Vec{X: 230, Y: 70, Z: 230}, 13},
	{"bright cyan", v3.Vec{X: 70, Y: 230, Z: 230}, 14},
	{"bright white", v3.Vec{X: 255, Y: 255, Z: 255}, 15},
}

// DefaultPalette returns a copy of the 16-colour terminal palette.
func DefaultPalette() Palette {
	return append(Palette(nil), defaultPalette...)
}

// Nearest returns the index of the entry closest to c in RGB space.
// On equal distances the earlier entry wins. An empty palette yields -1.
func (p Palette) Nearest(c v3.Vec) int {
	best, bestDist := -1, math.Inf(1)
	for i, e := range p {
		if d := c.Sub(e.Color).Length(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
