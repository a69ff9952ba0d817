// Package classify turns march results into something a character display
// can show: a glyph chosen from the depth, and a palette entry chosen from
// the surface colour.
package classify

// glyphStep maps depth ratios below Below to Glyph.
type glyphStep struct {
	Below float64
	Glyph rune
}

// glyphTable runs from nearest (darkest) to farthest. Ratios at or beyond
// the last bound map to Background.
var glyphTable = []glyphStep{
	{0.30, '@'},
	{0.40, '#'},
	{0.50, '$'},
	{0.55, '%'},
	{0.60, '&'},
	{0.65, '*'},
	{0.75, '+'},
	{0.80, '-'},
	{0.90, '.'},
}

// Background is the glyph for anything too far away to draw.
const Background = ' '

// Glyph returns the glyph for a ray that travelled depth out of maxDepth.
// The first table entry whose bound the ratio is strictly below wins.
func Glyph(depth, maxDepth float64) rune {
	ratio := depth / maxDepth
	for _, s := range glyphTable {
		if ratio < s.Below {
			return s.Glyph
		}
	}
	return Background
}

// Glyphs returns every glyph Glyph can produce, nearest first.
func Glyphs() []rune {
	out := make([]rune, 0, len(glyphTable)+1)
	for _, s := range glyphTable {
		out = append(out, s.Glyph)
	}
	return append(out, Background)
}
