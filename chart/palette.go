package chart

import "github.com/gogpu/gg"

// DefaultTextColor is used for labels when an entry does not set one.
var DefaultTextColor = gg.Hex("#808080")

// DefaultPalette is the round-robin color set used for entries without an
// explicit color.
var DefaultPalette = Palette{
	gg.Hex("#266489"),
	gg.Hex("#68B9C0"),
	gg.Hex("#90D585"),
	gg.Hex("#F3C151"),
	gg.Hex("#F37F64"),
	gg.Hex("#424856"),
	gg.Hex("#8F97A4"),
	gg.Hex("#DAC096"),
	gg.Hex("#76846E"),
	gg.Hex("#DABFAF"),
	gg.Hex("#A65B69"),
	gg.Hex("#97A69D"),
}

// Palette is an ordered set of colors handed out in turn.
type Palette []gg.RGBA

// Cursor is a position in a Palette. The zero value starts at the first
// color. Cursors are values: callers thread them through successive calls.
type Cursor struct {
	index int
}

// Index returns the palette slot the cursor points at.
func (c Cursor) Index() int {
	return c.index
}

// Next returns the color under the cursor and the advanced cursor, wrapping
// at the end of the palette. An empty palette yields black and an unchanged
// cursor.
func (p Palette) Next(c Cursor) (gg.RGBA, Cursor) {
	if len(p) == 0 {
		return gg.Black, c
	}
	i := c.index % len(p)
	return p[i], Cursor{index: (i + 1) % len(p)}
}
