// Package dataset loads chart entries from JSON, YAML, CSV and XLSX files.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"

	"github.com/buffos/go-microcharts/chart"
)

// Record is one entry as it appears in a data file. Nil fields are absent.
type Record struct {
	Value      float64 `json:"value" yaml:"value"`
	Label      *string `json:"label,omitempty" yaml:"label,omitempty"`
	ValueLabel *string `json:"value_label,omitempty" yaml:"value_label,omitempty"`
	Color      *string `json:"color,omitempty" yaml:"color,omitempty"`
	TextColor  *string `json:"text_color,omitempty" yaml:"text_color,omitempty"`
}

// Data is the object form of a data file.
type Data struct {
	Entries []Record `json:"entries" yaml:"entries"`
}

var errBadColor = errors.New("expected #RGB, #RRGGBB or #RRGGBBAA")

// ParseColor parses a hex color with or without the leading '#'.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%q: %w", s, errBadColor)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return gg.RGBA{}, fmt.Errorf("%q: %w", s, errBadColor)
		}
	}
	return gg.Hex(hex), nil
}

// Entries converts records to chart entries. Records without a color take
// the next palette color, starting at cursor; the advanced cursor is
// returned so that several series can share one palette. Records without a
// text color use textColor.
func Entries(records []Record, palette chart.Palette, cursor chart.Cursor, textColor gg.RGBA) ([]chart.Entry, chart.Cursor, error) {
	entries := make([]chart.Entry, 0, len(records))
	for i, r := range records {
		var color gg.RGBA
		if r.Color != nil {
			c, err := ParseColor(*r.Color)
			if err != nil {
				return nil, cursor, &RecordError{Row: i + 1, Field: "color", Err: err}
			}
			color = c
		} else {
			color, cursor = palette.Next(cursor)
		}

		e := chart.NewEntry(r.Value, color)
		e.TextColor = textColor
		if r.TextColor != nil {
			c, err := ParseColor(*r.TextColor)
			if err != nil {
				return nil, cursor, &RecordError{Row: i + 1, Field: "text_color", Err: err}
			}
			e.TextColor = c
		}
		if r.Label != nil {
			e = e.WithLabel(*r.Label)
		}
		if r.ValueLabel != nil {
			e = e.WithValueLabel(*r.ValueLabel)
		}
		entries = append(entries, e)
	}
	return entries, cursor, nil
}
