package chart

import "github.com/gogpu/gg"

// Label is an optional piece of text. The zero value is absent.
type Label struct {
	text string
	set  bool
}

// LabelOf returns a present label holding s. An empty string is still a
// present label; it reserves space like any other text.
func LabelOf(s string) Label {
	return Label{text: s, set: true}
}

// Value returns the text and whether the label is present.
func (l Label) Value() (string, bool) {
	return l.text, l.set
}

// IsSet reports whether the label is present.
func (l Label) IsSet() bool {
	return l.set
}

// String returns the text, or "" when absent.
func (l Label) String() string {
	return l.text
}

// Entry is a single data point. Entries are plain values: a Chart copies
// the slice it is given and never hands out references into it.
type Entry struct {
	Value      float64
	Label      Label
	ValueLabel Label
	Color      gg.RGBA
	TextColor  gg.RGBA
}

// NewEntry returns an entry with the given value, drawn in color with
// gray label text.
func NewEntry(value float64, color gg.RGBA) Entry {
	return Entry{
		Value:     value,
		Color:     color,
		TextColor: DefaultTextColor,
	}
}

// WithLabel returns a copy of e with its footer label set.
func (e Entry) WithLabel(s string) Entry {
	e.Label = LabelOf(s)
	return e
}

// WithValueLabel returns a copy of e with its value label set.
func (e Entry) WithValueLabel(s string) Entry {
	e.ValueLabel = LabelOf(s)
	return e
}

// Range is the value extent of an entry sequence.
type Range struct {
	Min, Max float64
	// AbsMax is the largest magnitude, max(|Min|, |Max|).
	AbsMax float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Degenerate reports whether all values are equal.
func (r Range) Degenerate() bool {
	return r.Max == r.Min
}

// ValueRange scans entries for their extent. An empty sequence yields the
// zero Range.
func ValueRange(entries []Entry) Range {
	if len(entries) == 0 {
		return Range{}
	}
	r := Range{Min: entries[0].Value, Max: entries[0].Value}
	for _, e := range entries[1:] {
		if e.Value < r.Min {
			r.Min = e.Value
		}
		if e.Value > r.Max {
			r.Max = e.Value
		}
	}
	r.AbsMax = max(abs(r.Min), abs(r.Max))
	return r
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
