package chart

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// Frame carries everything a content pass needs for one render.
type Frame struct {
	Entries []Entry
	Style   Style
	Layout  Layout
	Points  []gg.Point
	Width   float64
	Height  float64
}

// Kind is the capability set of a chart variant. Variants share layout and
// point placement through pointLayout and differ in their content pass.
type Kind interface {
	Name() string
	ComputeLayout(entries []Entry, width, height float64, style Style, m Metrics) Layout
	PlacePoints(entries []Entry, l Layout, style Style) []gg.Point
	RenderContent(s Surface, f Frame)
}

// pointLayout is the layout and placement shared by point-based kinds.
type pointLayout struct{}

func (pointLayout) ComputeLayout(entries []Entry, width, height float64, style Style, m Metrics) Layout {
	return ComputeLayout(entries, width, height, style, m)
}

func (pointLayout) PlacePoints(entries []Entry, l Layout, style Style) []gg.Point {
	return PlacePoints(entries, l, style)
}

// Chart is an immutable chart definition. Render does not mutate it, so a
// Chart may be rendered repeatedly and from several goroutines.
type Chart struct {
	kind    Kind
	entries []Entry
	style   Style
}

// New validates style and entry values and returns a chart owning a copy
// of entries.
func New(kind Kind, entries []Entry, style Style) (*Chart, error) {
	if kind == nil {
		return nil, newConfigError("kind", nil, "a chart kind is required")
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	for i, e := range entries {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, newConfigError(fmt.Sprintf("entries[%d].value", i), e.Value, "must be finite")
		}
	}
	return &Chart{
		kind:    kind,
		entries: slices.Clone(entries),
		style:   style,
	}, nil
}

// Kind returns the chart variant.
func (c *Chart) Kind() Kind { return c.kind }

// Style returns the chart style.
func (c *Chart) Style() Style { return c.style }

// Entries returns a copy of the chart's entries.
func (c *Chart) Entries() []Entry { return slices.Clone(c.entries) }

// Frame computes the layout and point positions for a canvas without
// drawing anything.
func (c *Chart) Frame(s Metrics, width, height float64) (Frame, error) {
	if err := validateCanvas(width, height); err != nil {
		return Frame{}, err
	}
	l := c.kind.ComputeLayout(c.entries, width, height, c.style, s)
	return Frame{
		Entries: c.entries,
		Style:   c.style,
		Layout:  l,
		Points:  c.kind.PlacePoints(c.entries, l, c.style),
		Width:   width,
		Height:  height,
	}, nil
}

// Render draws the chart onto s. Configuration errors are returned before
// any primitive reaches the surface.
func (c *Chart) Render(s Surface, width, height float64) error {
	if s == nil {
		return fmt.Errorf("chart: render %s: nil surface", c.kind.Name())
	}
	f, err := c.Frame(s, width, height)
	if err != nil {
		return err
	}
	c.kind.RenderContent(s, f)
	return nil
}

// KindByName returns the kind registered under name: "line", "point" or "bar".
func KindByName(name string) (Kind, error) {
	for _, k := range []Kind{Line(), Points(), Bars()} {
		if k.Name() == name {
			return k, nil
		}
	}
	return nil, newConfigError("kind", name, "expected line, point or bar")
}
