package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/buffos/go-microcharts/chart"
	"github.com/buffos/go-microcharts/dataset"
)

const (
	defaultWidth  = 400.0
	defaultHeight = 300.0
	defaultKind   = "line"
)

// --- Helper Functions for Pointers ---
func getString(ptr *string, def string) string {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getInt(ptr *int, def int) int {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getBool(ptr *bool, def bool) bool {
	if ptr != nil {
		return *ptr
	}
	return def
}

// getColor parses an optional hex color, keeping def when unset.
func getColor(field string, ptr *string, def gg.RGBA) (gg.RGBA, error) {
	if ptr == nil {
		return def, nil
	}
	c, err := dataset.ParseColor(*ptr)
	if err != nil {
		return def, fmt.Errorf("template %s: %w", field, err)
	}
	return c, nil
}

// --- Effective Style ---

func getEffectiveStyle(defaults chart.Style, override *StyleOverride) (chart.Style, error) {
	effective := defaults
	if override == nil {
		return effective, nil
	}

	effective.Margin = getFloat64(override.Margin, defaults.Margin)
	effective.LabelTextSize = getFloat64(override.LabelTextSize, defaults.LabelTextSize)
	effective.ShowAxis = getBool(override.ShowAxis, defaults.ShowAxis)
	effective.LineSize = getFloat64(override.LineSize, defaults.LineSize)
	effective.LineAreaAlpha = getInt(override.LineAreaAlpha, defaults.LineAreaAlpha)
	effective.PointSize = getFloat64(override.PointSize, defaults.PointSize)

	var err error
	if override.LineMode != nil {
		if effective.LineMode, err = chart.ParseLineMode(*override.LineMode); err != nil {
			return effective, err
		}
	}
	if override.PointMode != nil {
		if effective.PointMode, err = chart.ParsePointMode(*override.PointMode); err != nil {
			return effective, err
		}
	}
	if effective.AxisColor, err = getColor("style.axis_color", override.AxisColor, defaults.AxisColor); err != nil {
		return effective, err
	}
	if effective.LineColor, err = getColor("style.line_color", override.LineColor, defaults.LineColor); err != nil {
		return effective, err
	}
	if override.Locale != nil {
		tag, err := language.Parse(*override.Locale)
		if err != nil {
			return effective, fmt.Errorf("template style.locale %q: %w", *override.Locale, err)
		}
		effective.Locale = tag
	}
	return effective, effective.Validate()
}

func getEffectivePalette(colors []string) (chart.Palette, error) {
	if len(colors) == 0 {
		return chart.DefaultPalette, nil
	}
	palette := make(chart.Palette, 0, len(colors))
	for i, s := range colors {
		c, err := dataset.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("template palette[%d]: %w", i, err)
		}
		palette = append(palette, c)
	}
	return palette, nil
}

// --- Template Loading ---

// loadTemplate reads a JSON or YAML template, chosen by extension.
func loadTemplate(path string) (Template, error) {
	var template Template
	templateBytes, err := os.ReadFile(path)
	if err != nil {
		return template, fmt.Errorf("reading template file '%s': %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(templateBytes, &template)
	default:
		err = json.Unmarshal(templateBytes, &template)
	}
	if err != nil {
		return template, fmt.Errorf("parsing template '%s': %w", path, err)
	}
	return template, nil
}

// --- Chart Job ---

// chartJob is a fully resolved render: the chart plus canvas settings.
type chartJob struct {
	Chart      *chart.Chart
	Width      float64
	Height     float64
	Background gg.RGBA
	FontFamily string
}

// newChartJob merges template, data and command line overrides.
func newChartJob(template Template, records []dataset.Record, opts renderOptions) (*chartJob, error) {
	kindName := getString(template.Kind, defaultKind)
	if opts.Kind != "" {
		kindName = opts.Kind
	}
	kind, err := chart.KindByName(strings.ToLower(kindName))
	if err != nil {
		return nil, err
	}

	style, err := getEffectiveStyle(chart.DefaultStyle(), template.Style)
	if err != nil {
		return nil, err
	}
	palette, err := getEffectivePalette(template.Palette)
	if err != nil {
		return nil, err
	}
	textColor, err := getColor("text_color", template.TextColor, chart.DefaultTextColor)
	if err != nil {
		return nil, err
	}
	background, err := getColor("background", template.Background, gg.White)
	if err != nil {
		return nil, err
	}

	entries, _, err := dataset.Entries(records, palette, chart.Cursor{}, textColor)
	if err != nil {
		return nil, err
	}
	c, err := chart.New(kind, entries, style)
	if err != nil {
		return nil, err
	}

	job := &chartJob{
		Chart:      c,
		Width:      getFloat64(template.Width, defaultWidth),
		Height:     getFloat64(template.Height, defaultHeight),
		Background: background,
		FontFamily: getString(template.FontFamily, ""),
	}
	if opts.Width > 0 {
		job.Width = opts.Width
	}
	if opts.Height > 0 {
		job.Height = opts.Height
	}
	if job.Width <= 0 || job.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %gx%g", job.Width, job.Height)
	}
	return job, nil
}
