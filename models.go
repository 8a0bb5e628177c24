package main

// --- Template Structs ---

// Template is a chart definition file (JSON or YAML). Every field is
// optional; unset fields fall back to the chart defaults.
type Template struct {
	Kind   *string  `json:"kind,omitempty" yaml:"kind,omitempty"` // "line", "point" or "bar"
	Width  *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *float64 `json:"height,omitempty" yaml:"height,omitempty"`

	Style *StyleOverride `json:"style,omitempty" yaml:"style,omitempty"`

	// Palette replaces the default entry colors, in order.
	Palette    []string `json:"palette,omitempty" yaml:"palette,omitempty"`
	TextColor  *string  `json:"text_color,omitempty" yaml:"text_color,omitempty"` // footer label color for entries without one
	Background *string  `json:"background,omitempty" yaml:"background,omitempty"`
	FontFamily *string  `json:"font_family,omitempty" yaml:"font_family,omitempty"` // SVG only
}

// StyleOverride mirrors chart.Style with optional fields.
type StyleOverride struct {
	Margin        *float64 `json:"margin,omitempty" yaml:"margin,omitempty"`
	LabelTextSize *float64 `json:"label_text_size,omitempty" yaml:"label_text_size,omitempty"`
	ShowAxis      *bool    `json:"show_axis,omitempty" yaml:"show_axis,omitempty"`
	LineSize      *float64 `json:"line_size,omitempty" yaml:"line_size,omitempty"`
	LineMode      *string  `json:"line_mode,omitempty" yaml:"line_mode,omitempty"` // "none", "straight", "spline"
	LineAreaAlpha *int     `json:"line_area_alpha,omitempty" yaml:"line_area_alpha,omitempty"`
	PointSize     *float64 `json:"point_size,omitempty" yaml:"point_size,omitempty"`
	PointMode     *string  `json:"point_mode,omitempty" yaml:"point_mode,omitempty"` // "none", "circle", "square"
	AxisColor     *string  `json:"axis_color,omitempty" yaml:"axis_color,omitempty"`
	LineColor     *string  `json:"line_color,omitempty" yaml:"line_color,omitempty"`
	Locale        *string  `json:"locale,omitempty" yaml:"locale,omitempty"` // BCP 47 tag for axis numbers
}

// --- Render Options ---

// renderOptions are the command line settings of one render.
type renderOptions struct {
	TemplatePath string
	DataPath     string
	Format       string
	Output       string
	Sheet        string

	// Overrides from flags or the config file; zero values keep the template.
	Width  float64
	Height float64
	Kind   string

	Engine  string // "native" or "browser"
	Measure string // "font" or "estimate"
}
