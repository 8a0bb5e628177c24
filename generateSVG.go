package main

import (
	"fmt"

	"github.com/buffos/go-microcharts/chart"
	"github.com/buffos/go-microcharts/internal/fonts"
	"github.com/buffos/go-microcharts/surface/svg"
)

const (
	measureFont     = "font"
	measureEstimate = "estimate"
)

// newMetrics returns the text metrics for a measure mode and a cleanup
// function. The font mode measures with the embedded Go Regular face; the
// estimate mode is font-free and stable across machines.
func newMetrics(measure string) (chart.Metrics, string, func(), error) {
	switch measure {
	case "", measureFont:
		set, err := fonts.Default()
		if err != nil {
			return nil, "", nil, err
		}
		return set, set.Name() + ", sans-serif", func() { set.Close() }, nil
	case measureEstimate:
		return fonts.Estimate{}, svg.DefaultFontFamily, func() {}, nil
	}
	return nil, "", nil, fmt.Errorf("unsupported measure mode '%s' (expected font or estimate)", measure)
}

// GenerateSVG renders a chart job as an SVG document.
func GenerateSVG(job *chartJob, m chart.Metrics, fontFamily string) (string, error) {
	if job.FontFamily != "" {
		fontFamily = job.FontFamily
	}
	surface := svg.New(job.Width, job.Height, m,
		svg.WithBackground(job.Background),
		svg.WithFontFamily(fontFamily),
	)
	if err := job.Chart.Render(surface, job.Width, job.Height); err != nil {
		return "", fmt.Errorf("rendering %s chart: %w", job.Chart.Kind().Name(), err)
	}
	return surface.String(), nil
}
