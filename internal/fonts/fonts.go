// Package fonts provides text metrics for chart layout, either measured from
// an embedded TrueType font or estimated from the text size alone.
package fonts

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Set measures text with one font source. Faces are created lazily per size
// and cached; a Set is safe for concurrent use.
type Set struct {
	source *text.FontSource

	mu    sync.Mutex
	faces map[float64]text.Face
}

// Default returns a Set backed by the Go Regular font.
func Default() (*Set, error) {
	return New(goregular.TTF)
}

// New parses a TrueType or OpenType font.
func New(data []byte) (*Set, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse font: %w", err)
	}
	return &Set{
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Face returns the face for size, creating it on first use.
func (s *Set) Face(size float64) text.Face {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.source.Face(size)
	s.faces[size] = f
	return f
}

// MeasureText returns the advance width and line height of text. Empty text
// still has the height of a line so that a present-but-empty label reserves
// its row.
func (s *Set) MeasureText(str string, size float64) (float64, float64) {
	if size <= 0 {
		return 0, 0
	}
	face := s.Face(size)
	if str == "" {
		return 0, face.Metrics().LineHeight()
	}
	return text.Measure(str, face)
}

// Ascent returns the distance from the top of a line to its baseline.
func (s *Set) Ascent(size float64) float64 {
	if size <= 0 {
		return 0
	}
	return s.Face(size).Metrics().Ascent
}

// Name returns the font family name.
func (s *Set) Name() string {
	return s.source.Name()
}

// Close releases the font source. The Set must not be used afterwards.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.faces)
	return s.source.Close()
}

const (
	// averageCharWidth is the advance of a proportional glyph relative to
	// the text size.
	averageCharWidth = 0.6
	// lineHeightFactor is the line height relative to the text size.
	lineHeightFactor = 1.2
)

// Estimate is a font-free Metrics implementation: every rune advances by
// 0.6 of the text size and a line is 1.2 times the size tall. Output is
// independent of installed fonts, which keeps SVG snapshots stable.
type Estimate struct{}

func (Estimate) MeasureText(str string, size float64) (float64, float64) {
	if size <= 0 {
		return 0, 0
	}
	return float64(utf8.RuneCountInString(str)) * size * averageCharWidth, size * lineHeightFactor
}

// Ascent approximates the baseline offset as 0.8 of the line height.
func (Estimate) Ascent(size float64) float64 {
	if size <= 0 {
		return 0
	}
	return size * lineHeightFactor * 0.8
}
