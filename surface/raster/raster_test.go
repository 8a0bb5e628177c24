package raster

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buffos/go-microcharts/chart"
	"github.com/buffos/go-microcharts/internal/fonts"
)

func sampleChart(t *testing.T) *chart.Chart {
	t.Helper()
	entries := []chart.Entry{
		chart.NewEntry(-400, gg.Hex("#266489")).WithLabel("Jan").WithValueLabel("-400"),
		chart.NewEntry(600, gg.Hex("#68B9C0")).WithLabel("Feb").WithValueLabel("600"),
		chart.NewEntry(900, gg.Hex("#90D585")).WithLabel("Mar").WithValueLabel("900"),
	}
	style := chart.DefaultStyle()
	style.ShowAxis = true
	c, err := chart.New(chart.Line(), entries, style)
	require.NoError(t, err)
	return c
}

func TestSurface_RenderPNG(t *testing.T) {
	set, err := fonts.Default()
	require.NoError(t, err)
	defer set.Close()

	s, err := New(400, 300, set, gg.White)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, sampleChart(t).Render(s, 400, 300))
	require.NoError(t, s.Err())

	var buf bytes.Buffer
	require.NoError(t, s.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestSurface_RenderJPEG(t *testing.T) {
	set, err := fonts.Default()
	require.NoError(t, err)
	defer set.Close()

	s, err := New(200, 100, set, gg.White)
	require.NoError(t, err)
	defer s.Close()

	c, err := chart.New(chart.Bars(), []chart.Entry{
		chart.NewEntry(3, gg.Red),
		chart.NewEntry(-2, gg.Blue),
	}, chart.DefaultStyle())
	require.NoError(t, err)
	require.NoError(t, c.Render(s, 200, 100))

	var buf bytes.Buffer
	require.NoError(t, s.EncodeJPEG(&buf, 0))
	cfg, err := jpeg.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
}

func TestSurface_MeasureMatchesFonts(t *testing.T) {
	set, err := fonts.Default()
	require.NoError(t, err)
	defer set.Close()

	s, err := New(10, 10, set, gg.White)
	require.NoError(t, err)
	defer s.Close()

	w, h := s.MeasureText("900", 16)
	ww, hh := set.MeasureText("900", 16)
	assert.Equal(t, ww, w)
	assert.Equal(t, hh, h)
}

func TestNew_Invalid(t *testing.T) {
	set, err := fonts.Default()
	require.NoError(t, err)
	defer set.Close()

	_, err = New(0, 10, set, gg.White)
	assert.Error(t, err)
	_, err = New(10, 10, nil, gg.White)
	assert.Error(t, err)
}
