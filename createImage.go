// createImage.go
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/chromedp"

	"github.com/buffos/go-microcharts/internal/fonts"
	"github.com/buffos/go-microcharts/surface/raster"
)

const (
	engineNative  = "native"
	engineBrowser = "browser"

	jpegQuality    = 90
	browserTimeout = 30 * time.Second
)

// generateImage writes the chart as PNG or JPEG using the selected engine.
func generateImage(ctx context.Context, job *chartJob, opts renderOptions, outputWriter io.Writer) error {
	switch opts.Engine {
	case "", engineNative:
		return generateNativeImage(job, opts.Format, outputWriter)
	case engineBrowser:
		return generateBrowserImage(ctx, job, opts, outputWriter)
	}
	return fmt.Errorf("unsupported engine '%s' (expected native or browser)", opts.Engine)
}

// generateNativeImage rasterizes the chart in process with the embedded font.
func generateNativeImage(job *chartJob, format string, outputWriter io.Writer) error {
	set, err := fonts.Default()
	if err != nil {
		return err
	}
	defer set.Close()

	surface, err := raster.New(int(math.Ceil(job.Width)), int(math.Ceil(job.Height)), set, job.Background)
	if err != nil {
		return err
	}
	defer surface.Close()

	if err := job.Chart.Render(surface, job.Width, job.Height); err != nil {
		return fmt.Errorf("rendering %s chart: %w", job.Chart.Kind().Name(), err)
	}

	switch format {
	case "png":
		err = surface.EncodePNG(outputWriter)
	case "jpg", "jpeg":
		err = surface.EncodeJPEG(outputWriter, jpegQuality)
	default:
		return fmt.Errorf("internal error: unsupported image format '%s'", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", strings.ToUpper(format), err)
	}
	log.Debug("Encoded image", "engine", engineNative, "format", format)
	return nil
}

// generateBrowserImage renders the SVG output in headless Chrome and
// screenshots the svg element.
func generateBrowserImage(ctx context.Context, job *chartJob, opts renderOptions, outputWriter io.Writer) error {
	metrics, family, closeMetrics, err := newMetrics(opts.Measure)
	if err != nil {
		return err
	}
	defer closeMetrics()

	svgString, err := GenerateSVG(job, metrics, family)
	if err != nil {
		return fmt.Errorf("failed to generate intermediate SVG: %w", err)
	}

	// Load the SVG from a data URI so that no temp file is needed.
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svgString))

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, browserTimeout)
	defer cancelTimeout()

	var screenshotBuf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshotBuf, chromedp.ByQuery),
	}

	log.Debug("Running chromedp tasks", "bytes", len(svgString))
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshotBuf) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	screenshotReader := bytes.NewReader(screenshotBuf)
	switch opts.Format {
	case "png":
		// Screenshot is already PNG
		if _, err := io.Copy(outputWriter, screenshotReader); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(screenshotReader)
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		if err := jpeg.Encode(outputWriter, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("internal error: unsupported image format '%s' with chromedp", opts.Format)
	}

	log.Debug("Encoded image", "engine", engineBrowser, "format", opts.Format)
	return nil
}
