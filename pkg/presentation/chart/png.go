package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
)

var (
	background   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gainColor    = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	lossColor    = color.RGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
	referenceRGB = color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff}
)

// PNGExporter draws one bar per month and a horizontal line at the novelty
// adjusted monthly average.
type PNGExporter struct {
	Width  int
	Height int
}

func (e PNGExporter) Export(w io.Writer, series domain.MonthlySeries, scale Scale) error {
	if e.Width <= 0 || e.Height <= 0 {
		return errors.New("image dimensions must be positive")
	}
	img := image.NewRGBA(image.Rect(0, 0, e.Width, e.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	if len(series) > 0 {
		slot := e.Width / len(series)
		gap := slot / 5
		for i, sample := range series {
			barHeight := int(scale.ratio(sample.ProjectedValue) * float64(e.Height))
			c := gainColor
			if sample.ProjectedValue < 0 {
				c = lossColor
			}
			bar := image.Rect(i*slot+gap, e.Height-barHeight, (i+1)*slot-gap, e.Height)
			draw.Draw(img, bar, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}

	if ref := scale.Reference(); ref > 0 {
		y := e.Height - int(scale.ratio(ref)*float64(e.Height))
		line := image.Rect(0, y, e.Width, y+1)
		draw.Draw(img, line, &image.Uniform{C: referenceRGB}, image.Point{}, draw.Src)
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
