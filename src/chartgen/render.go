package chartgen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/YimiaoHao/wator-project/src/speedup"
)

// RenderImage builds the chart and renders it to an in-memory image, with
// the caption (if any) already stamped. The viewer displays this directly.
func RenderImage(ms []speedup.Measurement, pts []speedup.SpeedupPoint, opts Options) (image.Image, error) {
	ch, err := BuildChart(ms, pts, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode rendered chart: %w", err)
	}
	if opts.Caption != "" {
		img = drawCaption(img, opts.Caption)
	}
	return img, nil
}

// SavePNG renders the chart and writes it to path in one call. The PNG is
// fully encoded in memory first, so a render failure leaves no file behind
// and a write failure leaves no partial chart.
func SavePNG(path string, ms []speedup.Measurement, pts []speedup.SpeedupPoint, opts Options) error {
	img, err := RenderImage(ms, pts, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
