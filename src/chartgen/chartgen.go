// Package chartgen composes and renders the Wa-Tor parallel speedup chart:
// an ideal linear reference line, the measured speedup curve with point
// markers and value annotations, worker-count X ticks, gridlines, and a
// legend, exported as a 300 DPI PNG.
package chartgen

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/YimiaoHao/wator-project/src/speedup"
)

// ChartDPI is the fixed export resolution.
const ChartDPI = 300

// accentBlue matches the simulation project's plot color (#007acc).
var accentBlue = drawing.Color{R: 0, G: 122, B: 204, A: 255}

// fully transparent; keeps annotation labels as bare text without the
// default boxed background.
var noFill = drawing.Color{R: 255, G: 255, B: 255, A: 0}

// Options controls chart composition. Zero-value fields fall back to the
// defaults from DefaultOptions.
type Options struct {
	Title           string
	Width           int // pixels; default is 10 inches at 300 DPI
	Height          int // pixels; default is 6 inches at 300 DPI
	ShowIdeal       bool
	ShowAnnotations bool
	// Caption, when non-empty, is stamped onto the bottom-left of the
	// exported PNG after rendering.
	Caption string
}

// DefaultOptions returns the reference chart configuration.
func DefaultOptions() Options {
	return Options{
		Title:           "Wa-Tor Simulation Parallel Speedup",
		Width:           10 * ChartDPI,
		Height:          6 * ChartDPI,
		ShowIdeal:       true,
		ShowAnnotations: true,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.Height <= 0 {
		o.Height = def.Height
	}
	return o
}

// lineXY converts a point set to go-chart X/Y slices. A single point is
// padded with a duplicate at x+1 because go-chart cannot render a
// zero-width X range.
func lineXY(xs, ys []float64) ([]float64, []float64) {
	if len(xs) == 1 {
		return []float64{xs[0], xs[0] + 1}, []float64{ys[0], ys[0]}
	}
	return xs, ys
}

// annotationLabel formats a speedup value the way the chart annotates it.
func annotationLabel(s float64) string {
	return fmt.Sprintf("%.2fx", s)
}

// BuildChart assembles the speedup chart from a validated dataset and its
// derived points. It does not render; see RenderImage and SavePNG.
func BuildChart(ms []speedup.Measurement, pts []speedup.SpeedupPoint, opts Options) (chart.Chart, error) {
	if len(ms) == 0 || len(ms) != len(pts) {
		return chart.Chart{}, fmt.Errorf("chart input: %d measurements vs %d speedup points", len(ms), len(pts))
	}
	opts = opts.withDefaults()

	xs := make([]float64, len(ms))
	ideal := make([]float64, len(ms))
	actual := make([]float64, len(pts))
	for i, m := range ms {
		xs[i] = float64(m.Workers)
		ideal[i] = float64(m.Workers)
		actual[i] = pts[i].Speedup
	}

	series := []chart.Series{}
	if opts.ShowIdeal {
		ix, iy := lineXY(xs, ideal)
		series = append(series, chart.ContinuousSeries{
			Name:    "Ideal Linear Speedup",
			XValues: ix,
			YValues: iy,
			Style: chart.Style{
				StrokeColor:     chart.ColorBlack.WithAlpha(128),
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}
	ax, ay := lineXY(xs, actual)
	series = append(series, chart.ContinuousSeries{
		Name:    "Actual Speedup",
		XValues: ax,
		YValues: ay,
		Style: chart.Style{
			StrokeColor: accentBlue,
			StrokeWidth: 2.0,
			DotColor:    accentBlue,
			DotWidth:    5.0,
		},
	})
	if opts.ShowAnnotations {
		notes := make([]chart.Value2, 0, len(pts))
		for _, p := range pts {
			notes = append(notes, chart.Value2{
				XValue: float64(p.Workers),
				YValue: p.Speedup,
				Label:  annotationLabel(p.Speedup),
			})
		}
		series = append(series, chart.AnnotationSeries{
			Annotations: notes,
			Style: chart.Style{
				FontSize:    10,
				FontColor:   chart.ColorBlack,
				StrokeColor: noFill,
				FillColor:   noFill,
			},
		})
	}

	// Y range covers both curves; the ideal line tops out at the largest
	// worker count.
	maxY := speedup.MaxSpeedup(pts)
	if opts.ShowIdeal && ideal[len(ideal)-1] > maxY {
		maxY = ideal[len(ideal)-1]
	}
	// Zero-anchored with a nice rounded max, like an absolute-scale chart.
	_, yMax := niceAxisBounds(0, maxY)

	xTicks := workerTicks(ms)
	if len(xTicks) == 1 {
		// go-chart needs a non-degenerate X span; mirror the padded series
		// point with an unlabeled tick.
		xTicks = append(xTicks, chart.Tick{Value: xTicks[0].Value + 1, Label: ""})
	}

	grid := chart.Style{
		StrokeColor:     chart.ColorAlternateGray.WithAlpha(178),
		StrokeWidth:     1.0,
		StrokeDashArray: []float64{5.0, 5.0},
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		DPI:        ChartDPI,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 30, Right: 30, Bottom: 30}},
		XAxis: chart.XAxis{
			Name:           "Number of Threads (Workers)",
			Ticks:          xTicks,
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           "Speedup Factor",
			Range:          &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks:          niceTicks(0, yMax, 6),
			GridMajorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch, nil
}
