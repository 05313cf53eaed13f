package chartgen

import (
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/YimiaoHao/wator-project/src/speedup"
)

func referenceInput(t *testing.T) ([]speedup.Measurement, []speedup.SpeedupPoint) {
	t.Helper()
	ms := speedup.SampleDataset()
	pts, err := speedup.ComputeSpeedups(ms)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return ms, pts
}

func TestBuildChartSeriesAndNames(t *testing.T) {
	ms, pts := referenceInput(t)
	ch, err := BuildChart(ms, pts, DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ch.Series) != 3 {
		t.Fatalf("expected ideal + actual + annotations, got %d series", len(ch.Series))
	}
	ideal, ok := ch.Series[0].(chart.ContinuousSeries)
	if !ok || ideal.Name != "Ideal Linear Speedup" {
		t.Fatalf("series 0: expected ideal line, got %T %q", ch.Series[0], ideal.Name)
	}
	actual, ok := ch.Series[1].(chart.ContinuousSeries)
	if !ok || actual.Name != "Actual Speedup" {
		t.Fatalf("series 1: expected actual line, got %T %q", ch.Series[1], actual.Name)
	}
	// Ideal line plots workers against themselves.
	for i := range ideal.XValues {
		if ideal.XValues[i] != ideal.YValues[i] {
			t.Fatalf("ideal line not y=x at %d: (%v,%v)", i, ideal.XValues[i], ideal.YValues[i])
		}
	}
	if len(ideal.Style.StrokeDashArray) == 0 {
		t.Fatalf("ideal line should be dashed")
	}
	if actual.Style.DotWidth <= 0 {
		t.Fatalf("actual line should have point markers")
	}
}

func TestBuildChartAnnotationLabels(t *testing.T) {
	ms, pts := referenceInput(t)
	ch, err := BuildChart(ms, pts, DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ann, ok := ch.Series[2].(chart.AnnotationSeries)
	if !ok {
		t.Fatalf("series 2: expected annotations, got %T", ch.Series[2])
	}
	want := []string{"1.00x", "2.06x", "3.43x", "5.20x"}
	if len(ann.Annotations) != len(want) {
		t.Fatalf("expected %d annotations, got %d", len(want), len(ann.Annotations))
	}
	for i, a := range ann.Annotations {
		if a.Label != want[i] {
			t.Fatalf("annotation %d: expected %q, got %q", i, want[i], a.Label)
		}
		if a.XValue != float64(pts[i].Workers) || a.YValue != pts[i].Speedup {
			t.Fatalf("annotation %d misplaced: (%v,%v)", i, a.XValue, a.YValue)
		}
	}
}

func TestBuildChartXTicksExactlyWorkers(t *testing.T) {
	ms, pts := referenceInput(t)
	ch, err := BuildChart(ms, pts, DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []chart.Tick{{Value: 1, Label: "1"}, {Value: 2, Label: "2"}, {Value: 4, Label: "4"}, {Value: 8, Label: "8"}}
	if len(ch.XAxis.Ticks) != len(want) {
		t.Fatalf("expected %d ticks, got %d", len(want), len(ch.XAxis.Ticks))
	}
	for i, tk := range ch.XAxis.Ticks {
		if tk != want[i] {
			t.Fatalf("tick %d: expected %+v, got %+v", i, want[i], tk)
		}
	}
}

func TestBuildChartTitleAndAxisNames(t *testing.T) {
	ms, pts := referenceInput(t)
	ch, err := BuildChart(ms, pts, DefaultOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ch.Title != "Wa-Tor Simulation Parallel Speedup" {
		t.Fatalf("unexpected title %q", ch.Title)
	}
	if ch.XAxis.Name != "Number of Threads (Workers)" || ch.YAxis.Name != "Speedup Factor" {
		t.Fatalf("unexpected axis names %q / %q", ch.XAxis.Name, ch.YAxis.Name)
	}
	if ch.DPI != ChartDPI {
		t.Fatalf("expected %d DPI, got %v", ChartDPI, ch.DPI)
	}
	if len(ch.Elements) != 1 {
		t.Fatalf("expected a legend element, got %d elements", len(ch.Elements))
	}
}

func TestBuildChartTogglesDropSeries(t *testing.T) {
	ms, pts := referenceInput(t)
	opts := DefaultOptions()
	opts.ShowIdeal = false
	opts.ShowAnnotations = false
	ch, err := BuildChart(ms, pts, opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ch.Series) != 1 {
		t.Fatalf("expected only the actual line, got %d series", len(ch.Series))
	}
}

func TestBuildChartRejectsMismatchedInput(t *testing.T) {
	ms, pts := referenceInput(t)
	if _, err := BuildChart(ms[:2], pts, DefaultOptions()); err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
	if _, err := BuildChart(nil, nil, DefaultOptions()); err == nil {
		t.Fatalf("expected error for empty input")
	}
}

func TestAnnotationLabelFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.0, "1.00x"},
		{32.83 / 15.95, "2.06x"},
		{32.83 / 9.56, "3.43x"},
		{32.83 / 6.31, "5.20x"},
	}
	for _, c := range cases {
		if got := annotationLabel(c.in); got != c.want {
			t.Fatalf("annotationLabel(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}
