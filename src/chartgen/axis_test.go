package chartgen

import (
	"math"
	"testing"

	"github.com/YimiaoHao/wator-project/src/speedup"
)

func TestWorkerTicksMatchDataset(t *testing.T) {
	ticks := workerTicks(speedup.SampleDataset())
	wantValues := []float64{1, 2, 4, 8}
	wantLabels := []string{"1", "2", "4", "8"}
	if len(ticks) != len(wantValues) {
		t.Fatalf("expected %d ticks, got %d", len(wantValues), len(ticks))
	}
	for i, tk := range ticks {
		if tk.Value != wantValues[i] || tk.Label != wantLabels[i] {
			t.Fatalf("tick %d: expected (%v,%q), got (%v,%q)", i, wantValues[i], wantLabels[i], tk.Value, tk.Label)
		}
	}
}

func TestNiceAxisBoundsWidensDegenerateRange(t *testing.T) {
	a, b := niceAxisBounds(10, 10)
	if a >= b {
		t.Fatalf("expected widened range, got [%v,%v]", a, b)
	}
}

func TestNiceAxisBoundsCoversInput(t *testing.T) {
	a, b := niceAxisBounds(0, 8.2)
	if a > 0 || b < 8.2 {
		t.Fatalf("bounds [%v,%v] do not cover [0,8.2]", a, b)
	}
}

func TestNiceTicksSpanRange(t *testing.T) {
	ticks := niceTicks(0, 8, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	first, last := ticks[0].Value, ticks[len(ticks)-1].Value
	if first > 0 || last < 8 {
		t.Fatalf("ticks [%v,%v] do not span [0,8]", first, last)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value <= ticks[i-1].Value {
			t.Fatalf("ticks not strictly increasing at %d", i)
		}
	}
}

func TestNiceTicksDegenerateInputs(t *testing.T) {
	if ticks := niceTicks(0, 8, 1); ticks != nil {
		t.Fatalf("expected nil for n<2, got %v", ticks)
	}
	if ticks := niceTicks(math.NaN(), 8, 6); ticks != nil {
		t.Fatalf("expected nil for NaN bounds, got %v", ticks)
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{2.5, "2.50"},
		{12.5, "12.5"},
		{150, "150"},
	}
	for _, c := range cases {
		if got := formatTick(c.in); got != c.want {
			t.Fatalf("formatTick(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}
