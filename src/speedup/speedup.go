// Package speedup derives parallel speedup ratios from Wa-Tor simulation
// timing measurements.
//
// A Measurement records how long one simulation run took with a given number
// of worker threads. Speedup is the single-worker baseline elapsed time
// divided by the elapsed time at N workers; ideal linear scaling would make
// it equal to N. The computation is a pure pass over the dataset: validation,
// then one division per point.
package speedup

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset validation. Callers match with errors.Is; the
// returned errors are wrapped with the offending measurement index.
var (
	ErrEmptyDataset         = errors.New("empty dataset")
	ErrWorkersNotIncreasing = errors.New("worker counts must be strictly increasing")
	ErrNonPositiveWorkers   = errors.New("worker count must be positive")
	ErrNegativeElapsed      = errors.New("elapsed time must not be negative")
	ErrZeroElapsed          = errors.New("zero elapsed time makes speedup undefined")
)

// Measurement is one timed simulation run: worker (thread) count and wall
// clock elapsed seconds. Datasets are ordered by ascending Workers; the first
// entry is the single-worker baseline.
type Measurement struct {
	Workers        int     `json:"workers"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// SpeedupPoint is the derived ratio for one measurement.
type SpeedupPoint struct {
	Workers int
	Speedup float64
}

// Efficiency returns speedup divided by worker count (1.0 = perfect linear
// scaling). Used by the report surface; not part of the chart itself.
func (p SpeedupPoint) Efficiency() float64 {
	if p.Workers <= 0 {
		return 0
	}
	return p.Speedup / float64(p.Workers)
}

// Validate checks a dataset for the invariants ComputeSpeedups relies on:
// non-empty, strictly increasing positive worker counts, and strictly
// positive elapsed times. Zero elapsed is reported as ErrZeroElapsed since it
// would make the speedup division undefined.
func Validate(ms []Measurement) error {
	if len(ms) == 0 {
		return ErrEmptyDataset
	}
	prev := 0
	for i, m := range ms {
		if m.Workers <= 0 {
			return fmt.Errorf("measurement %d (workers=%d): %w", i, m.Workers, ErrNonPositiveWorkers)
		}
		if m.Workers <= prev {
			return fmt.Errorf("measurement %d (workers=%d after %d): %w", i, m.Workers, prev, ErrWorkersNotIncreasing)
		}
		prev = m.Workers
		if m.ElapsedSeconds < 0 {
			return fmt.Errorf("measurement %d (elapsed=%g): %w", i, m.ElapsedSeconds, ErrNegativeElapsed)
		}
		if m.ElapsedSeconds == 0 {
			return fmt.Errorf("measurement %d (workers=%d): %w", i, m.Workers, ErrZeroElapsed)
		}
	}
	return nil
}

// ComputeSpeedups derives one SpeedupPoint per measurement, in input order.
// The baseline is the first measurement's elapsed time, so the first point is
// always exactly 1.0. The function is pure; it never mutates its input.
func ComputeSpeedups(ms []Measurement) ([]SpeedupPoint, error) {
	if err := Validate(ms); err != nil {
		return nil, err
	}
	base := ms[0].ElapsedSeconds
	out := make([]SpeedupPoint, len(ms))
	for i, m := range ms {
		out[i] = SpeedupPoint{Workers: m.Workers, Speedup: base / m.ElapsedSeconds}
	}
	return out, nil
}

// MaxSpeedup returns the largest speedup in pts, or 0 for an empty slice.
// Chart axis sizing uses this.
func MaxSpeedup(pts []SpeedupPoint) float64 {
	max := 0.0
	for _, p := range pts {
		if p.Speedup > max {
			max = p.Speedup
		}
	}
	return max
}
