package speedup

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SampleDataset returns the reference timing run of the Wa-Tor simulation
// (800x600 grid, 500 steps) on a 4-core/8-thread machine. Used when no
// dataset file is given.
func SampleDataset() []Measurement {
	return []Measurement{
		{Workers: 1, ElapsedSeconds: 32.83},
		{Workers: 2, ElapsedSeconds: 15.95},
		{Workers: 4, ElapsedSeconds: 9.56},
		{Workers: 8, ElapsedSeconds: 6.31},
	}
}

// StripJSONC loads a JSONC file (full-line // comments) and returns raw JSON
// bytes suitable for unmarshalling. Inline // is kept as-is so values
// containing slashes survive; comments must occupy their own line.
func StripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// LoadDataset reads a JSONC measurements file: an array of
// {"workers": N, "elapsed_seconds": S} objects. The dataset is validated
// before being returned so callers never see a degenerate chart input.
func LoadDataset(path string) ([]Measurement, error) {
	b, err := StripJSONC(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var ms []Measurement
	if err := json.Unmarshal(b, &ms); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if err := Validate(ms); err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ms, nil
}
