// Speedup chart entrypoint.
//
// Reads Wa-Tor simulation timing measurements (a built-in reference run, or
// a JSONC file given with -data), derives the speedup of each worker count
// against the single-worker baseline, and writes the comparison chart as a
// 300 DPI PNG. Optionally also writes the table as an XLSX workbook.
//
// One-shot batch tool: every error is terminal, no retries, no partial
// output. Exit code is 0 on success and 1 on any failure.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/YimiaoHao/wator-project/src/chartgen"
	"github.com/YimiaoHao/wator-project/src/report"
	"github.com/YimiaoHao/wator-project/src/speedup"
)

func main() {
	dataPath := flag.String("data", "", "Path to measurements JSONC file (array of {workers, elapsed_seconds}). Empty = built-in reference run")
	outFile := flag.String("out", "results_graph.png", "Output PNG file")
	xlsxFile := flag.String("xlsx", "", "Optional XLSX workbook to write the speedup table to")
	title := flag.String("title", "", "Chart title override")
	caption := flag.String("caption", "", "Optional caption stamped onto the bottom-left of the PNG")
	noIdeal := flag.Bool("no-ideal", false, "Hide the ideal linear speedup reference line")
	noAnnotations := flag.Bool("no-annotations", false, "Hide the per-point speedup value annotations")
	width := flag.Int("width", 0, "Chart width in pixels (0 = default, 10in at 300 DPI)")
	height := flag.Int("height", 0, "Chart height in pixels (0 = default, 6in at 300 DPI)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	speedup.SetLogLevel(*logLevel)

	ms := speedup.SampleDataset()
	if *dataPath != "" {
		loaded, err := speedup.LoadDataset(*dataPath)
		if err != nil {
			speedup.Errorf("%v", err)
			os.Exit(1)
		}
		ms = loaded
		speedup.Infof("loaded %d measurements from %s", len(ms), *dataPath)
	}

	pts, err := speedup.ComputeSpeedups(ms)
	if err != nil {
		speedup.Errorf("compute speedups: %v", err)
		os.Exit(1)
	}
	for i, p := range pts {
		speedup.Debugf("workers=%d elapsed=%.2fs speedup=%.2fx", p.Workers, ms[i].ElapsedSeconds, p.Speedup)
	}

	opts := chartgen.DefaultOptions()
	opts.Caption = *caption
	opts.ShowIdeal = !*noIdeal
	opts.ShowAnnotations = !*noAnnotations
	if *title != "" {
		opts.Title = *title
	}
	if *width > 0 {
		opts.Width = *width
	}
	if *height > 0 {
		opts.Height = *height
	}

	start := time.Now()
	if err := chartgen.SavePNG(*outFile, ms, pts, opts); err != nil {
		speedup.Errorf("save chart: %v", err)
		os.Exit(1)
	}
	speedup.TimeTrack(start, "chart render")

	if *xlsxFile != "" {
		if err := report.WriteWorkbook(*xlsxFile, ms, pts); err != nil {
			speedup.Errorf("save workbook: %v", err)
			os.Exit(1)
		}
		speedup.Infof("workbook saved as %s", *xlsxFile)
	}

	fmt.Printf("Success! Graph saved as %s\n", *outFile)
}
