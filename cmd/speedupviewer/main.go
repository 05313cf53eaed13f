// Speedup viewer: a small desktop window around the same chart the
// speedupchart CLI exports. Toggles re-render the chart live; Export writes
// the currently displayed image through a save dialog.
package main

import (
	"flag"
	"image/png"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/YimiaoHao/wator-project/src/chartgen"
	"github.com/YimiaoHao/wator-project/src/speedup"
)

type uiState struct {
	window fyne.Window
	img    *canvas.Image

	measurements []speedup.Measurement
	points       []speedup.SpeedupPoint

	showIdeal       bool
	showAnnotations bool
}

// redraw re-renders the chart into the image canvas with the current toggles.
func redraw(state *uiState) {
	opts := chartgen.DefaultOptions()
	// Viewer renders at screen scale; the CLI keeps the full 300 DPI export.
	opts.Width = 1200
	opts.Height = 720
	opts.ShowIdeal = state.showIdeal
	opts.ShowAnnotations = state.showAnnotations
	img, err := chartgen.RenderImage(state.measurements, state.points, opts)
	if err != nil {
		speedup.Errorf("render: %v", err)
		return
	}
	state.img.Image = img
	state.img.Refresh()
}

func exportChartPNG(state *uiState, defaultName string) {
	if state.img == nil || state.img.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.img.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

func main() {
	dataPath := flag.String("data", "", "Path to measurements JSONC file. Empty = built-in reference run")
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
	}
	pts, err := speedup.ComputeSpeedups(ms)
	if err != nil {
		speedup.Errorf("compute speedups: %v", err)
		os.Exit(1)
	}

	a := app.NewWithID("com.wator.speedupviewer")
	w := a.NewWindow("Wa-Tor Speedup Viewer")
	w.Resize(fyne.NewSize(1000, 700))

	state := &uiState{
		window:          w,
		measurements:    ms,
		points:          pts,
		showIdeal:       true,
		showAnnotations: true,
	}

	state.img = canvas.NewImageFromImage(nil)
	state.img.FillMode = canvas.ImageFillContain

	idealChk := widget.NewCheck("Ideal line", func(v bool) {
		state.showIdeal = v
		redraw(state)
	})
	idealChk.SetChecked(true)
	annChk := widget.NewCheck("Annotations", func(v bool) {
		state.showAnnotations = v
		redraw(state)
	})
	annChk.SetChecked(true)
	exportBtn := widget.NewButton("Export PNG…", func() {
		exportChartPNG(state, "results_graph.png")
	})

	top := container.NewHBox(idealChk, annChk, exportBtn)
	w.SetContent(container.NewBorder(top, nil, nil, nil, state.img))

	redraw(state)
	w.ShowAndRun()
}
