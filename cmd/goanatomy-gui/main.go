// goanatomy-gui is a 2D multi-planar reconstruction viewer: one slider
// per anatomical axis with a live grayscale slice preview and intensity
// statistics, without the 3D workstation.
package main

import (
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"github.com/philipparndt/goanatomy/pkg/analysis"
	"github.com/philipparndt/goanatomy/pkg/geometry"
	"github.com/philipparndt/goanatomy/pkg/volume"
)

const previewSize = 320

type App struct {
	window fyne.Window
	volume *volume.Volume

	previews [3]*canvas.Image
	sliders  [3]*widget.Slider
	stats    [3]*widget.Label
}

func main() {
	vol, err := loadVolume(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: goanatomy-gui [volume.raw NXxNYxNZ [uint8|uint16|float32]]")
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("GoAnatomy - MPR Viewer")

	viewer := &App{window: w, volume: vol}
	w.SetContent(viewer.buildContent())
	w.Resize(fyne.NewSize(1100, 500))
	w.ShowAndRun()
}

// loadVolume reads the volume named on the command line, or generates a
// phantom when none is given
func loadVolume(args []string) (*volume.Volume, error) {
	if len(args) == 0 {
		return volume.NewPhantom(64, 64, 64)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("volume file requires dimensions")
	}
	nx, ny, nz, err := volume.ParseDims(args[1])
	if err != nil {
		return nil, err
	}
	format := volume.RawUint16
	if len(args) > 2 {
		format = volume.RawFormat(args[2])
	}
	return volume.LoadRaw(args[0], nx, ny, nz, format)
}

func (a *App) buildContent() fyne.CanvasObject {
	columns := make([]fyne.CanvasObject, 0, 3)
	for _, axis := range geometry.Axes {
		columns = append(columns, a.buildAxisColumn(axis))
	}

	info := widget.NewLabel(fmt.Sprintf("Volume: %d × %d × %d voxels",
		a.volume.Nx, a.volume.Ny, a.volume.Nz))
	info.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewBorder(
		container.NewCenter(info), nil, nil, nil,
		container.NewGridWithColumns(3, columns...),
	)
}

// buildAxisColumn builds one viewer column: title, preview image,
// position slider and the live statistics line
func (a *App) buildAxisColumn(axis geometry.Axis) fyne.CanvasObject {
	title := widget.NewLabel(fmt.Sprintf("%s (%s)", axis.AnatomicalName(), axis))
	title.TextStyle = fyne.TextStyle{Bold: true}

	preview := canvas.NewImageFromImage(image.NewGray(image.Rect(0, 0, 1, 1)))
	preview.FillMode = canvas.ImageFillContain
	preview.SetMinSize(fyne.NewSize(previewSize, previewSize))
	a.previews[axis] = preview

	stats := widget.NewLabel("")
	a.stats[axis] = stats

	slider := widget.NewSlider(0, 100)
	slider.Step = 1
	slider.Value = 50
	slider.OnChanged = func(value float64) {
		a.updateSlice(axis, value)
	}
	a.sliders[axis] = slider

	a.updateSlice(axis, 50)

	return container.NewBorder(
		container.NewCenter(title),
		container.NewVBox(slider, stats),
		nil, nil,
		preview,
	)
}

// updateSlice re-extracts and redraws one axis preview. Runs on every
// slider tick; the volume is small enough that this stays interactive.
func (a *App) updateSlice(axis geometry.Axis, percent float64) {
	slice := a.volume.ExtractOriented(axis, percent)
	gray := slice.Normalize()

	scaled := image.NewGray(image.Rect(0, 0, previewSize, previewSize))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)

	a.previews[axis].Image = scaled
	a.previews[axis].Refresh()

	index := a.volume.SliceIndex(axis, percent)
	s := analysis.AnalyzeSlice(slice)
	a.stats[axis].SetText(fmt.Sprintf(
		"slice %d/%d  min %.1f  max %.1f\nmean %.1f  stddev %.1f  entropy %.2f",
		index, a.volume.Dim(axis)-1, s.Min, s.Max, s.Mean, s.StdDev, s.Entropy))
}
