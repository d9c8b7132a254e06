package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/philipparndt/gorim/pkg/analysis"
	"github.com/philipparndt/gorim/pkg/config"
	"github.com/philipparndt/gorim/pkg/rim"
	"github.com/philipparndt/gorim/pkg/sphere"
	"github.com/philipparndt/gorim/pkg/viewer"
	"github.com/philipparndt/gorim/pkg/watcher"
	"github.com/philipparndt/gorim/version"
)

type App struct {
	window   fyne.Window
	cfg      config.Config
	logger   *log.Logger
	set      *sphere.Set
	result   *rim.Result
	renderer *viewer.RimRenderer
	watcher  *watcher.FileWatcher
	cancel   context.CancelFunc

	setInfoLabel *widget.Label
	rimInfoLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("gorim " + version.GetVersion() + " - Sphere Rims")

	appInstance := &App{
		window: w,
		cfg:    config.Default(),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "gorim-gui"}),
	}
	defer appInstance.stopWatching()

	if len(os.Args) > 1 {
		appInstance.load(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to gorim")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open a sphere set (.yaml, .toml) or pick a built-in fixture")

	openButton := widget.NewButton("Open Sphere File", func() {
		a.showFileDialog()
	})
	fixtureSelect := widget.NewSelect(sphere.FixtureNames(), func(name string) {
		a.load("fixture:" + name)
	})
	fixtureSelect.PlaceHolder = "Built-in fixture"

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		container.NewCenter(fixtureSelect),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.load(reader.URI().Path())
	}, a.window)
}

func readSet(path string) (*sphere.Set, error) {
	if name, ok := strings.CutPrefix(path, "fixture:"); ok {
		return sphere.Fixture(name)
	}
	return sphere.Load(path)
}

func (a *App) compute(path string) (*sphere.Set, *rim.Result, error) {
	set, err := readSet(path)
	if err != nil {
		return nil, nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, nil, err
	}
	res, err := rim.Compute(context.Background(), set.Spheres, rim.Options{
		SegmentsPerTurn: a.cfg.Segments,
		Workers:         a.cfg.Workers,
	})
	if err != nil {
		return nil, nil, err
	}
	for _, s := range res.Skipped {
		a.logger.Warn("skipped pair", "pair", fmt.Sprintf("%d-%d", s.I, s.J), "err", s.Err)
	}
	return set, res, nil
}

func (a *App) load(path string) {
	set, res, err := a.compute(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load %s: %w", path, err), a.window)
		return
	}

	a.set, a.result = set, res
	a.setupMainUI()
	a.watch(path)
}

// watch recomputes the rims whenever the file changes on disk
func (a *App) watch(path string) {
	a.stopWatching()
	if strings.HasPrefix(path, "fixture:") {
		return
	}

	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		a.logger.Warn("file watching disabled", "err", err)
		return
	}
	fw.OnError = func(err error) {
		a.logger.Warn("watcher error", "err", err)
	}
	err = fw.Watch([]string{path}, func(string) {
		set, res, err := a.compute(path)
		fyne.Do(func() {
			if err != nil {
				a.logger.Error("reload failed", "file", path, "err", err)
				return
			}
			a.set, a.result = set, res
			a.renderer.SetResult(set, res)
			a.updateSetInfo()
			a.rimInfoLabel.SetText("No rim selected")
		})
	})
	if err != nil {
		fw.Close()
		a.logger.Warn("file watching disabled", "err", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.watcher, a.cancel = fw, cancel
	go func() {
		if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn("watcher stopped", "err", err)
		}
	}()
}

func (a *App) stopWatching() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
}

func (a *App) setupMainUI() {
	a.setInfoLabel = widget.NewLabel("")
	a.rimInfoLabel = widget.NewLabel("No rim selected")
	a.rimInfoLabel.TextStyle = fyne.TextStyle{Monospace: true}

	a.renderer = viewer.NewRimRenderer(a.set, a.result, a.cfg.RGBA())
	a.renderer.SetOnRimSelect(func(r rim.Rim) {
		a.showRim(r)
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})
	clearButton := widget.NewButton("Clear Selection", func() {
		a.renderer.ClearSelection()
		a.rimInfoLabel.SetText("No rim selected")
	})
	resetButton := widget.NewButton("Reset View", func() {
		a.renderer.ResetView()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Click near a rim to select it\n" +
			"• Sphere files are reloaded when they change",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Sphere Set:"),
		widget.NewSeparator(),
		a.setInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Selected Rim:"),
		widget.NewSeparator(),
		a.rimInfoLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		clearButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(nil, nil, nil, infoScroll, a.renderer)
	a.window.SetContent(content)
	a.updateSetInfo()

	a.renderer.Render(800, 600)
}

func (a *App) updateSetInfo() {
	stats := analysis.Analyze(a.set, a.result)
	size := stats.BoundingBox.Size()
	a.setInfoLabel.SetText(fmt.Sprintf(
		"Name: %s\nSpheres: %d\nPairs: %d\nFull circles: %d\nPartial: %d (%d arcs)\nEliminated: %d\nSkipped: %d\n\nSize:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.set.Name,
		stats.Spheres,
		stats.Pairs,
		stats.FullCircles,
		stats.Partial,
		stats.Arcs,
		stats.Eliminated,
		stats.Skipped,
		size.X, size.Y, size.Z,
	))
}

func (a *App) showRim(r rim.Rim) {
	c := r.Circle
	text := fmt.Sprintf("Spheres: %d - %d\nCenter: %s\nRadius: %s\nVisible: %s\nArcs: %d",
		r.I, r.J,
		analysis.FormatVector(c.Center),
		analysis.FormatMeasurement(c.Radius, ""),
		analysis.FormatAngle(c.AngularMeasure()),
		len(c.Arcs()),
	)
	if c.IsFull() {
		text += " (full circle)"
	}
	a.rimInfoLabel.SetText(text)
}
