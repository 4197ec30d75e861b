// Package gui shows a scene frame in a fyne window.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

// Run opens a window showing the frame built by load and blocks until the
// window is closed. The first load must succeed.
func Run(load scene.Loader, opts viewer.WindowOptions) error {
	return run(app.New(), load, opts, true)
}

func run(a fyne.App, load scene.Loader, opts viewer.WindowOptions, block bool) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var view *viewer.FrameView

	// Reloads are scheduled onto the fyne main goroutine; the watcher only
	// signals that the scene is stale.
	var live *viewer.Live
	live = viewer.NewLive(load, log, func() {
		fyne.Do(func() {
			if frame, ok := live.Refresh(); ok {
				view.SetFrame(frame)
			}
		})
	})

	frame, err := live.Load()
	if err != nil {
		return err
	}

	view = viewer.NewFrameView(frame, opts.Background)

	w := a.NewWindow(opts.Title)
	w.SetContent(view)
	w.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))

	if err := live.Watch(opts.Watch); err != nil {
		log.Warn("auto-reload not available", zap.Error(err))
	}
	w.SetOnClosed(func() {
		_ = live.Close()
	})

	log.Info("window opened",
		zap.String("backend", "fyne"),
		zap.Int("segments", len(frame.Segments)))

	if block {
		w.ShowAndRun()
	} else {
		w.Show()
	}
	return nil
}
