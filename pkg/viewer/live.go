package viewer

import (
	"fmt"
	"image/color"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/pkg/watcher"
)

// WindowOptions configures a windowed backend
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Background color.RGBA
	// Watch lists files whose changes trigger a reload. Empty disables watching.
	Watch []string
	Log   *zap.Logger
}

// reloadDebounce collapses bursts of writes from editors into one reload
const reloadDebounce = 300 * time.Millisecond

// Live keeps a frame current with its input files. The watcher goroutine only
// marks the frame stale; Refresh rebuilds it on the caller's goroutine.
type Live struct {
	load    scene.Loader
	log     *zap.Logger
	stale   atomic.Bool
	watcher *watcher.FileWatcher
	notify  func()
}

// NewLive creates a Live around load. notify, if set, runs on the watcher
// goroutine whenever the frame becomes stale.
func NewLive(load scene.Loader, log *zap.Logger, notify func()) *Live {
	if log == nil {
		log = zap.NewNop()
	}
	return &Live{load: load, log: log, notify: notify}
}

// Watch starts watching files. Call Close when done.
func (l *Live) Watch(files []string) error {
	if len(files) == 0 {
		return nil
	}

	fw, err := watcher.NewFileWatcher(reloadDebounce, l.log)
	if err != nil {
		return err
	}

	err = fw.Watch(files, func(changed string) {
		l.log.Info("input changed, reloading", zap.String("file", changed))
		l.stale.Store(true)
		if l.notify != nil {
			l.notify()
		}
	})
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	l.watcher = fw
	return nil
}

// Load builds the frame from scratch
func (l *Live) Load() (*scene.Frame, error) {
	l.stale.Store(false)
	return l.load()
}

// Refresh rebuilds the frame if an input changed since the last load.
// A failed reload is logged and reported as no change, keeping the old frame.
func (l *Live) Refresh() (*scene.Frame, bool) {
	if !l.stale.Load() {
		return nil, false
	}

	started := time.Now()
	frame, err := l.Load()
	if err != nil {
		l.log.Error("reload failed, keeping previous scene", zap.Error(err))
		return nil, false
	}

	l.log.Info("scene reloaded",
		zap.Int("parts", frame.Parts),
		zap.Duration("elapsed", time.Since(started)))
	return frame, true
}

// Close stops watching
func (l *Live) Close() error {
	if l.watcher == nil {
		return nil
	}
	return l.watcher.Close()
}
