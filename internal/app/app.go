package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

// App is the raylib scaffold viewer
type App struct {
	Camera    CameraState
	Frame     FrameData
	View      ViewSettings
	FileWatch FileWatchState
	log       *zap.Logger
}

// Run opens a window showing the frame built by load and blocks until the
// window is closed. The first load must succeed.
func Run(load scene.Loader, opts viewer.WindowOptions) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	live := viewer.NewLive(load, log, nil)
	frame, err := live.Load()
	if err != nil {
		return err
	}

	if err := live.Watch(opts.Watch); err != nil {
		log.Warn("auto-reload not available", zap.Error(err))
	}
	defer live.Close()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("failed to open raylib window")
	}
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	bg := opts.Background
	app := &App{
		View: ViewSettings{
			background: rl.NewColor(bg.R, bg.G, bg.B, bg.A),
			showAxes:   true,
		},
		FileWatch: FileWatchState{live: live},
		log:       log,
	}
	app.setFrame(frame)

	log.Info("window opened",
		zap.String("backend", "raylib"),
		zap.Int("segments", len(frame.Segments)))

	for !rl.WindowShouldClose() {
		if frame, ok := app.FileWatch.live.Refresh(); ok {
			app.setFrame(frame)
		}

		app.fitCamera()

		rl.BeginDrawing()
		rl.ClearBackground(app.View.background)

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showAxes {
			app.drawAxes()
		}
		app.drawWireframe()
		rl.EndMode3D()

		if app.View.showAxes {
			app.drawAxisLabels()
		}

		rl.EndDrawing()
	}

	return nil
}

// setFrame swaps in a new frame and forces the camera to refit
func (app *App) setFrame(frame *scene.Frame) {
	app.Frame.frame = frame
	app.Frame.axes = viewer.Axes(frame.Bounds)
	app.Camera.view = viewer.NewCamera(frame.Bounds, frame.View)
	app.Camera.width, app.Camera.height = 0, 0
}
