package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/scaffoldview/pkg/scene"
	"github.com/philipparndt/scaffoldview/pkg/viewer"
)

// CameraState holds the raylib camera and the software camera it mirrors
type CameraState struct {
	camera rl.Camera3D
	view   *viewer.Camera
	width  int32 // viewport size the camera was last fitted to
	height int32
}

// FrameData holds the scene being displayed
type FrameData struct {
	frame *scene.Frame
	axes  [3]viewer.AxisLine
}

// ViewSettings holds display settings
type ViewSettings struct {
	background rl.Color
	showAxes   bool
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	live *viewer.Live
}
