package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/scaffoldview/pkg/scene"
)

// FrameView is a fyne widget that draws a scene frame as 2D lines
type FrameView struct {
	widget.BaseWidget
	frame      *scene.Frame
	background color.Color
	lines      []*canvas.Line
	labels     []*canvas.Text
	width      float64
	height     float64
}

// NewFrameView creates a widget showing frame
func NewFrameView(frame *scene.Frame, background color.Color) *FrameView {
	v := &FrameView{
		frame:      frame,
		background: background,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetFrame replaces the displayed frame. Must run on the fyne main goroutine.
func (v *FrameView) SetFrame(frame *scene.Frame) {
	v.frame = frame
	if v.width > 0 && v.height > 0 {
		v.Render(v.width, v.height)
	}
}

// Frame returns the displayed frame
func (v *FrameView) Frame() *scene.Frame {
	return v.frame
}

// CreateRenderer creates the renderer for the widget
func (v *FrameView) CreateRenderer() fyne.WidgetRenderer {
	return &frameWidgetRenderer{
		view:       v,
		background: canvas.NewRectangle(v.background),
	}
}

// Render projects the frame for a viewport of the given size
func (v *FrameView) Render(width, height float64) {
	v.width = width
	v.height = height

	v.lines = make([]*canvas.Line, 0, len(v.frame.Segments)+3)
	v.labels = make([]*canvas.Text, 0, 3)

	camera := NewCamera(v.frame.Bounds, v.frame.View)

	for _, axis := range Axes(v.frame.Bounds) {
		x1, y1, _ := camera.Project(axis.Start, width, height)
		x2, y2, _ := camera.Project(axis.End, width, height)
		lx, ly, _ := camera.Project(axis.LabelAt, width, height)
		if !finite(x1, y1, x2, y2, lx, ly) {
			continue
		}
		v.lines = append(v.lines, newLine(x1, y1, x2, y2, axisColor, 1))

		label := canvas.NewText(axis.Label, axisColor)
		label.TextStyle = fyne.TextStyle{Bold: true}
		size := label.MinSize()
		label.Move(fyne.NewPos(float32(lx)-size.Width/2, float32(ly)-size.Height/2))
		v.labels = append(v.labels, label)
	}

	for _, segment := range v.frame.Segments {
		x1, y1, _ := camera.Project(segment.Start, width, height)
		x2, y2, _ := camera.Project(segment.End, width, height)
		if !finite(x1, y1, x2, y2) {
			continue
		}
		v.lines = append(v.lines, newLine(x1, y1, x2, y2, segment.Style.Color, segment.Style.Width))
	}

	v.Refresh()
}

func newLine(x1, y1, x2, y2 float64, col color.Color, width float32) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return line
}

// frameWidgetRenderer implements fyne.WidgetRenderer
type frameWidgetRenderer struct {
	view       *FrameView
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *frameWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *frameWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *frameWidgetRenderer) Refresh() {
	r.objects = make([]fyne.CanvasObject, 0, 1+len(r.view.lines)+len(r.view.labels))
	r.objects = append(r.objects, r.background)

	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	for _, label := range r.view.labels {
		r.objects = append(r.objects, label)
	}

	canvas.Refresh(r.view)
}

func (r *frameWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *frameWidgetRenderer) Destroy() {}
