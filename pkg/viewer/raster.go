package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/scaffoldview/pkg/scene"
)

// RasterRenderer draws frames into images without a window
type RasterRenderer struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Render draws the axes and every segment of the frame, in emission order
func (r RasterRenderer) Render(frame *scene.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	camera := NewCamera(frame.Bounds, frame.View)
	w, h := float64(r.Width), float64(r.Height)

	for _, axis := range Axes(frame.Bounds) {
		x1, y1, _ := camera.Project(axis.Start, w, h)
		x2, y2, _ := camera.Project(axis.End, w, h)
		if x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, w, h, 1); ok {
			drawLine(img, round(x1), round(y1), round(x2), round(y2), axisColor)
		}

		lx, ly, _ := camera.Project(axis.LabelAt, w, h)
		if finite(lx, ly) && math.Abs(lx) < w*4 && math.Abs(ly) < h*4 {
			drawLabel(img, axis.Label, round(lx), round(ly), axisColor)
		}
	}

	for _, segment := range frame.Segments {
		x1, y1, _ := camera.Project(segment.Start, w, h)
		x2, y2, _ := camera.Project(segment.End, w, h)

		// Clipping bounds the Bresenham walk to the image
		margin := float64(segment.Style.Width) + 1
		x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, w, h, margin)
		if !ok {
			continue
		}
		drawThickLine(img, round(x1), round(y1), round(x2), round(y2), segment.Style.Width, segment.Style.Color)
	}

	return img
}

// Encode writes the rendered frame as PNG
func (r RasterRenderer) Encode(w io.Writer, frame *scene.Frame) error {
	if err := png.Encode(w, r.Render(frame)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Save writes the rendered frame to a PNG file
func (r RasterRenderer) Save(path string, frame *scene.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := r.Encode(file, frame); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func round(v float64) int {
	return int(math.Round(v))
}

// drawLabel draws text centered on (x, y)
func drawLabel(img *image.RGBA, text string, x, y int, col color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	advance := d.MeasureString(text).Round()
	d.Dot = fixed.P(x-advance/2, y+face.Ascent/2)
	d.DrawString(text)
}

// drawThickLine draws a line with a square brush of the given width
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 int, width float32, col color.RGBA) {
	r := int(math.Round(float64(width-1) / 2))
	if r <= 0 {
		drawLine(img, x1, y1, x2, y2, col)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			drawLine(img, x1+dx, y1+dy, x2+dx, y2+dy, col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
