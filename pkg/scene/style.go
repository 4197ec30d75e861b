package scene

import "image/color"

// Style is the stroke of one wireframe edge
type Style struct {
	Color color.RGBA
	Width float32
}

// Styles holds the stroke for normal and highlighted parts
type Styles struct {
	Normal    Style
	Highlight Style
}

// DefaultStyles draws parts thin and black, highlighted parts thick and red
func DefaultStyles() Styles {
	return Styles{
		Normal:    Style{Color: color.RGBA{A: 255}, Width: 1},
		Highlight: Style{Color: color.RGBA{R: 255, A: 255}, Width: 3},
	}
}

func (s Styles) pick(highlighted bool) Style {
	if highlighted {
		return s.Highlight
	}
	return s.Normal
}
