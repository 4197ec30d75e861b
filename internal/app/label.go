package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is screen-space text centered on a projected point
type Label struct {
	Text      string
	ScreenPos rl.Vector2
	Color     rl.Color
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32) rl.Rectangle {
	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	textPos := rl.Vector2{
		X: l.ScreenPos.X - textSize.X/2,
		Y: l.ScreenPos.Y - textSize.Y/2,
	}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, l.Color)

	return rl.Rectangle{X: textPos.X, Y: textPos.Y, Width: textSize.X, Height: textSize.Y}
}
