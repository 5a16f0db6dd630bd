package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const labelFontSize = 14

func toRaylib(col color.RGBA) rl.Color {
	return rl.NewColor(col.R, col.G, col.B, col.A)
}

// rlCanvas adapts raylib immediate-mode drawing to the renderer's
// canvas interface
type rlCanvas struct {
	font rl.Font
}

func (c *rlCanvas) Line(x1, y1, x2, y2, width float64, col color.RGBA) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		rl.Vector2{X: float32(x2), Y: float32(y2)},
		float32(width), toRaylib(col))
}

func (c *rlCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toRaylib(col))
}

func (c *rlCanvas) Text(s string, x, y float64, col color.RGBA) {
	rl.DrawTextEx(c.font, s,
		rl.Vector2{X: float32(x), Y: float32(y)},
		labelFontSize, 1, toRaylib(col))
}

func (c *rlCanvas) MeasureText(s string) (float64, float64) {
	size := rl.MeasureTextEx(c.font, s, labelFontSize, 1)
	return float64(size.X), float64(size.Y)
}

func (c *rlCanvas) Point(x, y, size float64, col color.RGBA) {
	if size <= 1 {
		rl.DrawPixelV(rl.Vector2{X: float32(x), Y: float32(y)}, toRaylib(col))
		return
	}
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(size/2), toRaylib(col))
}
