package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/golidar/pkg/cloud"
)

// SceneState holds the generated cloud parameters and its summary
type SceneState struct {
	numPoints int
	seed      int64
	summary   cloud.Summary
}

// InteractionState holds mouse state across frames
type InteractionState struct {
	isPanning    bool
	lastMousePos rl.Vector2
}

// UIState holds overlay panel state
type UIState struct {
	showPanel bool
	font      rl.Font
}
