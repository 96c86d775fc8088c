package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Background behind the 3D viewport when no environment backdrop is drawn.
var backgroundColor = rl.NewColor(245, 245, 245, 255)

// Run opens the window and drives the main loop. Each frame it calls update
// (input, state merges), then clears the screen and calls draw (viewport and
// overlays). ESC is reserved for the terminal toggle; close via window button.
func Run(title string, width, height int, update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}
