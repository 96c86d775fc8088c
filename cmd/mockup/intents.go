package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/commands"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/config"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/debug"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/dimension"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/logger"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/scene"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/session"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// registerIntents wires every control-surface intent into the command
// registry. All of these run on the UI thread, inside the terminal update.
func registerIntents(reg *commands.Registry, state *session.State, comp *scene.Composer, dbg *debug.Debug, log *logger.Logger, prefs *config.Prefs, confPath string) {
	// Overlay and environment toggles persist across runs.
	persist := func() {
		prefs.EnvironmentVisible = state.EnvironmentVisible
		prefs.ShowFPS = dbg.ShowFPS
		if err := config.Save(confPath, *prefs); err != nil {
			log.Logf("prefs: %v", err)
		}
	}

	reg.Register("help", "help - list commands", nil, func([]string) error {
		for _, line := range reg.Usage() {
			log.Log(line)
		}
		return nil
	})

	reg.Register("shape", "shape <cube|sphere|bag> - switch the product shape", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: shape <cube|sphere|bag>")
		}
		kind, err := shape.ParseKind(args[0])
		if err != nil {
			return err
		}
		state.SetShape(kind)
		return nil
	})

	reg.Register("dim", "dim <width|height|depth|diameter> <cm> - set a dimension", nil, func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("usage: dim <field> <cm>")
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			// Reject the edit; the field keeps its prior value.
			return dimension.ErrInvalidDimension
		}
		return state.SetDimension(dimension.Field(args[0]), value)
	})

	reg.Register("tex", "tex <face> <imagefile> - bind a texture to a face", nil, func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("usage: tex <face> <imagefile>")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		res, err := state.BindTexture(texture.FaceKey(args[0]), filepath.Base(args[1]), data)
		if err != nil {
			if errors.Is(err, texture.ErrImageDecode) {
				// Non-blocking warning; the face stays unbound.
				log.Logf("warning: %v", err)
				return nil
			}
			return err
		}
		log.Logf("bound %s (%dx%d)", res.Face, res.PixelW, res.PixelH)
		return nil
	})

	reg.Register("untex", "untex <face> - remove a face texture", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: untex <face>")
		}
		state.RemoveTexture(texture.FaceKey(args[0]))
		return nil
	})

	reg.Register("reset", "reset - remove all textures", nil, func([]string) error {
		state.ResetTextures()
		return nil
	})

	reg.Register("env", "env - toggle the environment backdrop", nil, func([]string) error {
		state.ToggleEnvironment()
		if state.EnvironmentVisible && !comp.EnvironmentLoaded() {
			log.Log("no environment image found (assets/env/studio.png)")
		}
		persist()
		return nil
	})

	reg.Register("capture", "capture [path] - export a screenshot", nil, func(args []string) error {
		path := prefs.OutputPath
		if path == "" {
			path = scene.DefaultCaptureFile
		}
		if len(args) > 0 {
			path = args[0]
		}
		if err := comp.CaptureFrame(path); err != nil {
			// Capture failures block the export; surface them.
			return err
		}
		log.Logf("saved %s", path)
		return nil
	})

	reg.Register("fps", "fps - toggle the FPS overlay", nil, func([]string) error {
		dbg.ShowFPS = !dbg.ShowFPS
		persist()
		return nil
	})

	reg.Register("mem", "mem - toggle the heap overlay", nil, func([]string) error {
		dbg.ShowMemAlloc = !dbg.ShowMemAlloc
		return nil
	})

	reg.Register("fullscreen", "fullscreen - toggle fullscreen", nil, func([]string) error {
		was := rl.IsWindowFullscreen()
		rl.ToggleFullscreen()
		if rl.IsWindowFullscreen() == was {
			// Cosmetic concern; log only.
			log.Log("fullscreen request failed")
		}
		return nil
	})
}

// parseHexColor parses "#rrggbb" into a raylib color, falling back to a
// neutral gray.
func parseHexColor(s string) rl.Color {
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err == nil {
			return rl.NewColor(r, g, b, 255)
		}
	}
	return rl.NewColor(200, 200, 200, 255)
}
