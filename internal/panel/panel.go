// Package panel draws the status overlay: active shape, the dimensions that
// matter for it, bound faces and environment mode. Read-only; edits go
// through the terminal.
package panel

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/session"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

const (
	fontSize   = 18
	lineHeight = fontSize + 6
	padding    = 12
	panelWidth = 260
)

var (
	bgColor    = rl.NewColor(24, 24, 24, 200)
	titleColor = rl.NewColor(255, 255, 255, 255)
	textColor  = rl.NewColor(200, 200, 200, 255)
	hintColor  = rl.NewColor(140, 140, 140, 255)
)

// Panel renders the session summary at the top-left.
type Panel struct {
	state *session.State
}

func New(state *session.State) *Panel {
	return &Panel{state: state}
}

func (p *Panel) Draw() {
	lines := p.lines()
	height := int32(len(lines)*lineHeight + 2*padding)
	rl.DrawRectangle(0, 0, panelWidth, height, bgColor)

	y := int32(padding)
	for i, line := range lines {
		color := textColor
		if i == 0 {
			color = titleColor
		} else if strings.HasPrefix(line, "ESC") {
			color = hintColor
		}
		rl.DrawText(line, padding, y, fontSize, color)
		y += lineHeight
	}
}

func (p *Panel) lines() []string {
	s := p.state
	lines := []string{strings.ToUpper(s.Kind.String())}
	d := s.Dims
	if s.Kind == shape.Sphere {
		lines = append(lines, fmt.Sprintf("diameter  %.2f cm", d.Diameter))
	} else {
		lines = append(lines,
			fmt.Sprintf("width   %.2f cm", d.Width),
			fmt.Sprintf("height  %.2f cm", d.Height),
			fmt.Sprintf("depth   %.2f cm", d.Depth),
		)
	}
	if bound := p.boundList(); bound != "" {
		lines = append(lines, "textures: "+bound)
	}
	env := "off"
	if s.EnvironmentVisible {
		env = "on"
	}
	lines = append(lines, "environment "+env, "ESC for commands")
	return lines
}

func (p *Panel) boundList() string {
	var faces []string
	for _, face := range texture.Faces {
		if p.state.Textures.Bound(face) != nil {
			faces = append(faces, string(face))
		}
	}
	return strings.Join(faces, " ")
}
