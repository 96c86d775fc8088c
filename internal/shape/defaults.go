package shape

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/dimension"
)

// Definition is the YAML definition for a shape's defaults
// (e.g. assets/shapes/cube.yaml). Used for starting dimensions and the base
// color of untextured faces; geometry is driven by Kind in code.
type Definition struct {
	Kind       string `yaml:"kind"`
	Dimensions struct {
		Width    float64 `yaml:"width"`
		Height   float64 `yaml:"height"`
		Depth    float64 `yaml:"depth"`
		Diameter float64 `yaml:"diameter"`
	} `yaml:"dimensions,omitempty"`
	Color string `yaml:"color,omitempty"` // hex RGB, e.g. "#c8c8c8"
}

// DefaultsDir is where per-shape definition files live, relative to the
// working directory.
const DefaultsDir = "assets/shapes"

// LoadDefinition reads the YAML defaults for kind from DefaultsDir. A missing
// or malformed file falls back to built-in defaults and is not an error; only
// a file that names a different kind is.
func LoadDefinition(kind Kind) (Definition, error) {
	def := builtinDefinition(kind)
	path := filepath.Join(DefaultsDir, kind.String()+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return def, nil
	}
	var parsed Definition
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return def, nil
	}
	if parsed.Kind != "" && parsed.Kind != kind.String() {
		return def, fmt.Errorf("shape: %s defines kind %q", path, parsed.Kind)
	}
	merge(&def, parsed)
	return def, nil
}

// StartingDimensions returns the dimensions a definition seeds a session with.
func (d Definition) StartingDimensions() dimension.Dimensions {
	return dimension.Dimensions{
		Width:    d.Dimensions.Width,
		Height:   d.Dimensions.Height,
		Depth:    d.Dimensions.Depth,
		Diameter: d.Dimensions.Diameter,
	}
}

func builtinDefinition(kind Kind) Definition {
	var def Definition
	def.Kind = kind.String()
	def.Dimensions.Width = 10
	def.Dimensions.Height = 10
	def.Dimensions.Depth = 10
	def.Dimensions.Diameter = 10
	def.Color = "#c8c8c8"
	return def
}

func merge(dst *Definition, src Definition) {
	if src.Dimensions.Width > 0 {
		dst.Dimensions.Width = src.Dimensions.Width
	}
	if src.Dimensions.Height > 0 {
		dst.Dimensions.Height = src.Dimensions.Height
	}
	if src.Dimensions.Depth > 0 {
		dst.Dimensions.Depth = src.Dimensions.Depth
	}
	if src.Dimensions.Diameter > 0 {
		dst.Dimensions.Diameter = src.Dimensions.Diameter
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
}
