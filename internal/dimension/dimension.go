package dimension

import (
	"errors"
	"fmt"
	"math"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

// ErrInvalidDimension is returned when an edit is not a finite positive number.
// The edit is rejected and the field keeps its prior value.
var ErrInvalidDimension = errors.New("dimension: value must be a finite positive number")

// Field names one editable dimension.
type Field string

const (
	FieldWidth    Field = "width"
	FieldHeight   Field = "height"
	FieldDepth    Field = "depth"
	FieldDiameter Field = "diameter"
)

// Dimensions holds all four values in centimeters regardless of the active
// shape, so switching shapes never loses an edit. Which fields are meaningful
// is the shape mapper's business, not ours.
type Dimensions struct {
	Width    float64
	Height   float64
	Depth    float64
	Diameter float64
}

// Default is the starting size for a new session: a 10 cm object.
func Default() Dimensions {
	return Dimensions{Width: 10, Height: 10, Depth: 10, Diameter: 10}
}

// Set applies a direct user edit. Non-finite or non-positive values are
// rejected with ErrInvalidDimension.
func (d *Dimensions) Set(field Field, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return ErrInvalidDimension
	}
	switch field {
	case FieldWidth:
		d.Width = value
	case FieldHeight:
		d.Height = value
	case FieldDepth:
		d.Depth = value
	case FieldDiameter:
		d.Diameter = value
	default:
		return fmt.Errorf("dimension: unknown field %q", field)
	}
	return nil
}

// Get returns the named field value.
func (d Dimensions) Get(field Field) float64 {
	switch field {
	case FieldWidth:
		return d.Width
	case FieldHeight:
		return d.Height
	case FieldDepth:
		return d.Depth
	case FieldDiameter:
		return d.Diameter
	}
	return 0
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveFromAspect derives one dimension from a texture's width:height ratio.
// Front/back drive width, left/right drive depth; height is the anchor and is
// never derived. Other faces are ignored.
func (d *Dimensions) DeriveFromAspect(face texture.FaceKey, ratio float64) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return
	}
	switch face {
	case texture.FaceFront, texture.FaceBack:
		d.Width = Round2(d.Height * ratio)
	case texture.FaceLeft, texture.FaceRight:
		d.Depth = Round2(d.Height * ratio)
	}
}

// ApplyAspectRatios derives width and depth from a set of face ratios in one
// pass. When both faces of a pair are present the priority face wins: front
// over back, left over right. The ratios are never averaged and the secondary
// face is consulted only when the priority face is absent.
func (d *Dimensions) ApplyAspectRatios(ratios map[texture.FaceKey]float64) {
	if r, ok := pick(ratios, texture.FaceFront, texture.FaceBack); ok {
		d.DeriveFromAspect(texture.FaceFront, r)
	}
	if r, ok := pick(ratios, texture.FaceLeft, texture.FaceRight); ok {
		d.DeriveFromAspect(texture.FaceLeft, r)
	}
}

func pick(ratios map[texture.FaceKey]float64, primary, secondary texture.FaceKey) (float64, bool) {
	if r, ok := ratios[primary]; ok {
		return r, true
	}
	if r, ok := ratios[secondary]; ok {
		return r, true
	}
	return 0, false
}
