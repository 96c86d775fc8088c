package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"

	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"
)

// ErrImageDecode is returned when a byte source cannot be decoded as an image.
var ErrImageDecode = errors.New("texture: cannot decode image")

// maxTextureDim caps the longest edge of a decoded image before GPU upload.
// Larger uploads are downscaled; the natural pixel size is recorded beforehand
// so aspect-ratio derivation always uses the original dimensions.
const maxTextureDim = 2048

// decode parses data as PNG, JPEG or WebP and returns an NRGBA image plus the
// natural (pre-downscale) pixel size.
func decode(data []byte) (img *image.NRGBA, naturalW, naturalH int, err error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	b := src.Bounds()
	naturalW, naturalH = b.Dx(), b.Dy()
	if naturalW <= 0 || naturalH <= 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty image", ErrImageDecode)
	}
	if w, h, shrink := fitWithin(naturalW, naturalH, maxTextureDim); shrink {
		src = transform.Resize(src, w, h, transform.Linear)
		b = src.Bounds()
	}
	img = toNRGBA(src, b)
	return img, naturalW, naturalH, nil
}

// fitWithin scales (w, h) down proportionally so the longest edge is at most max.
func fitWithin(w, h, max int) (int, int, bool) {
	long := w
	if h > long {
		long = h
	}
	if long <= max {
		return w, h, false
	}
	scale := float64(max) / float64(long)
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh, true
}

func toNRGBA(src image.Image, b image.Rectangle) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
