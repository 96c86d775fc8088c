package scene

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrCaptureFailed means the screenshot render or readback failed. Unlike
// decode and probe errors it is surfaced to the user: it blocks the export.
var ErrCaptureFailed = errors.New("scene: capture failed")

// DefaultCaptureFile is the filename used when the user gives none.
const DefaultCaptureFile = "mockup-render.png"

// CaptureFrame renders one fresh frame of the current state into an offscreen
// render texture, reads the pixels back and writes them to path (PNG, or WebP
// when the extension is .webp). Rendering happens inside this call, so the
// export reflects the latest state even when the last change has not been
// drawn on screen yet.
func (c *Composer) CaptureFrame(path string) error {
	width := int32(rl.GetScreenWidth())
	height := int32(rl.GetScreenHeight())
	target := rl.LoadRenderTexture(width, height)
	if !rl.IsRenderTextureValid(target) {
		return fmt.Errorf("%w: no render target %dx%d", ErrCaptureFailed, width, height)
	}
	defer rl.UnloadRenderTexture(target)

	c.env.ensureLoaded()
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.NewColor(245, 245, 245, 255))
	c.drawWorld()
	rl.EndTextureMode()

	img := rl.LoadImageFromTexture(target.Texture)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: readback", ErrCaptureFailed)
	}
	// Render textures are stored bottom-up.
	rl.ImageFlipVertical(img)
	pixels := rl.LoadImageColors(img)
	w, h := int(img.Width), int(img.Height)
	rl.UnloadImage(img)
	if len(pixels) < w*h {
		return fmt.Errorf("%w: short pixel readback", ErrCaptureFailed)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := pixels[y*w+x]
			i := out.PixOffset(x, y)
			out.Pix[i] = px.R
			out.Pix[i+1] = px.G
			out.Pix[i+2] = px.B
			out.Pix[i+3] = 255
		}
	}
	return writeImage(path, out)
}

func writeImage(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", ErrCaptureFailed, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		err = nativewebp.Encode(f, img, nil)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return nil
}
