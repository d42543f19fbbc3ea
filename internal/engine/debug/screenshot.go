// Package debug provides developer capture utilities.
package debug

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ScreenshotCapture writes stereo pairs to PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	crossEyed bool
	now       func() time.Time
}

// NewScreenshotCapture creates a new screenshot capture handler. With
// crossEyed set the right eye is placed on the left of the pair.
func NewScreenshotCapture(outputDir, prefix string, crossEyed bool) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		crossEyed: crossEyed,
		now:       time.Now,
	}
}

// ImageFromPixels converts bottom-up RGBA rows as returned by glReadPixels
// into a top-down image.
func ImageFromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	raw := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return transform.FlipV(raw), nil
}

// StereoPair places two equally sized eye images next to each other.
func StereoPair(left, right image.Image, crossEyed bool) *image.RGBA {
	if crossEyed {
		left, right = right, left
	}

	lb, rb := left.Bounds(), right.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), max(lb.Dy(), rb.Dy())))
	draw.Draw(out, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Src)
	draw.Draw(out, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Src)
	return out
}

// CaptureStereo saves the two eye targets' pixels as one side-by-side PNG
// and returns the file name.
func (sc *ScreenshotCapture) CaptureStereo(left, right []byte, width, height int) (string, error) {
	l, err := ImageFromPixels(left, width, height)
	if err != nil {
		return "", fmt.Errorf("left eye: %w", err)
	}
	r, err := ImageFromPixels(right, width, height)
	if err != nil {
		return "", fmt.Errorf("right eye: %w", err)
	}
	return sc.CaptureFromImage(StereoPair(l, r, sc.crossEyed))
}

// CaptureFromImage saves an image and returns the file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	if err := imgio.Save(filename, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("saving %s: %w", filename, err)
	}
	return filename, nil
}

// GenerateFilename generates a screenshot filename without saving.
func (sc *ScreenshotCapture) GenerateFilename() string {
	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", sc.prefix, timestamp)
	if sc.outputDir != "" {
		filename = filepath.Join(sc.outputDir, filename)
	}
	return filename
}
