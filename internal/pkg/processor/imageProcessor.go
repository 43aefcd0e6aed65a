package processor

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/catchcraft/internal/entity"
	"github.com/gabriel-vasile/mimetype"

	_ "golang.org/x/image/webp" // registers the webp decoder with image.Decode
)

// AcceptedTypes are the upload content types a background may have.
var AcceptedTypes = []string{"image/jpeg", "image/png", "image/webp"}

var formats = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/webp": "webp",
}

type ImageProcessor interface {
	Decode(data []byte) (image.Image, string, error)
	EncodePNG(w io.Writer, img image.Image) error
	Preview(img image.Image, displayWidth int) image.Image
}

type imageProcessor struct{}

func NewImageProcessor() ImageProcessor {
	return &imageProcessor{}
}

// Decode sniffs the content type, then decodes the upload into a raster normalized to
// the origin with EXIF orientation applied.
func (p *imageProcessor) Decode(data []byte) (image.Image, string, error) {
	format, err := detectFormat(data)
	if err != nil {
		return nil, "", err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrDecodeFailed, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, "", fmt.Errorf("%w: empty image", entity.ErrDecodeFailed)
	}

	return imaging.Clone(img), format, nil
}

func (p *imageProcessor) EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// Preview scales a frame down to the width it is displayed at. Frames already narrower
// than displayWidth, or a non-positive width, are returned unchanged.
func (p *imageProcessor) Preview(img image.Image, displayWidth int) image.Image {
	if displayWidth <= 0 || displayWidth >= img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, displayWidth, 0, imaging.Lanczos)
}

func detectFormat(data []byte) (string, error) {
	if len(data) == 0 {
		return "", entity.ErrNoImageFile
	}

	mime := mimetype.Detect(data)
	for _, accepted := range AcceptedTypes {
		if mime.Is(accepted) {
			return formats[accepted], nil
		}
	}
	return "", fmt.Errorf("%w: got %s", entity.ErrUnsupportedImageType, mime.String())
}
