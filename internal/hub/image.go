package hub

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// CaptionImageExtensions lists the upload types accepted by the captioning panel.
var CaptionImageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// formatMIME maps image.Decode format names to MIME types.
var formatMIME = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
}

// decodeImage checks that data is a decodable image and returns its MIME
// type and dimensions. The bytes themselves are passed through unchanged.
func decodeImage(data []byte) (mimeType string, cfg image.Config, err error) {
	if len(data) == 0 {
		return "", cfg, fmt.Errorf("image data is empty")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", cfg, fmt.Errorf("cannot decode image: %w", err)
	}
	mimeType, ok := formatMIME[format]
	if !ok {
		mimeType = "image/" + format
	}
	return mimeType, cfg, nil
}

// acceptedCaptionExtension reports whether name has a png, jpg or jpeg extension.
func acceptedCaptionExtension(name string) bool {
	_, ok := CaptionImageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
