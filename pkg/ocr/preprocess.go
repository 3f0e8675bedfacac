package ocr

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	minOCRHeight    = 800
	targetOCRHeight = 1200
)

// preprocess converts the photo to grayscale and upscales small images so
// Tesseract sees enough pixels per glyph, then re-encodes as PNG.
func preprocess(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	gray := imaging.Grayscale(img)
	if needsUpscale(gray.Bounds().Dy()) {
		gray = imaging.Resize(gray, 0, targetOCRHeight, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, gray, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// needsUpscale reports whether an image of height h should be resized before OCR.
func needsUpscale(h int) bool { return h < minOCRHeight }
