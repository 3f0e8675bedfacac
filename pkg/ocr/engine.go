// Package ocr is the boundary to the OCR engine. The interface is small and
// provider-agnostic so the recognizer can be backed by a native library or
// replaced by a stub in tests.
package ocr

import "context"

// Line is one recognized text line, in the image's top-to-bottom reading
// order. Confidence is in [0,1]; engines that report no confidence use -1.
type Line struct {
	Text       string
	Confidence float64
}

// Engine converts image bytes into recognized lines.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) ([]Line, error)
}
