package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the gosseract-backed Engine. It holds no client state; every
// Recognize call uses a fresh gosseract client.
type Tesseract struct {
	language string
}

// NewTesseract constructs a Tesseract engine for the given traineddata
// language code (e.g. "slv").
func NewTesseract(language string) *Tesseract {
	return &Tesseract{language: language}
}

func (t *Tesseract) Name() string { return "tesseract" }

// Recognize preprocesses the image and runs Tesseract, returning per-line
// text with confidence where the engine provides it.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) ([]Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prepared, err := preprocess(image)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()
	if t.language != "" {
		if err := client.SetLanguage(t.language); err != nil {
			return nil, fmt.Errorf("set language %q: %w", t.language, err)
		}
	}
	if err := client.SetImageFromBytes(prepared); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	if lines, err := linesFromBoxes(client); err == nil && len(lines) > 0 {
		return lines, nil
	}

	// Some builds lack iterator support; fall back to plain text output.
	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}
	lines := linesFromText(text)
	if len(lines) == 0 {
		return nil, ErrNoText
	}
	return lines, nil
}

// linesFromBoxes reads text-line bounding boxes; box confidence is 0-100 and
// is scaled to [0,1].
func linesFromBoxes(client *gosseract.Client) ([]Line, error) {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(boxes))
	for _, b := range boxes {
		lines = append(lines, Line{
			Text:       strings.TrimRight(b.Word, "\n"),
			Confidence: clampConfidence(b.Confidence / 100),
		})
	}
	return lines, nil
}

// linesFromText splits plain OCR output into lines with unknown confidence.
func linesFromText(text string) []Line {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, Line{Text: l, Confidence: -1})
	}
	return lines
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
