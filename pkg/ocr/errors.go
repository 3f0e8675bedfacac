package ocr

import "errors"

// ErrNoText is returned when recognition succeeds but produces no lines.
var ErrNoText = errors.New("no text recognized")
