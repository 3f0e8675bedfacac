package scrape

import "errors"

// ErrNoMenuImage is returned when the homepage contains no qualifying menu image.
var ErrNoMenuImage = errors.New("menu image not found on homepage")

// ErrFetch classifies homepage and image download failures.
var ErrFetch = errors.New("fetch failed")
