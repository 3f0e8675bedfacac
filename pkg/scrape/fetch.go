package scrape

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// NewClient returns the HTTP client shared by the page and image downloads.
func NewClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// FetchPage downloads the homepage and returns its HTML.
func FetchPage(client *http.Client, url string) (string, error) {
	body, err := fetch(client, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchImage downloads the menu image bytes.
func FetchImage(client *http.Client, url string) ([]byte, error) {
	return fetch(client, url)
}

func fetch(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: status %s", ErrFetch, url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFetch, url, err)
	}
	return body, nil
}
