package scrape

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Menu assets carry an ISO date in the filename when the site publishes a
// dated upload, e.g. meni-2024-06-01.jpg.
var imageDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// LocateMenuImage scans the homepage HTML for menu image references and
// returns the absolute URL of the most recent one. Candidates are <img> tags
// whose src contains "meni" or "menu" (case-insensitive) and ends in
// .jpg/.jpeg. If any candidate filename carries a YYYY-MM-DD date, the
// greatest date wins; otherwise the first match in document order is taken,
// since the site lists the newest upload first. Relative srcs are resolved
// against base. Returns ErrNoMenuImage when no reference qualifies.
func LocateMenuImage(pageHTML, base string) (string, error) {
	candidates := menuImageCandidates(pageHTML)
	if len(candidates) == 0 {
		return "", ErrNoMenuImage
	}

	chosen := candidates[0]
	bestDate := imageDatePattern.FindString(chosen)
	for _, c := range candidates[1:] {
		if d := imageDatePattern.FindString(c); d > bestDate {
			chosen = c
			bestDate = d
		}
	}
	return resolveURL(chosen, base), nil
}

// menuImageCandidates collects qualifying img srcs in document order.
// html.Parse is lenient, so malformed markup degrades to fewer candidates
// rather than an error.
func menuImageCandidates(pageHTML string) []string {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return nil
	}
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			if src := attr(n, "src"); isMenuImage(src) {
				out = append(out, src)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func isMenuImage(src string) bool {
	low := strings.ToLower(src)
	if !strings.Contains(low, "meni") && !strings.Contains(low, "menu") {
		return false
	}
	return strings.HasSuffix(low, ".jpg") || strings.HasSuffix(low, ".jpeg")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// resolveURL makes src absolute relative to base; on unparsable input the
// src is returned as-is and the download attempt will surface the problem.
func resolveURL(src, base string) string {
	b, err := url.Parse(base)
	if err != nil {
		return src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return src
	}
	return b.ResolveReference(ref).String()
}
