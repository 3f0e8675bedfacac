package scrape

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	soupPricePattern = regexp.MustCompile(`Dnevna juha:\s*(\d+[,.]\d+€)`)
	mainPricePattern = regexp.MustCompile(`Dnevna glavna jed:\s*(\d+[,.]\d+€)`)
)

// ExtractPrices pulls the advertised soup and main-dish prices out of the
// homepage text. The prices live in regular page copy, not on the menu image.
// A missing price comes back as an empty string, never as an error.
func ExtractPrices(pageHTML string) (soupPrice, mainPrice string) {
	text := pageText(pageHTML)
	if m := soupPricePattern.FindStringSubmatch(text); len(m) == 2 {
		soupPrice = m[1]
	}
	if m := mainPricePattern.FindStringSubmatch(text); len(m) == 2 {
		mainPrice = m[1]
	}
	return soupPrice, mainPrice
}

// pageText flattens the document to its visible text, skipping script and
// style bodies.
func pageText(pageHTML string) string {
	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil {
		return pageHTML
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}
