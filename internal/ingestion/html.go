package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jobContentSelectors are tried in order to find the posting body in saved
// job board pages before falling back to the whole document body.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractJobText parses a saved job posting HTML page and returns its text
// content. Navigation, scripts and other chrome are removed first; the result
// keeps line structure for evidence collection.
func ExtractJobText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	// Force line breaks after block elements so the flattened text keeps the
	// page's visual line structure.
	content.Find("br, p, li, div, h1, h2, h3, h4, h5, h6").AfterHtml("\n")

	return normalizeText(content.Text()), nil
}
