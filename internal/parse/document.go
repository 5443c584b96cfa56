package parse

import (
	"bytes"
	"fmt"
	"strings"

	"econgrads/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

// Document is one raw source ready for parsing: HTML wrapped in goquery
// or a PDF reduced to plain text.
type Document struct {
	Source string
	HTML   *goquery.Document // nil for PDF sources
	Text   string            // extracted text for PDF sources
}

// NewDocument builds a Document from fetched bytes and verifies the
// content is parseable at all. A recognizable error page fails here so
// the coordinator never records a broken source as zero placements.
func NewDocument(school domain.School, source string, content []byte, isPDF bool) (*Document, error) {
	if isPDF {
		text, err := extractPDFText(content)
		if err != nil {
			return nil, &ParseError{School: school, Source: source, Reason: fmt.Sprintf("pdf extraction: %v", err)}
		}
		return &Document{Source: source, Text: text}, nil
	}

	if reason := errorPageReason(content); reason != "" {
		return nil, &ParseError{School: school, Source: source, Reason: reason}
	}

	html, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, &ParseError{School: school, Source: source, Reason: fmt.Sprintf("html: %v", err)}
	}
	return &Document{Source: source, HTML: html}, nil
}

// Markers that mean the server returned an interstitial or JS wall
// instead of the page. Checked against lowercased content.
var errorPageMarkers = []string{
	"please enable javascript",
	"javascript is required",
	"this page requires javascript",
	"access denied",
	"attention required",
	"checking your browser",
	"request unsuccessful",
}

func errorPageReason(content []byte) string {
	if len(content) < 500 {
		return fmt.Sprintf("document too small (%d bytes)", len(content))
	}
	lower := strings.ToLower(string(content))
	for _, m := range errorPageMarkers {
		if strings.Contains(lower, m) {
			return fmt.Sprintf("error page marker %q", m)
		}
	}
	return ""
}
