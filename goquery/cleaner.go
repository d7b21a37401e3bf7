// Package goquery implements HTML noise filtering using CSS selectors.
package goquery

import (
	"strings"

	gpa "github.com/taimg1/game-platform-analyzer"

	"github.com/PuerkitoBio/goquery"
)

// Ensure Cleaner implements gpa.Cleaner at compile time.
var _ gpa.Cleaner = (*Cleaner)(nil)

// noiseSelector matches markup that never carries listing content.
const noiseSelector = "script, style, header, footer, aside, form"

// paginationKeywords are link texts that mark a nav as a pagination
// control worth preserving for the crawl loop.
var paginationKeywords = []string{
	"next", "previous", "back", "last", "first", ">", "»", "<", "«",
}

// paginationAriaLabels are aria-label values that mark pagination links.
var paginationAriaLabels = []string{"next page", "previous page"}

// maxNavLinks bounds how many links a nav may contain and still be
// inspected as a pagination candidate; bigger navs are site chrome.
const maxNavLinks = 20

// Cleaner strips non-content markup and navigation chrome from rendered
// HTML while preserving pagination controls, so that extraction prompts
// stay small without losing the elements the crawl loop needs.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the HTML with scripts, styling, page chrome, and
// non-pagination navigation removed.
func (c *Cleaner) Clean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", gpa.Errorf(gpa.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()

	doc.Find("nav").Each(func(_ int, nav *goquery.Selection) {
		if !isPagination(nav) {
			nav.Remove()
		}
	})

	out, err := doc.Html()
	if err != nil {
		return "", gpa.Errorf(gpa.EINTERNAL, "failed to render cleaned HTML: %v", err)
	}
	return out, nil
}

// isPagination reports whether a nav element is a pagination control.
// A nav qualifies when its own attributes name it as pagination, or when
// it holds a small number of links whose text looks like page navigation.
func isPagination(nav *goquery.Selection) bool {
	attrs := strings.ToLower(strings.Join([]string{
		nav.AttrOr("class", ""),
		nav.AttrOr("id", ""),
		nav.AttrOr("aria-label", ""),
		nav.AttrOr("role", ""),
	}, " "))
	if strings.Contains(attrs, "pagination") || strings.Contains(attrs, "pager") {
		return true
	}

	links := nav.Find("a")
	n := links.Length()
	if n == 0 || n >= maxNavLinks {
		return false
	}

	found := false
	links.EachWithBreak(func(_ int, link *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(link.Text()))
		aria := strings.ToLower(link.AttrOr("aria-label", ""))

		for _, kw := range paginationKeywords {
			if text != "" && strings.Contains(text, kw) {
				found = true
				return false
			}
		}
		for _, kw := range paginationAriaLabels {
			if strings.Contains(aria, kw) {
				found = true
				return false
			}
		}
		if text != "" && isDigits(text) {
			found = true
			return false
		}
		return true
	})

	return found
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
