package stylesheet

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/veranemoloko/cssgrab/internal/domain"
)

// ParseLinks returns the absolute href of every <link rel="stylesheet"> in an HTML
// document, in document order. Relative hrefs are resolved against base, or against
// the document's <base href> when present.
func ParseLinks(r io.Reader, base *url.URL) ([]domain.StylesheetRef, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if u, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(u)
		}
	}

	refs := []domain.StylesheetRef{}
	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		if !isStylesheet(s) {
			return
		}
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		refs = append(refs, domain.StylesheetRef{URL: base.ResolveReference(u).String()})
	})

	return refs, nil
}

func isStylesheet(s *goquery.Selection) bool {
	rel, _ := s.Attr("rel")
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if token == "stylesheet" {
			return true
		}
	}
	return false
}
