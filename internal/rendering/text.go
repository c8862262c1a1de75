package rendering

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/cv-builder/internal/types"
)

// RenderedSection is the plain text of one section found in rendered HTML.
type RenderedSection struct {
	Type   types.SectionType
	Region string
	Text   string
}

// ParseSections reads rendered HTML and returns its sections in document order with
// whitespace-normalized text.
func ParseSections(r io.Reader) ([]RenderedSection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &RenderError{Message: "failed to parse rendered html", Cause: err}
	}

	var out []RenderedSection
	doc.Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		region, _ := s.Closest("[data-region]").Attr("data-region")
		out = append(out, RenderedSection{
			Type:   types.SectionType(s.AttrOr("data-section", "")),
			Region: region,
			Text:   nodeText(s),
		})
	})
	return out, nil
}

// HeaderText returns the normalized text of the page header, contacts included.
func HeaderText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", &RenderError{Message: "failed to parse rendered html", Cause: err}
	}

	var parts []string
	doc.Find(".cv-header, .cv-contacts").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(".cv-header").Length() > 0 {
			return
		}
		parts = append(parts, nodeText(s))
	})
	return strings.Join(parts, " "), nil
}

// nodeText joins the text nodes under s with single spaces, so adjacent elements do not
// run together.
func nodeText(s *goquery.Selection) string {
	var parts []string
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			parts = append(parts, c.Text())
			return
		}
		parts = append(parts, nodeText(c))
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
