package rendering

import (
	"github.com/jonathan/cv-builder/internal/sections"
	"github.com/jonathan/cv-builder/internal/types"
)

var fontStacks = map[types.FontFamily]string{
	types.FontInter:        "'Inter', sans-serif",
	types.FontMerriweather: "'Merriweather', serif",
	types.FontRoboto:       "'Roboto', sans-serif",
	types.FontLato:         "'Lato', sans-serif",
	types.FontOpenSans:     "'Open Sans', sans-serif",
}

var fontSizes = map[types.FontSize]int{
	types.FontSizeSmall:  10,
	types.FontSizeMedium: 11,
	types.FontSizeLarge:  12,
}

// Render lays doc out with the template selected by doc.Styles.Template. It is pure and
// deterministic.
func Render(doc types.Document) *Page {
	return RenderWith(doc, Lookup(doc.Styles.Template))
}

// RenderWith lays doc out with tmpl, ignoring doc.Styles.Template.
func RenderWith(doc types.Document, tmpl Template) *Page {
	page := &Page{
		Template: tmpl.Name(),
		Style:    resolveStyle(doc.Styles, tmpl),
		Header:   buildHeader(doc.PersonalInfo),
	}

	for _, region := range sections.Partition(doc.Sections, tmpl.Regions()) {
		out := Region{Name: region.Name, Blocks: []Block{}}
		for _, s := range region.Sections {
			if block, ok := buildBlock(doc, s); ok {
				out.Blocks = append(out.Blocks, block)
			}
		}
		page.Regions = append(page.Regions, out)
	}
	return page
}

func resolveStyle(styles types.StyleConfig, tmpl Template) PageStyle {
	family := styles.FontFamily
	stack, ok := fontStacks[family]
	if !ok {
		family = types.FontInter
		stack = fontStacks[family]
	}

	size, ok := fontSizes[styles.FontSize]
	if !ok {
		size = fontSizes[types.FontSizeMedium]
	}

	accent := styles.AccentColor
	if accent == "" {
		accent = types.DefaultAccentColor
	}

	return PageStyle{
		FontClass:    "cv-font-" + string(family),
		FontStack:    stack,
		FontSizePx:   size,
		SectionGapPx: tmpl.SpacingPx(styles.Spacing),
		AccentColor:  accent,
		WidthPx:      PageWidthPx,
		MinHeightPx:  PageMinHeightPx,
	}
}
