package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

//go:embed layouts/*.html.tmpl
var layoutFS embed.FS

// HTMLOptions controls WriteHTML.
type HTMLOptions struct {
	// Standalone wraps the page in a complete HTML document with its stylesheet.
	Standalone bool
	// PrintMode drops the preview-only decoration (drop shadow).
	PrintMode bool
	// LayoutPath replaces the template's built-in layout with a file on disk. The file
	// must define a "page" template and may use the shared "block" and "contacts" ones.
	LayoutPath string
}

// htmlView is the data passed to the layouts.
type htmlView struct {
	Page        *Page
	FontStack   template.CSS
	AccentSoft  string
	AccentLine  string
	PrintMode   bool
	TargetClass string
}

// regionView is one region plus the gap between its blocks.
type regionView struct {
	Name   string
	Blocks []Block
	Gap    int
}

var layoutFuncs = template.FuncMap{
	"region": func(p *Page, name string) regionView {
		r, _ := p.Region(name)
		return regionView{Name: name, Blocks: r.Blocks, Gap: p.Style.SectionGapPx}
	},
}

// WriteHTML serializes page with its template's layout.
func WriteHTML(w io.Writer, page *Page, opts HTMLOptions) error {
	if page == nil {
		return &RenderError{Message: "page is nil"}
	}

	tmpl, err := parseLayout(Lookup(page.Template), opts.LayoutPath)
	if err != nil {
		return err
	}

	view := htmlView{
		Page:        page,
		FontStack:   template.CSS(page.Style.FontStack),
		AccentSoft:  withAlpha(page.Style.AccentColor, "15"),
		AccentLine:  withAlpha(page.Style.AccentColor, "30"),
		PrintMode:   opts.PrintMode,
		TargetClass: ExportTargetClass,
	}

	entry := "page"
	if opts.Standalone {
		entry = "document"
	}

	// Execute into a buffer so a failing template never leaves half a page in w.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, entry, view); err != nil {
		return &TemplateError{Message: "failed to execute layout", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Message: "failed to write html", Cause: err}
	}
	return nil
}

// RenderHTML renders doc with its selected template into a string.
func RenderHTML(doc types.Document, opts HTMLOptions) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(&sb, Render(doc), opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// parseLayout parses the shared base layout plus either the template's built-in layout
// or the file at layoutPath.
func parseLayout(tmpl Template, layoutPath string) (*template.Template, error) {
	base, err := template.New("base").Funcs(layoutFuncs).ParseFS(layoutFS, "layouts/base.html.tmpl")
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse base layout", Cause: err}
	}

	if layoutPath == "" {
		out, err := base.ParseFS(layoutFS, "layouts/"+tmpl.layout())
		if err != nil {
			return nil, &TemplateError{Message: fmt.Sprintf("failed to parse layout %s", tmpl.layout()), Cause: err}
		}
		return out, nil
	}

	content, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("layout file not found: %s", layoutPath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read layout file: %s", layoutPath),
			Cause:   err,
		}
	}

	out, err := base.New("custom").Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse layout", Cause: err}
	}
	return out, nil
}

// withAlpha appends a two-digit hex alpha to a #rgb or #rrggbb color. Other values are
// returned unchanged.
func withAlpha(color, alpha string) string {
	if !strings.HasPrefix(color, "#") {
		return color
	}
	hex := color[1:]
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return color
	}
	return "#" + hex + alpha
}
