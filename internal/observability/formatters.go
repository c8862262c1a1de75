// Package observability provides the boxed, human-readable output used by the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/sections"
	"github.com/jonathan/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate cuts s to n runes, replacing the tail with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs the personal details and a count per collection.
func (p *Printer) PrintDocument(doc types.Document) {
	var sb strings.Builder

	info := doc.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.FullName))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", info.JobTitle))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	if info.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}
	sb.WriteString("\n")

	if summary := strings.TrimSpace(doc.Summary.Content); summary != "" {
		sb.WriteString(fmt.Sprintf("Summary:  %s\n\n", summary))
	}

	counts := []struct {
		label string
		n     int
	}{
		{"Skills", len(doc.Skills)},
		{"Experience", len(doc.Experience)},
		{"Education", len(doc.Education)},
		{"Projects", len(doc.Projects)},
		{"Certifications", len(doc.Certifications)},
		{"Languages", len(doc.Languages)},
		{"Achievements", len(doc.Achievements)},
		{"Volunteering", len(doc.Volunteering)},
		{"Publications", len(doc.Publications)},
		{"References", len(doc.References)},
		{"Custom sections", len(doc.CustomSections)},
	}
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("%-16s %d\n", c.label+":", c.n))
	}
	sb.WriteString("\n")

	s := doc.Styles
	sb.WriteString(fmt.Sprintf("Style:    %s, %s, %s, %s, %s", s.Template, s.FontFamily, s.FontSize, s.Spacing, s.AccentColor))

	p.printBox("CV DOCUMENT", sb.String())
}

// PrintSections outputs the section registry in render order.
func (p *Printer) PrintSections(registry []types.Section) {
	if len(registry) == 0 {
		p.printBox("SECTIONS", "(none)")
		return
	}

	var sb strings.Builder
	for i, s := range sections.Sorted(registry) {
		mark := "✗"
		if s.Enabled {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %2d  %-16s %s", mark, s.Order, s.ID, s.Title))
		if i < len(registry)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SECTIONS", sb.String())
}

// PrintEntries outputs the id and label of each entity in a collection.
func (p *Printer) PrintEntries(title string, entries []Entry) {
	if len(entries) == 0 {
		p.printBox(title, "(empty)")
		return
	}

	var sb strings.Builder
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("• %s  %s", truncate(e.ID, 12), e.Label))
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(title, sb.String())
}

// Entry is one line of PrintEntries.
type Entry struct {
	ID    string
	Label string
}

// PrintRenderedSections outputs the text of each rendered section block.
func (p *Printer) PrintRenderedSections(template types.TemplateName, rendered []rendering.RenderedSection) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", template))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(rendered)))

	count := min(len(rendered), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := rendered[i]
		sb.WriteString(fmt.Sprintf("\n[%s] %s\n  %s", s.Region, s.Type, truncate(s.Text, 50)))
	}
	if len(rendered) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n\n... and %d more sections", len(rendered)-maxItemsToShow))
	}

	p.printBox("RENDERED PAGE", sb.String())
}

// PrintNotice outputs the outcome message of an operation such as an export.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintNotice(title, description string, failed bool) {
	icon := "✅"
	if failed {
		icon = "❌"
	}
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, icon+" "+title)
	if description != "" {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(description, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}
