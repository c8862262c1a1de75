package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [collection]",
	Short: "Show the current CV document or one of its collections",
	Long: "Show a summary of the current CV document. With a collection name (skills, experience, " +
		"education, ...) list that collection's entries with their ids. With --raw print the document as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(runShow),
}

var showRaw bool

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the document as indented JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ context.Context, cmd *cobra.Command, a *app, args []string) error {
	doc := a.store.State()

	if showRaw {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(args) == 0 {
		a.printer.PrintDocument(doc)
		return nil
	}

	name := editor.Collection(args[0])
	entries, err := collectionEntries(doc, name)
	if err != nil {
		return err
	}
	a.printer.PrintEntries(strings.ToUpper(string(name)), entries)
	return nil
}

// collectionEntries lists a collection as id and label pairs.
func collectionEntries(doc types.Document, name editor.Collection) ([]observability.Entry, error) {
	switch name {
	case editor.Skills:
		return entriesOf(doc.Skills, func(s types.Skill) string { return join(s.Name, s.Category) }), nil
	case editor.Experience:
		return entriesOf(doc.Experience, func(e types.Experience) string { return join(e.Position, e.Company) }), nil
	case editor.Education:
		return entriesOf(doc.Education, func(e types.Education) string { return join(e.Degree, e.Institution) }), nil
	case editor.Projects:
		return entriesOf(doc.Projects, func(p types.Project) string { return p.Name }), nil
	case editor.Certifications:
		return entriesOf(doc.Certifications, func(c types.Certification) string { return join(c.Name, c.Issuer) }), nil
	case editor.Languages:
		return entriesOf(doc.Languages, func(l types.Language) string { return join(l.Name, l.Proficiency) }), nil
	case editor.Achievements:
		return entriesOf(doc.Achievements, func(a types.Achievement) string { return a.Title }), nil
	case editor.Volunteering:
		return entriesOf(doc.Volunteering, func(v types.Volunteering) string { return join(v.Role, v.Organization) }), nil
	case editor.Publications:
		return entriesOf(doc.Publications, func(p types.Publication) string { return join(p.Title, p.Publisher) }), nil
	case editor.References:
		return entriesOf(doc.References, func(r types.Reference) string { return join(r.Name, r.Company) }), nil
	case editor.CustomSections:
		return entriesOf(doc.CustomSections, func(c types.CustomSection) string {
			return fmt.Sprintf("%s (%d items)", c.Title, len(c.Items))
		}), nil
	default:
		return nil, fmt.Errorf("%w: %s", editor.ErrUnknownCollection, name)
	}
}

func entriesOf[T types.Entity](items []T, label func(T) string) []observability.Entry {
	out := make([]observability.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, observability.Entry{ID: item.EntityID(), Label: label(item)})
	}
	return out
}

// join renders "primary (secondary)", dropping the parenthesis when secondary is empty.
func join(primary, secondary string) string {
	if secondary == "" {
		return primary
	}
	return fmt.Sprintf("%s (%s)", primary, secondary)
}
