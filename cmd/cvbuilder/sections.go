package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the section registry in display order",
	Args:  cobra.NoArgs,
	RunE: withApp(func(_ context.Context, _ *cobra.Command, a *app, _ []string) error {
		a.printer.PrintSections(a.store.State().Sections)
		return nil
	}),
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <section-id>",
	Short: "Enable or disable a section",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runToggle),
}

var moveSectionCmd = &cobra.Command{
	Use:   "move-section <section-id> <up|down|delta>",
	Short: "Move a section earlier or later in the render order",
	Long: "Move a section earlier (up) or later (down) in the render order. A numeric delta moves it " +
		"several places; pass negative numbers after -- (move-section skills -- -2).",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runMoveSection),
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(moveSectionCmd)
}

func runToggle(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
	id := args[0]
	if _, ok := types.FindSection(a.store.State().Sections, id); !ok {
		return fmt.Errorf("section not found: %s", id)
	}
	if err := a.dispatch(ctx, store.ToggleSection{ID: id}); err != nil {
		return err
	}
	a.printer.PrintSections(a.store.State().Sections)
	return nil
}

func runMoveSection(ctx context.Context, _ *cobra.Command, a *app, args []string) error {
	id := args[0]
	delta, err := parseDelta(args[1])
	if err != nil {
		return err
	}

	registry := a.store.State().Sections
	if _, ok := types.FindSection(registry, id); !ok {
		return fmt.Errorf("section not found: %s", id)
	}
	if err := a.dispatch(ctx, store.ReplaceSections{Sections: editor.MoveSection(registry, id, delta)}); err != nil {
		return err
	}
	a.printer.PrintSections(a.store.State().Sections)
	return nil
}

// parseDelta accepts "up", "down" or a signed integer.
func parseDelta(arg string) (int, error) {
	switch arg {
	case "up":
		return -1, nil
	case "down":
		return 1, nil
	}
	delta, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid delta %q: use up, down or an integer", arg)
	}
	return delta, nil
}
