package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Change template, font, size, accent color or spacing",
	Long: "Change the presentation of the CV. Templates: minimal, two-column, corporate. Fonts: inter, " +
		"merriweather, roboto, lato, opensans. Sizes: small, medium, large. Spacing: compact, normal, relaxed.",
	Args: cobra.NoArgs,
	RunE: withApp(runStyle),
}

var (
	styleTemplate string
	styleFont     string
	styleSize     string
	styleAccent   string
	styleSpacing  string
)

func init() {
	styleCmd.Flags().StringVarP(&styleTemplate, "template", "t", "", "Template name")
	styleCmd.Flags().StringVar(&styleFont, "font", "", "Font family")
	styleCmd.Flags().StringVar(&styleSize, "size", "", "Font size")
	styleCmd.Flags().StringVar(&styleAccent, "accent", "", "Accent color, e.g. #3b82f6")
	styleCmd.Flags().StringVar(&styleSpacing, "spacing", "", "Section spacing")

	rootCmd.AddCommand(styleCmd)
}

func runStyle(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	var patch types.StylePatch
	if cmd.Flags().Changed("template") {
		v := types.TemplateName(styleTemplate)
		patch.Template = &v
	}
	if cmd.Flags().Changed("font") {
		v := types.FontFamily(styleFont)
		patch.FontFamily = &v
	}
	if cmd.Flags().Changed("size") {
		v := types.FontSize(styleSize)
		patch.FontSize = &v
	}
	if cmd.Flags().Changed("accent") {
		v := styleAccent
		patch.AccentColor = &v
	}
	if cmd.Flags().Changed("spacing") {
		v := types.Spacing(styleSpacing)
		patch.Spacing = &v
	}

	if patch.Empty() {
		return fmt.Errorf("nothing to update: pass at least one style flag")
	}
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}

	if err := a.dispatch(ctx, store.UpdateStyles{Patch: patch}); err != nil {
		return err
	}

	s := a.store.State().Styles
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Style: %s, %s, %s, %s, %s\n", s.Template, s.FontFamily, s.FontSize, s.Spacing, s.AccentColor)
	return nil
}
