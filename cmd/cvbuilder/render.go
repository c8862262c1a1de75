package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the CV preview as a standalone HTML page",
	Long: "Render the CV preview as a standalone HTML page. Without --out the HTML is written to stdout. " +
		"With --all every template is rendered into --out-dir as <template>.html.",
	Args: cobra.NoArgs,
	RunE: withApp(runRender),
}

var (
	renderTemplate string
	renderOut      string
	renderOutDir   string
	renderAll      bool
	renderLayout   string
	renderPrint    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Render with this template instead of the selected one")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output HTML file")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", ".", "Output directory for --all")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template")
	renderCmd.Flags().StringVar(&renderLayout, "layout", "", "Path to a custom layout template defining \"page\"")
	renderCmd.Flags().BoolVar(&renderPrint, "print", false, "Render in print mode, as used by export")

	rootCmd.AddCommand(renderCmd)
}

func runRender(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	doc := a.store.State()
	opts := rendering.HTMLOptions{Standalone: true, PrintMode: renderPrint, LayoutPath: renderLayout}

	if renderAll {
		if renderTemplate != "" || renderOut != "" {
			return fmt.Errorf("cannot use --all with --template or --out")
		}
		return renderAllTemplates(ctx, cmd, a, doc, opts)
	}

	if renderTemplate != "" {
		doc.Styles.Template = types.TemplateName(renderTemplate)
	}

	html, err := rendering.RenderHTML(doc, opts)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if renderOut == "" {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), html)
		return nil
	}

	if err := os.WriteFile(renderOut, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.log.Info("preview rendered", zap.String("template", string(rendering.Lookup(doc.Styles.Template).Name())), zap.String("path", renderOut))

	rendered, err := rendering.ParseSections(strings.NewReader(html))
	if err != nil {
		return err
	}
	a.printer.PrintRenderedSections(rendering.Lookup(doc.Styles.Template).Name(), rendered)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", renderOut)
	return nil
}

// renderAllTemplates renders doc with each template concurrently into renderOutDir.
func renderAllTemplates(ctx context.Context, cmd *cobra.Command, a *app, doc types.Document, opts rendering.HTMLOptions) error {
	if err := os.MkdirAll(renderOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	templates := rendering.Templates()
	paths := make([]string, len(templates))

	g, gCtx := errgroup.WithContext(ctx)
	for i, tmpl := range templates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			page := rendering.RenderWith(doc, tmpl)
			path := filepath.Join(renderOutDir, string(tmpl.Name())+".html")

			var sb strings.Builder
			if err := rendering.WriteHTML(&sb, page, opts); err != nil {
				return fmt.Errorf("%s: %w", tmpl.Name(), err)
			}
			if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
				return fmt.Errorf("%s: failed to write output file: %w", tmpl.Name(), err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		a.log.Info("preview rendered", zap.String("path", path))
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	}
	return nil
}
