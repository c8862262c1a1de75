package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the CV as a single-page PDF",
	Long: "Export the CV as a single-page PDF named <Full_Name>_CV.pdf. The page is rendered in print mode, " +
		"rasterized by headless Chrome and placed on one page. Requires Chrome/Chromium to be installed.",
	Args: cobra.NoArgs,
	RunE: withApp(runExport),
}

var (
	exportOutDir  string
	exportPaper   string
	exportTimeout time.Duration
	exportImage   bool
)

// newRasterizer is replaced in tests.
var newRasterizer = func(a *app) export.Rasterizer {
	r := export.NewChromeRasterizer()
	r.SettleDelay = a.cfg.Export.SettleDelay
	r.ExecPath = a.cfg.Export.ChromePath
	return r
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Output directory (overrides config)")
	exportCmd.Flags().StringVar(&exportPaper, "paper", "", "Paper size: A4 or Letter (overrides config)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 0, "Export timeout (overrides config)")
	exportCmd.Flags().BoolVar(&exportImage, "image", false, "Also write the captured PNG next to the PDF")

	rootCmd.AddCommand(exportCmd)
}

// newExporter builds an exporter from config, applying non-zero flag overrides.
func newExporter(a *app, paperName string, timeout time.Duration) (*export.Exporter, error) {
	if paperName == "" {
		paperName = a.cfg.Export.Paper
	}
	paper, ok := export.PaperByName(paperName)
	if !ok {
		return nil, fmt.Errorf("unknown paper size %q: use A4 or Letter", paperName)
	}
	if timeout <= 0 {
		timeout = a.cfg.Export.Timeout
	}
	return export.New(newRasterizer(a), a.log, export.Options{Paper: paper, Timeout: timeout}), nil
}

func runExport(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	exporter, err := newExporter(a, exportPaper, exportTimeout)
	if err != nil {
		return err
	}
	outDir := a.cfg.Export.OutputDir
	if exportOutDir != "" {
		outDir = exportOutDir
	}

	artifact, err := exporter.Export(ctx, a.store.State())
	if err == nil {
		var path string
		path, err = artifact.Save(outDir)
		if err == nil && exportImage {
			_, err = artifact.SaveImage(outDir)
		}
		if err == nil {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
		}
	}

	notice := export.NoticeFor(err)
	a.printer.PrintNotice(notice.Title, notice.Description, notice.Failed)
	return err
}
