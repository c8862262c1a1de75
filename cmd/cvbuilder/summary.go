package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cv-builder/internal/store"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [text]",
	Short: "Replace the professional summary",
	Long:  "Replace the professional summary with the given text, the contents of --file, or standard input when the text is -.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  withApp(runSummary),
}

var summaryFile string

func init() {
	summaryCmd.Flags().StringVarP(&summaryFile, "file", "f", "", "Read the summary from a file")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	content, err := textInput(cmd, summaryFile, args)
	if err != nil {
		return err
	}
	if err := a.dispatch(ctx, store.UpdateSummary{Content: content}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Summary updated (%d characters)\n", len([]rune(content)))
	return nil
}

// textInput reads a command's text argument from a file, from stdin ("-") or from args[0].
func textInput(cmd *cobra.Command, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("cannot use --file together with a text argument")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("must provide text, - for stdin, or --file")
	}
}
