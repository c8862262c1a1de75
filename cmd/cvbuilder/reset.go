package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the CV with the built-in example document",
	Long:  "Replace the CV with the built-in example document. All current content is lost; you are asked to confirm unless --yes is given.",
	Args:  cobra.NoArgs,
	RunE:  withApp(runReset),
}

const (
	promptYes = "Yes, reset"
	promptNo  = "No, keep my CV"
)

var resetYes bool

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(resetCmd)
}

func runReset(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
	if !resetYes {
		prompt := promptui.Select{
			Label:  "Reset the CV to the example document? All current content will be lost",
			Items:  []string{promptNo, promptYes},
			Stdin:  readCloser{cmd.InOrStdin()},
			Stdout: writeCloser{cmd.OutOrStdout()},
		}
		_, choice, err := prompt.Run()
		if err != nil && !errors.Is(err, promptui.ErrInterrupt) && !errors.Is(err, promptui.ErrEOF) {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if err != nil || choice != promptYes {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
			return nil
		}
	}

	if err := a.store.Reset(ctx); err != nil {
		return fmt.Errorf("change applied but not saved: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "CV reset to the example document")
	return nil
}
