package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/storage"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/spf13/cobra"
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [action-json]",
	Short: "Apply a raw {type, payload} action",
	Long: "Apply a raw action envelope such as {\"type\":\"UPDATE_SUMMARY\",\"payload\":\"...\"}. " +
		"Unknown action types are accepted and change nothing. Use - or --file to read the action from stdin or a file.",
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(runDispatch),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the whole CV with a document from a JSON file",
	Long:  "Replace the whole CV with a document read from a JSON file (the same shape show --raw prints). The file must match the document schema.",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runImport),
}

var dispatchFile string

func init() {
	dispatchCmd.Flags().StringVarP(&dispatchFile, "file", "f", "", "Read the action from a file")

	rootCmd.AddCommand(dispatchCmd)
	rootCmd.AddCommand(importCmd)
}

func runDispatch(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	text, err := textInput(cmd, dispatchFile, args)
	if err != nil {
		return err
	}

	action, err := store.DecodeAction([]byte(text))
	if err != nil {
		return err
	}
	if err := a.dispatch(ctx, action); err != nil {
		return err
	}

	if _, unknown := action.(store.Unknown); unknown {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Ignored unknown action %s\n", action.Type())
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", action.Type())
	return nil
}

func runImport(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	text, err := textInput(cmd, args[0], nil)
	if err != nil {
		return err
	}

	doc, err := storage.DecodeSnapshot([]byte(text))
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%s does not match the document schema: %w", args[0], err)
		}
		return err
	}

	if err := a.dispatch(ctx, store.SetDocument{Document: doc}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
	a.printer.PrintDocument(a.store.State())
	return nil
}
