package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its children to its default, since
// flag variables are package-level and survive between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command in-process against the file backend in dir.
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	return runCLIContext(t, context.Background(), dir, stdin, args...)
}

// runCLIContext is runCLI with a caller-controlled context.
func runCLIContext(t *testing.T, ctx context.Context, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--backend", "file", "--storage-dir", dir}, args...))

	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

// mustRun runs the CLI and fails the test on error.
func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dir, "", args...)
	require.NoError(t, err, out)
	return out
}

// stateOf reads the persisted document back through show --raw.
func stateOf(t *testing.T, dir string) types.Document {
	t.Helper()
	out := mustRun(t, dir, "show", "--raw")

	var doc types.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}
