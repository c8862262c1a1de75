package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <collection> [json]",
	Short: "Append a new entry to a collection",
	Long: "Append a new entry to a collection. Fields missing from the JSON object keep the blank entry's " +
		"values and a fresh id is generated unless one is given. Use - to read the JSON from stdin.\n\n" +
		"Example: cvbuilder add skills '{\"name\":\"Go\",\"category\":\"Languages\"}'",
	Args: cobra.RangeArgs(1, 2),
	RunE: withApp(runAdd),
}

var removeCmd = &cobra.Command{
	Use:   "remove <collection> <id>",
	Short: "Remove an entry from a collection",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runRemove),
}

var moveCmd = &cobra.Command{
	Use:   "move <collection> <id> <up|down|delta>",
	Short: "Move an entry within its collection",
	Args:  cobra.ExactArgs(3),
	RunE:  withApp(runMove),
}

var bulletCmd = &cobra.Command{
	Use:   "bullet <collection> <id> <add|set|remove> [index] [text]",
	Short: "Edit the bullet points of an experience, education, project or volunteering entry",
	Long: "Edit bullet points by position (0-based).\n\n" +
		"  bullet experience 1 add\n" +
		"  bullet experience 1 set 0 \"Led the platform team\"\n" +
		"  bullet experience 1 remove 2\n\n" +
		"The last remaining bullet is never removed, and an out-of-range index changes nothing.",
	Args: cobra.RangeArgs(3, 5),
	RunE: withApp(runBullet),
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(bulletCmd)
}

func runAdd(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	name := editor.Collection(args[0])

	data := []byte("{}")
	if len(args) == 2 {
		text, err := textInput(cmd, "", args[1:])
		if err != nil {
			return err
		}
		data = []byte(text)
	}

	action, id, err := editor.AddFromJSON(a.store.State(), name, data)
	if err != nil {
		return err
	}
	if err := a.dispatch(ctx, action); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry %s\n", name, id)
	return nil
}

func runRemove(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	name, id := editor.Collection(args[0]), args[1]

	action, err := editor.RemoveFrom(a.store.State(), name, id)
	if err != nil {
		return err
	}
	if err := a.dispatch(ctx, action); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s entry %s\n", name, id)
	return nil
}

func runMove(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	name, id := editor.Collection(args[0]), args[1]
	delta, err := parseDelta(args[2])
	if err != nil {
		return err
	}

	action, err := editor.MoveWithin(a.store.State(), name, id, delta)
	if err != nil {
		return err
	}
	if err := a.dispatch(ctx, action); err != nil {
		return err
	}

	ids, err := editor.IDs(a.store.State(), name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s order: %s\n", name, strings.Join(ids, ", "))
	return nil
}

func runBullet(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
	name, id := editor.Collection(args[0]), args[1]

	edit, err := parseBulletEdit(args[2], args[3:])
	if err != nil {
		return err
	}

	action, err := editor.EditBullets(a.store.State(), name, id, edit)
	if err != nil {
		return err
	}
	if err := a.dispatch(ctx, action); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated bullets of %s entry %s\n", name, id)
	return nil
}

// parseBulletEdit turns "add", "set <index> <text>" or "remove <index>" into a BulletEdit.
func parseBulletEdit(op string, rest []string) (editor.BulletEdit, error) {
	index := func() (int, error) {
		if len(rest) == 0 {
			return 0, fmt.Errorf("%s requires an index", op)
		}
		i, err := strconv.Atoi(rest[0])
		if err != nil {
			return 0, fmt.Errorf("invalid index %q: %w", rest[0], err)
		}
		return i, nil
	}

	switch editor.BulletOp(op) {
	case editor.BulletAdd:
		if len(rest) > 0 {
			return editor.BulletEdit{}, fmt.Errorf("add takes no index or text")
		}
		return editor.BulletEdit{Op: editor.BulletAdd}, nil
	case editor.BulletSet:
		i, err := index()
		if err != nil {
			return editor.BulletEdit{}, err
		}
		if len(rest) != 2 {
			return editor.BulletEdit{}, fmt.Errorf("set requires an index and the new text")
		}
		return editor.BulletEdit{Op: editor.BulletSet, Index: i, Text: rest[1]}, nil
	case editor.BulletRemove:
		i, err := index()
		if err != nil {
			return editor.BulletEdit{}, err
		}
		if len(rest) > 1 {
			return editor.BulletEdit{}, fmt.Errorf("remove takes only an index")
		}
		return editor.BulletEdit{Op: editor.BulletRemove, Index: i}, nil
	default:
		return editor.BulletEdit{}, fmt.Errorf("unknown bullet operation %q: use add, set or remove", op)
	}
}
