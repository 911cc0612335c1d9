package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plovermd/internal/adapters/editor"
	"plovermd/internal/application"
)

var editCmd = &cobra.Command{
	Use:   "edit [strokes]...",
	Short: "Open the dictionary in your editor",
	Long: `Open the markdown dictionary in $VISUAL or $EDITOR.

With strokes, the cursor is placed on the line of that outline when the
editor supports it (vim, nvim, nano, emacs, helix, kakoune, micro).

Examples:
  plovermd-cli edit
  plovermd-cli edit HEL/HRO`,
	RunE: func(cmd *cobra.Command, args []string) error {
		line := 0
		if len(args) > 0 {
			key, err := application.ParseStrokes("strokes", strings.Join(args, " "))
			if err != nil {
				return err
			}
			doc, err := GetRepo().Load()
			if err != nil {
				return err
			}
			if line = doc.LineOf(key); line == 0 {
				return &application.NotFoundError{Key: key.String()}
			}
		}

		c, err := editor.NewOpener().CommandAt(GetRepo().Path(), line)
		if err != nil {
			return err
		}

		log.Debugw("Opening editor", "args", c.Args)
		if err := c.Run(); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}
		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the dictionary path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(GetRepo().Path())
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(pathCmd)
}
