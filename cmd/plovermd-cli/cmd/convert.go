package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"plovermd/internal/adapters/jsondict"
	"plovermd/internal/application/commands"
)

var importCmd = &cobra.Command{
	Use:   "import <json-dictionary>",
	Short: "Merge a Plover JSON dictionary into the markdown dictionary",
	Long: `Merge the translations of a Plover JSON dictionary into the markdown
dictionary. Existing outlines are updated in place, new ones go to the
"Added by Plover" section. The markdown file is created if missing.

Examples:
  plovermd-cli import ~/.config/plover/main.json
  plovermd-cli -d notes.md import briefs.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewImportCommand(GetRepo(), jsondict.Codec{}, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <json-dictionary>",
	Short: "Write the translations as a Plover JSON dictionary",
	Long: `Write the translations of the markdown dictionary as a Plover JSON
dictionary, in file order. Prose and markers are not carried over.

Examples:
  plovermd-cli export user.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewExportCommand(GetRepo(), jsondict.Codec{}, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
