package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"plovermd/internal/application/commands"
)

var addCmd = &cobra.Command{
	Use:   "add <strokes> <translation>",
	Short: "Add or change a translation",
	Long: `Add or change a translation and save the dictionary.

An outline already in the file is changed in place and its line marked
(UPDATED). A new outline goes to the last "Added by Plover" section,
which is created at the end of the file when missing.

Examples:
  plovermd-cli add HEL/HRO hello
  plovermd-cli add "TK-LS" "{^}"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddCommand(GetRepo(), args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <strokes>...",
	Short: "Delete a translation",
	Long: `Delete a translation and save the dictionary.

The lines carrying it stay in the file, marked (DELETED), so the change
can be reviewed and the line removed by hand.

Examples:
  plovermd-cli delete HEL/HRO`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, strokes := range args {
			result, err := commands.NewDeleteCommand(GetRepo(), strokes).Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
}
