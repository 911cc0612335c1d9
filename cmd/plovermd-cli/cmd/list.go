package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plovermd/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List translations",
	Long: `List the translations of the dictionary in file order.

With a filter, only outlines or translations containing it are listed
(case-insensitive).

Examples:
  plovermd-cli list
  plovermd-cli list HEL
  plovermd-cli list "{^"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}

		entries, err := commands.NewListCommand(GetRepo(), filter).Execute(context.Background())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\n", e.Key, formatTranslation(e.Translation))
		}
		return w.Flush()
	},
}

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search outlines and translations",
	Long: `Search outlines and translations with fuzzy matching.

Results are ranked by relevance: exact and prefix matches first.

Examples:
  plovermd-cli search hello
  plovermd-cli search KPA`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchCommand(GetRepo(), args[0], searchLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\n", r.Key, formatTranslation(r.Translation))
		}
		return w.Flush()
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results (0 for all)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}
