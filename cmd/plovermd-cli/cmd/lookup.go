package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plovermd/internal/adapters/sqlite"
	"plovermd/internal/application/commands"
	"plovermd/internal/ports"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <strokes>...",
	Short: "Print the translation of an outline",
	Long: `Print the translation of an outline.

Strokes can be separated by slashes or given as separate arguments.
An up to date reverse lookup index answers without reading the dictionary.

Examples:
  plovermd-cli lookup HEL/HRO
  plovermd-cli lookup HEL HRO`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var index ports.TranslationIndex
		if idx, err := openIndex(); err != nil {
			log.Debugw("Looking up without the index", "error", err)
		} else {
			defer idx.Close()
			index = idx
		}

		result, err := commands.NewLookupCommand(GetRepo(), index, strings.Join(args, " ")).Execute(context.Background())
		if err != nil {
			return err
		}
		log.Debugw("Looked up", "key", result.Key, "from_index", result.FromIndex)
		fmt.Println(formatTranslation(result.Translation))
		return nil
	},
}

var reverseContains bool

var reverseCmd = &cobra.Command{
	Use:   "reverse <translation>",
	Short: "Find the outlines that write a translation",
	Long: `Find every outline that writes a translation, shortest first.

Lookups go through an SQLite index next to the other application data,
rebuilt automatically when the dictionary changes.

With --contains, every translation containing the text is listed instead,
ignoring case.

Examples:
  plovermd-cli reverse hello
  plovermd-cli reverse "{^ing}"
  plovermd-cli reverse --contains ing`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := openIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		if reverseContains {
			return searchIndex(index, args[0])
		}

		result, err := commands.NewReverseLookupCommand(GetRepo(), index, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		if result.Rebuilt {
			log.Infow("Rebuilt reverse lookup index", "path", index.Path())
		}

		if len(result.Entries) == 0 {
			return fmt.Errorf("no outline writes %q", args[0])
		}
		for _, e := range result.Entries {
			fmt.Println(e.Key)
		}
		return nil
	},
}

func searchIndex(index *sqlite.Index, query string) error {
	if _, err := commands.RefreshIndex(GetRepo(), index); err != nil {
		return err
	}

	entries, err := index.Search(query, 0)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Key, formatTranslation(e.Translation))
	}
	return w.Flush()
}

func init() {
	reverseCmd.Flags().BoolVarP(&reverseContains, "contains", "c", false, "list translations containing the text")
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(reverseCmd)
}
