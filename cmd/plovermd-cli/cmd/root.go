package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plovermd/internal/adapters/filesystem"
	"plovermd/internal/adapters/sqlite"
	"plovermd/internal/config"
	"plovermd/internal/logger"
	"plovermd/internal/ports"
)

var (
	dictionaryPath string
	indexDir       string
	logLevel       string

	cfg  *config.Config
	log  *zap.SugaredLogger
	repo ports.DictionaryRepository
)

var rootCmd = &cobra.Command{
	Use:   "plovermd-cli",
	Short: "CLI for Plover markdown dictionaries",
	Long: `plovermd-cli reads and edits steno dictionaries written as markdown,
the format of the Plover markdown dictionary plugin.

Translations live in fenced code blocks of a normal markdown document.
Edits are written back in place: changed lines are marked (UPDATED),
removed ones (DELETED), and new outlines go to the last
"Added by Plover" section. Everything else in the file is left alone.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		log = logger.FromEnv(level)

		path := cfg.Dictionary
		if dictionaryPath != "" {
			path = dictionaryPath
		}
		repo = filesystem.NewRepository(path, log)
		log.Debugw("Using dictionary", "path", repo.Path())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dictionaryPath, "dictionary", "d", "", "path to the markdown dictionary (default from config, then "+config.DefaultDictionaryPath+")")
	rootCmd.PersistentFlags().StringVar(&indexDir, "index-dir", "", "directory for the reverse lookup index")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "DEVELOPMENT for debug logs, QUIET for errors only")
}

// GetRepo returns the initialized repository
func GetRepo() ports.DictionaryRepository {
	return repo
}

// openIndex opens the reverse lookup index for the dictionary.
// The caller closes it.
func openIndex() (*sqlite.Index, error) {
	dir := cfg.IndexDir
	if indexDir != "" {
		dir = indexDir
	}

	index := sqlite.NewIndex(dir, log)
	if err := index.Open(repo.Path()); err != nil {
		return nil, err
	}
	return index, nil
}

// formatTranslation quotes translations whose newlines or edge blanks
// would be invisible in terminal output
func formatTranslation(t string) string {
	if strings.ContainsAny(t, "\n\t") || strings.TrimSpace(t) != t || t == "" {
		return strconv.Quote(t)
	}
	return t
}
