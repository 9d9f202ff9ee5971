// Command wordfreq prints the most frequent words in text files.
//
//	wordfreq [--config wordfreq.toml] [--top N] [--min-length N] [--lowercase] [path...]
//
// With no paths it reads stdin. Directories are searched recursively for files
// with the configured extensions.
package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JVitoroliv3ira/go-data-structures/internal/wordfreq"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		top        uint64
		minLength  uint64
		lowercase  bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:          "wordfreq [path...]",
		Short:        "Print the most frequent words in text files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			fs := afero.NewOsFs()
			cfg, err := wordfreq.LoadConfig(fs, configPath)
			if err != nil {
				return err
			}
			// flags override the file and the environment only when given
			flags := cmd.Flags()
			if flags.Changed("top") {
				cfg.Top = top
			}
			if flags.Changed("min-length") {
				cfg.MinLength = minLength
			}
			if flags.Changed("lowercase") {
				cfg.Lowercase = lowercase
			}
			log.Debug("loaded config", zap.Any("config", cfg))

			return wordfreq.Run(fs, cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	defaults := wordfreq.DefaultConfig()
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().Uint64VarP(&top, "top", "n", defaults.Top, "number of words to print")
	cmd.Flags().Uint64Var(&minLength, "min-length", defaults.MinLength, "ignore words shorter than this many characters")
	cmd.Flags().BoolVar(&lowercase, "lowercase", defaults.Lowercase, "fold words to lower case before counting")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
