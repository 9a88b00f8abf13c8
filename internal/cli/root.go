package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/five82/hiremap/internal/app"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

var (
	configPath string
	prefsPath  string
	sourceFlag string
	startTab   string
	watch      bool
	verbose    bool
)

// errReported marks an error the command already printed.
var errReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "hiremap",
	Short: "Browse a hiring map document in the terminal",
	Long: `hiremap shows companies, job postings, promises and vouches from a
consolidated hiring document as searchable cards.

Without a subcommand it starts the interactive interface. The search and
flatten subcommands run the same record pipeline and print to stdout.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
			return
		}
		log.SetOutput(io.Discard)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), appOptions())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.config/hiremap/config.toml)")
	flags.StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/hiremap/prefs.toml)")
	flags.StringVar(&sourceFlag, "source", "", "document path or http(s) URL")
	flags.StringVar(&startTab, "tab", "", "pane shown at startup: overview, signals or hiring")
	flags.BoolVar(&watch, "watch", false, "reload the document when the source file changes")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
}

// Execute runs the command line and returns the process exit status.
func Execute(ctx context.Context) int {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "hiremap: %v\n", err)
		}
		return 1
	}
	return 0
}

func appOptions() app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Source:     sourceFlag,
		StartTab:   startTab,
		Watch:      watch,
	}
}
