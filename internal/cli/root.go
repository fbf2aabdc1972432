package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/internal/buildinfo"
	"github.com/katalvlaran/lvmaze/internal/config"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	verbose    bool
	configPath string
}

// loadConfig returns the config file named by --config, or the defaults.
func (f *rootFlags) loadConfig() (config.File, error) {
	if f.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(f.configPath)
}

// NewRootCommand builds the command tree. Logs go to logw.
func NewRootCommand(logw io.Writer) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:          "lvmaze",
		Short:        "lvmaze generates and analyses mazes",
		Long:         `lvmaze carves mazes into rectangular, masked and polar grids with a choice of algorithms, then measures distances, dead ends and the longest path.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if flags.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.String() + "\n")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newGenerateCmd(flags))
	root.AddCommand(newBenchCmd(flags))
	root.AddCommand(newAlgorithmsCmd())

	return root
}

// Execute runs the lvmaze CLI with logs on stderr.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
