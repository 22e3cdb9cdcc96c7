package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/encodeous/kaleido/core"
	"github.com/encodeous/kaleido/state"
	"github.com/spf13/cobra"
)

var (
	topologyPath = state.DefaultTopologyPath
	verbose      bool
	logPath      string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kaleido",
	Short: "Trust graph advertisement simulator",
	Long: `kaleido simulates how identity advertisements flood a trust graph of censored, uncensored and adversarial nodes.
Uncensored nodes advertise themselves, every node relays what it hears, and adversaries block every node they learn about.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "topo",
		Title: "Topology Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sim",
		Title: "Simulation Commands",
	})
	rootCmd.PersistentFlags().StringVarP(&topologyPath, "topology", "t", topologyPath, "topology config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output, includes every flood event")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "also append logs to this file")
}

func newLogger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return core.NewLogger(core.LogOptions{
		Level:   level,
		Prefix:  cmd.Name(),
		LogPath: logPath,
		Console: cmd.ErrOrStderr(),
	})
}

// closeLogger releases the log file, reporting a failure unless the command already failed.
func closeLogger(closer func() error, err *error) {
	if cerr := closer(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close log: %w", cerr)
	}
}
