package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/blackcheck/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Check the given files and directories (default: the root directory)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), args, runOptions(cmd))
		},
	}
	addRunFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Check files, then re-check them whenever they change",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args, runOptions(cmd))
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("black", false, "enable format checking with black")
	cmd.Flags().BoolP("no-cache", "n", false, "Check every file, ignoring and not updating the recheck cache")
	cmd.Flags().Bool("cache-clear", false, "Remove the cache directory before checking")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, verbose, or dots")
	cmd.Flags().Bool("ci", false, "Use verbose output mode (shorthand for --output-mode=verbose)")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	black, _ := cmd.Flags().GetBool("black")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	cacheClear, _ := cmd.Flags().GetBool("cache-clear")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	ci, _ := cmd.Flags().GetBool("ci")

	// If --ci is set, override output-mode to "verbose"
	if ci {
		outputMode = "verbose"
	}

	return app.RunOptions{
		Black:      black,
		NoCache:    noCache,
		CacheClear: cacheClear,
		OutputMode: outputMode,
	}
}
