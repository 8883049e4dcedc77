package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/blackcheck/internal/build"
)

// versionLine renders the version banner for the program called name.
func versionLine(name string) string {
	return fmt.Sprintf("%s version %s (commit: %s, date: %s)\n", name, build.Version, build.Commit, build.Date)
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), versionLine(cmd.Root().Name()))
			return err
		},
	}
}
