package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the fdr2csv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fdr2csv",
		Short: "fdr2csv - flight data recorder stream converter",
		Long: `fdr2csv converts captured flight data recorder streams into
delimited text (and optionally SQLite) for spreadsheet and
data-analysis tools. The stream's interface version must match the
converter's compiled-in schema exactly.`,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))
	cmd.AddCommand(NewSizeCommand(opts))

	return cmd
}
