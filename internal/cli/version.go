package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/fdr2csv/internal/convert"
	"github.com/roach88/fdr2csv/internal/schema"
)

// VersionOptions holds flags for the version command.
type VersionOptions struct {
	*RootOptions
	NoCompression bool
}

// NewVersionCommand creates the version command. It reads only the
// interface version tag from a stream, without converting anything.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VersionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "version <file>",
		Short: "Print the interface version of a recorder stream",
		Long: `Print the interface version tag a recorder stream was written with,
alongside the version this converter was compiled with.

Example:
  fdr2csv version flight.fdr`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.NoCompression, "no-compression", "n", false, "input file is not compressed")

	return cmd
}

func runVersion(opts *VersionOptions, path string, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	in, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open input file", err)
	}
	defer in.Close()

	stream, err := convert.OpenStream(in, !opts.NoCompression)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read input stream", err)
	}

	version, err := convert.PeekVersion(stream)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read interface version", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Interface version is %d (converter expects %d)\n",
		version, schema.InterfaceVersion)
	return nil
}
