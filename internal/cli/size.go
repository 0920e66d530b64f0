package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/fdr2csv/internal/schema"
)

// NewSizeCommand creates the size command. It prints the byte-size
// summary of the compiled-in record layout, per top-level group and in
// total - useful when checking a recorder build against the converter.
func NewSizeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the compiled-in record layout sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSize(cmd)
		},
	}
	return cmd
}

func runSize(cmd *cobra.Command) error {
	rec := schema.A32NX()
	out := cmd.OutOrStdout()

	for _, f := range rec.Fields() {
		fmt.Fprintf(out, "%-20s %6d bytes\n", f.Name, schema.FieldSize(f))
	}
	fmt.Fprintf(out, "%-20s %6d bytes (%d columns, interface version %d)\n",
		"total", rec.ByteSize(), len(rec.Columns()), schema.InterfaceVersion)
	return nil
}
