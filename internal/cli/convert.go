package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/fdr2csv/internal/convert"
	"github.com/roach88/fdr2csv/internal/decode"
	"github.com/roach88/fdr2csv/internal/schema"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Input         string
	Output        string
	Delimiter     string
	NoCompression bool
	SQLite        string
	ConfigPath    string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a recorder stream to delimited text",
		Long: `Convert a captured flight data recorder stream into delimited text.

The input's interface version must equal the converter's compiled-in
version or the run aborts before any record is processed. The output
file is created fresh only once the version check has passed, so a
rejected stream leaves any earlier output untouched. With --sqlite the
same rows are additionally loaded into a SQLite database, keyed by a
fresh run id.

Example:
  fdr2csv convert -i flight.fdr -o flight.csv
  fdr2csv convert -i flight.fdr -o flight.csv -d ';' --sqlite flights.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVarP(&opts.Delimiter, "delimiter", "d", ",", "output field delimiter")
	cmd.Flags().BoolVarP(&opts.NoCompression, "no-compression", "n", false, "input file is not compressed")
	cmd.Flags().StringVar(&opts.SQLite, "sqlite", "", "also load rows into this SQLite database")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to YAML defaults file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runConvert(opts *ConvertOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)

	if err := applyConfig(opts, cmd); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	delimiter, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid delimiter", err)
	}

	// Acquire input and output once; both are released on every exit path.
	in, err := os.Open(opts.Input)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open input file", err)
	}
	defer in.Close()

	stream, err := convert.OpenStream(in, !opts.NoCompression)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read input stream", err)
	}

	// The output file is created by the sink once the version check has
	// passed, so a rejected stream never clobbers an earlier result.
	sink := convert.MultiSink{convert.NewFileCSVSink(opts.Output, delimiter)}
	if opts.SQLite != "" {
		dbSink, err := convert.NewSQLiteSink(opts.SQLite, schema.InterfaceVersion)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open sqlite database", err)
		}
		slog.Info("sqlite sink enabled", "path", opts.SQLite, "run_id", dbSink.RunID())
		sink = append(sink, dbSink)
	}

	slog.Info("converting",
		"input", opts.Input,
		"output", opts.Output,
		"interface_version", schema.InterfaceVersion,
		"delimiter", string(delimiter),
	)

	driver := convert.NewDriver(schema.A32NX(), schema.InterfaceVersion)
	result, runErr := driver.Run(stream, sink)
	if closeErr := sink.Close(); runErr == nil && closeErr != nil {
		runErr = fmt.Errorf("close output: %w", closeErr)
	}
	if runErr != nil {
		return convertError(runErr)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d entries\n", result.Records)
	return nil
}

// convertError maps driver failures onto exit-coded errors with one
// descriptive message per failure kind.
func convertError(err error) error {
	switch {
	case schema.IsDeclarationError(err):
		return WrapExitError(ExitFailure, "failed to generate header", err)
	case decode.IsVersionMismatch(err):
		return WrapExitError(ExitFailure, "interface version mismatch", err)
	case decode.IsTruncated(err):
		return WrapExitError(ExitFailure, "input stream is truncated", err)
	default:
		return WrapExitError(ExitFailure, "conversion failed", err)
	}
}

// applyConfig merges YAML file defaults into opts. Only flags the user
// did not set explicitly are overridden.
func applyConfig(opts *ConvertOptions, cmd *cobra.Command) error {
	if opts.ConfigPath == "" {
		return nil
	}
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Delimiter != "" && !cmd.Flags().Changed("delimiter") {
		opts.Delimiter = cfg.Delimiter
	}
	if cfg.NoCompression && !cmd.Flags().Changed("no-compression") {
		opts.NoCompression = true
	}
	return nil
}

// setupLogging configures the process-wide slog handler from the
// verbose flag.
func setupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if !verbose {
		logLevel = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
