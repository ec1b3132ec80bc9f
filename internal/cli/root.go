// Package cli implements the distinct command.
package cli

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mibar/distinct/internal/input"
	"github.com/mibar/distinct/internal/values"
)

type options struct {
	configPath string

	kind   string
	input  string
	format string
	pretty bool
	count  bool

	require   bool
	trim      bool
	skipBlank bool
	nfc       bool
	xz        bool

	quiet   bool
	verbose bool
}

func defaultOptions() *options {
	return &options{
		kind:      string(values.KindString),
		input:     string(input.FormatLines),
		format:    string(FormatText),
		trim:      true,
		skipBlank: true,
	}
}

// NewRootCommand builds the distinct command wired to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "distinct [flags] [file ...]",
		Short: "Print the distinct values of the input in ascending order",
		Long: `Reads values from the named files (or stdin when none are given, or for "-"),
drops duplicates and prints the remaining values sorted in their natural order:
numeric for --type int and float, lexicographic for strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			file, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			initLogging(stderr, opts.quiet, opts.verbose)
			if file != "" {
				log.WithField("file", file).Debug("Applied configuration file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, stdin, stdout)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "Path to TOML configuration file (default: ~/.distinct.toml or ~/.config/distinct.toml)")
	f.StringVarP(&opts.kind, "type", "t", opts.kind, `Value type: "string", "int" or "float"`)
	f.StringVarP(&opts.input, "input", "i", opts.input, `Input format: "lines" or "json" (array of scalars)`)
	f.StringVarP(&opts.format, "format", "f", opts.format, `Output format: "text", "json", "yaml" or "toon"`)
	f.BoolVarP(&opts.pretty, "pretty", "p", false, "Indent JSON output")
	f.BoolVarP(&opts.count, "count", "c", false, "Print only the number of distinct values")
	f.BoolVarP(&opts.require, "require", "r", false, "Fail when the input holds no values")
	f.BoolVar(&opts.trim, "trim", opts.trim, "Trim surrounding whitespace from each line")
	f.BoolVar(&opts.skipBlank, "skip-blank", opts.skipBlank, "Ignore blank lines")
	f.BoolVar(&opts.nfc, "nfc", false, "Apply Unicode NFC normalization to values before comparing")
	f.BoolVarP(&opts.xz, "xz", "x", false, "Activate XZ decompression when reading input (including STDIN)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "Activate quiet log output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Activate verbose log output")

	return cmd
}

func run(ctx context.Context, opts *options, args []string, stdin io.Reader, stdout io.Writer) error {
	kind, err := values.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	inFormat, err := input.ParseFormat(opts.input)
	if err != nil {
		return err
	}
	formatter, err := NewFormatter(opts.format, opts.pretty)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{input.StdinName}
	}
	tokens, err := input.Read(ctx, input.Files(args, stdin), input.Options{
		Format:    inFormat,
		Trim:      opts.trim,
		SkipBlank: opts.skipBlank,
		NFC:       opts.nfc,
		XZ:        opts.xz,
	})
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	vals, err := values.Normalize(kind, tokens, opts.require)
	if err != nil {
		return fmt.Errorf("normalizing input: %w", err)
	}
	log.WithField("sources", len(args)).
		WithField("read", len(tokens)).
		WithField("distinct", len(vals)).
		Debug("Normalized input")

	if opts.count {
		_, err = fmt.Fprintln(stdout, len(vals))
		return err
	}
	return formatter.FormatValues(stdout, kind, vals)
}
