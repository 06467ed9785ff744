// Package cli wires the gensecrets command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jonwraymond/gensecrets/secret"
)

// CliName is the binary name.
const CliName = "gensecrets"

type rootFlags struct {
	noColor         bool
	logLevel        string
	traceExporter   string
	traceSample     float64
	metricsExporter string
}

// NewRootCmd builds the root command. Generator options are passed through
// to the secret generator.
func NewRootCmd(genOpts ...secret.Option) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   CliName,
		Short: "Generate deployment secrets",
		Long: "gensecrets generates JWT_SECRET, WEBHOOK_SECRET and SECRETS_ENCRYPTION_KEY\n" +
			"from a cryptographically secure source and prints them with deployment\n" +
			"instructions and a .env block.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, genOpts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.noColor, "no-color", false, "disable coloured output")
	f.StringVar(&flags.logLevel, "log-level", "warn", "diagnostic log level on stderr (debug|info|warn|error)")
	f.StringVar(&flags.traceExporter, "trace-exporter", "none", "trace exporter (none|stdout|otlp)")
	f.Float64Var(&flags.traceSample, "trace-sample", 1.0, "fraction of runs to trace, 0.0 to 1.0")
	f.StringVar(&flags.metricsExporter, "metrics-exporter", "none", "metrics exporter (none|stdout|otlp)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", CliName, err)
		os.Exit(1)
	}
}

// colorEnabled reports whether w is a terminal and NO_COLOR is unset.
func colorEnabled(w io.Writer) bool {
	return colorAllowed(w, term.IsTerminal)
}

func colorAllowed(w io.Writer, isTerminal func(fd int) bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}
