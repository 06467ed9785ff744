package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jonwraymond/gensecrets/observe"
	"github.com/jonwraymond/gensecrets/report"
	"github.com/jonwraymond/gensecrets/secret"
)

const shutdownTimeout = 5 * time.Second

func run(cmd *cobra.Command, flags *rootFlags, genOpts []secret.Option) (err error) {
	ctx := cmd.Context()

	obs, err := observe.NewObserver(ctx, observe.Config{
		ServiceName: CliName,
		Version:     Version,
		Writer:      cmd.ErrOrStderr(),
		Tracing: observe.TracingConfig{
			Enabled:   flags.traceExporter != "none",
			Exporter:  flags.traceExporter,
			SamplePct: flags.traceSample,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  flags.metricsExporter != "none",
			Exporter: flags.metricsExporter,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   flags.logLevel,
		},
	})
	if err != nil {
		return err
	}
	logger := obs.Logger()
	defer func() {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if serr := obs.Shutdown(sctx); serr != nil {
			logger.Warn(ctx, "telemetry shutdown failed", observe.Field{Key: "error", Value: serr.Error()})
		}
	}()

	ctx, span := obs.Tracer().Start(ctx, CliName+".run")
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		return err
	}

	gen := secret.NewGenerator(genOpts...)
	generate := mw.Wrap(func(_ context.Context, meta observe.SecretMeta) (string, error) {
		return gen.Generate(meta.Length)
	})

	catalog := secret.DefaultCatalog()
	span.SetAttributes(attribute.StringSlice("secret.names", catalog.Names()))

	generated, err := secret.GenerateAll(ctx, catalog, func(ctx context.Context, def secret.Definition) (string, error) {
		return generate(ctx, observe.SecretMeta{Name: def.Name, Length: def.Length})
	})
	if err != nil {
		logger.Error(ctx, "secret generation aborted", observe.Field{Key: "error", Value: err.Error()})
		return err
	}

	out := cmd.OutOrStdout()
	r := report.New(out, report.WithColor(!flags.noColor && colorEnabled(out)))
	if err = r.Report(toEntries(generated)); err != nil {
		return err
	}

	logger.Debug(ctx, "report written", observe.Field{Key: "count", Value: len(generated)})
	return nil
}

func toEntries(generated []secret.Generated) []report.Entry {
	entries := make([]report.Entry, 0, len(generated))
	for _, g := range generated {
		entries = append(entries, report.Entry{
			Name:        g.Name,
			Value:       g.Value,
			Description: g.Description,
		})
	}
	return entries
}
