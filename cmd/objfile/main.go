// Command objfile reads and writes objects in object storage using buffered object files.
//
// Usage:
//
//	objfile [-config path] [-env-file path] <command> [flags] <url> [args]
//
// Commands:
//
//	cat       write the contents of an object to stdout
//	head      write the first lines of an object to stdout
//	put       store stdin (or a local file) as an object
//	truncate  change the size of an object
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchbase/tools-objfile/core/log"
	"github.com/couchbase/tools-objfile/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line given by args, returning the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("objfile", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		configPath = flags.String("config", "", "path to a YAML config file, defaults to $OBJFILE_CONFIG")
		envFile    = flags.String("env-file", ".env", "path to a .env file loaded before the config")
	)

	flags.Usage = func() { usage(flags) }

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	cmd, ok := commands[flags.Arg(0)]
	if !ok {
		fmt.Fprintf(stderr, "unknown command '%s'\n", flags.Arg(0))
		flags.Usage()

		return 2
	}

	if err := config.LoadDotEnv(*envFile); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	// Already validated by 'config.Load'
	level, _ := log.ParseLevel(cfg.LogLevel)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	registry := prometheus.NewRegistry()

	client, err := newClient(ctx, cfg, registry, logger)
	if err != nil {
		logger.Error("Failed to create client", "err", err)
		return 1
	}

	defer client.Close()

	env := &environment{
		ctx:    ctx,
		client: client,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}

	err = cmd.run(env, flags.Args()[1:])

	if cfg.Metrics {
		logMetrics(logger, registry)
	}

	if errors.Is(err, flag.ErrHelp) {
		return 2
	}

	if err != nil {
		logger.Error("Command failed", "command", cmd.name, "err", err)
		return 1
	}

	return 0
}

func usage(flags *flag.FlagSet) {
	fmt.Fprintf(flags.Output(), "Usage: objfile [flags] <command> [command flags] <url> [args]\n\nCommands:\n")

	for _, name := range commandNames() {
		fmt.Fprintf(flags.Output(), "  %-10s %s\n", name, commands[name].summary)
	}

	fmt.Fprintf(flags.Output(), "\nFlags:\n")
	flags.PrintDefaults()
}

// logMetrics logs the value of every client metric gathered by the given registry.
func logMetrics(logger *slog.Logger, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		logger.Warn("Failed to gather metrics", "err", err)
		return
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			attrs := []any{"metric", family.GetName()}

			for _, label := range metric.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}

			switch {
			case metric.GetCounter() != nil:
				attrs = append(attrs, "value", metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				attrs = append(attrs,
					"count", metric.GetHistogram().GetSampleCount(),
					"sum", metric.GetHistogram().GetSampleSum(),
				)
			}

			logger.Info("(Objfile) Metric", attrs...)
		}
	}
}
