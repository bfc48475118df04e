package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/stefanyuk/racing-report/pkg/abbreviations"
	"github.com/stefanyuk/racing-report/pkg/config"
	"github.com/stefanyuk/racing-report/pkg/laptimes"
	"github.com/stefanyuk/racing-report/pkg/logs"
	"github.com/stefanyuk/racing-report/pkg/report"
)

const (
	exitOK = iota
	exitConfig
	exitData
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	args, err := parseArgs(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitConfig
	}

	cfg, err := config.Load(args.EnvFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	args.applyConfig(cfg)

	logger, err := logs.NewLogger(config.LoggingConfig{Level: args.LogLevel, Format: cfg.Logging.Format}, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	colors := report.WithColors(!args.NoColor)
	app := NewApp(logger, report.NewRenderer(stdout, colors))

	if err := app.Run(args); err != nil {
		logger.WithError(err).Debug("could not build the report")
		if err := report.NewRenderer(stderr, colors).Error(err); err != nil {
			logger.WithError(err).Error("could not print the error")
		}
		return exitCode(err)
	}

	return exitOK
}

// exitCode tells bad race data apart from a bad setup.
func exitCode(err error) int {
	var (
		formatErr    *laptimes.FormatError
		malformedErr *abbreviations.MalformedRecordError
		missingErr   *report.MissingRecordError
	)

	switch {
	case errors.As(err, &formatErr), errors.As(err, &malformedErr), errors.As(err, &missingErr):
		return exitData
	default:
		return exitConfig
	}
}
