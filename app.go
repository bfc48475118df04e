package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stefanyuk/racing-report/pkg/abbreviations"
	"github.com/stefanyuk/racing-report/pkg/config"
	"github.com/stefanyuk/racing-report/pkg/data"
	"github.com/stefanyuk/racing-report/pkg/files"
	"github.com/stefanyuk/racing-report/pkg/laptimes"
	"github.com/stefanyuk/racing-report/pkg/report"
)

const appName = "racing-report"

// Args holds the command line. Flags left unset take their value from the config.
type Args struct {
	Files    string
	Asc      string
	Desc     string
	Driver   string
	NoColor  bool
	LogLevel string
	EnvFile  string

	set map[string]bool
}

func parseArgs(argv []string, output io.Writer) (*Args, error) {
	a := &Args{}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&a.Files, "files", "", "path to the folder where info files are located")
	fs.StringVar(&a.Asc, "asc", "asc", "ascending order")
	fs.StringVar(&a.Desc, "desc", "", "descending order, wins over --asc")
	fs.StringVar(&a.Driver, "driver", "", "name of the driver statistics of which you want to obtain")
	fs.BoolVar(&a.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&a.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&a.EnvFile, "env-file", "", "file to read environment variables from, none by default")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	a.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		a.set[f.Name] = true
	})
	return a, nil
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
	fmt.Fprintln(out, "\nEnvironment variables, overridden by the flags above:")
	for _, v := range config.Variables {
		fmt.Fprintf(out, "  %s\n    \t%s (default %q)\n", v.Name, v.Usage, v.Default)
	}
}

// applyConfig fills the flags that were not given on the command line.
func (a *Args) applyConfig(cfg *config.Config) {
	if !a.set["files"] {
		a.Files = cfg.Files
	}
	if !a.set["asc"] {
		a.Asc = cfg.Order
	}
	if !a.set["no-color"] {
		a.NoColor = !cfg.Color
	}
	if !a.set["log-level"] {
		a.LogLevel = cfg.Logging.Level
	}
}

// Order applies the precedence rule: a --desc value replaces the --asc one.
func (a *Args) Order() report.Order {
	if a.Desc != "" {
		return report.ParseOrder(a.Desc)
	}
	return report.ParseOrder(a.Asc)
}

type opener func(name string) (io.ReadCloser, error)

type App struct {
	logger   *logrus.Logger
	renderer *report.Renderer
}

func NewApp(logger *logrus.Logger, renderer *report.Renderer) *App {
	return &App{
		logger:   logger,
		renderer: renderer,
	}
}

// Run builds and renders the report described by args.
func (app *App) Run(args *Args) error {
	open, err := app.source(args.Files)
	if err != nil {
		return err
	}

	drivers, err := load(app.logger, open, data.Abbreviations, abbreviations.Parse)
	if err != nil {
		return err
	}
	start, err := load(app.logger, open, data.StartLog, laptimes.Parse)
	if err != nil {
		return err
	}
	end, err := load(app.logger, open, data.EndLog, laptimes.Parse)
	if err != nil {
		return err
	}

	opts := report.Options{Order: args.Order(), Driver: args.Driver}
	entries, err := report.Build(start, end, drivers, opts)
	if err != nil {
		return err
	}

	app.logger.WithFields(logrus.Fields{
		"entries": len(entries),
		"order":   opts.Order,
		"driver":  opts.Driver,
	}).Debug("report built")

	return app.renderer.Render(entries)
}

// source opens files from dir, or from the bundled sample race when dir is empty.
func (app *App) source(dir string) (opener, error) {
	if dir == "" {
		app.logger.Debug("no directory given, using the sample race")
		return func(name string) (io.ReadCloser, error) {
			return data.Open(name)
		}, nil
	}

	paths, err := files.Check(dir, data.Names...)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]string, len(paths))
	for i, name := range data.Names {
		byName[name] = paths[i]
	}
	return func(name string) (io.ReadCloser, error) {
		return os.Open(byName[name])
	}, nil
}

func load[T any](logger *logrus.Logger, open opener, name string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := open(name)
	if err != nil {
		return zero, errors.Wrapf(err, "open %s", name)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, errors.Wrapf(err, "read %s", name)
	}

	logger.WithField("file", name).Debug("loaded")
	return v, nil
}
