// Package main provides the CLI entrypoint for binding-generator.
//
// binding-generator compiles a declarative API schema into typed Go client
// bindings:
//   - gen loads, validates and plans the schema, then writes the bindings
//   - check validates the schema and reports diagnostics
//   - watch regenerates whenever the schema file changes
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "binding-generator",
		Usage: "generate typed Go client bindings from an API schema",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default " + defaultConfigFile + " if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "gen",
				Usage: "generate bindings",
				Flags: genFlags(),
				Action: func(cctx *cli.Context) error {
					r, err := newRunner(cctx)
					if err != nil {
						return err
					}

					_, err = r.generate()

					return err
				},
			},
			{
				Name:  "check",
				Usage: "validate the schema without generating",
				Flags: []cli.Flag{schemaFlag()},
				Action: func(cctx *cli.Context) error {
					r, err := newRunner(cctx)
					if err != nil {
						return err
					}

					return r.check()
				},
			},
			{
				Name:  "watch",
				Usage: "regenerate bindings whenever the schema changes",
				Flags: append(genFlags(), &cli.DurationFlag{
					Name:  "debounce",
					Value: defaultDebounce,
					Usage: "quiet period after a change before regenerating",
				}),
				Action: func(cctx *cli.Context) error {
					r, err := newRunner(cctx)
					if err != nil {
						return err
					}

					ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
					defer stop()

					return watch(ctx, r, cctx.Duration("debounce"))
				},
			},
		},
	}
}

func schemaFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Usage:   "schema document (YAML or JSON)",
	}
}

func genFlags() []cli.Flag {
	return []cli.Flag{
		schemaFlag(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output directory",
		},
		&cli.StringFlag{
			Name:  "package",
			Usage: "package name of the bindings (default: the schema's)",
		},
		&cli.StringFlag{
			Name:  "wire-import",
			Usage: "import path of the wire runtime",
		},
		&cli.BoolFlag{
			Name:  "no-comments",
			Usage: "do not copy schema descriptions into doc comments",
		},
		&cli.BoolFlag{
			Name:  "clean",
			Usage: "remove generated files the schema no longer produces",
		},
	}
}

// newRunner merges the config file with the flags set on the command line.
func newRunner(cctx *cli.Context) (*runner, error) {
	path := cctx.String("config")

	cfg, err := LoadConfig(firstNonEmpty(path, defaultConfigFile), path == "")
	if err != nil {
		return nil, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"schema", &cfg.Schema},
		{"output", &cfg.Output},
		{"package", &cfg.Package},
		{"wire-import", &cfg.WireImport},
		{"log-level", &cfg.LogLevel},
	}

	for _, o := range overrides {
		if cctx.IsSet(o.flag) {
			*o.dst = cctx.String(o.flag)
		}
	}

	if cctx.IsSet("no-comments") {
		comments := !cctx.Bool("no-comments")
		cfg.Comments = &comments
	}

	if cctx.IsSet("clean") {
		cfg.Clean = cctx.Bool("clean")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cctx.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &runner{cfg: cfg, logger: logger}, nil
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel

	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}

		lvl = parsed
	}

	if out == nil {
		out = os.Stderr
	}

	w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: true}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
