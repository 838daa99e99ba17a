package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"binding-generator/internal/diagnostic"
	"binding-generator/internal/gen"
	"binding-generator/internal/plan"
	"binding-generator/internal/schema"
)

// runner executes the pipeline for one configuration.
type runner struct {
	cfg    *Config
	logger zerolog.Logger
}

// generate runs load, validate, plan, generate and write.
func (r *runner) generate() ([]gen.GeneratedFile, error) {
	doc, err := schema.LoadFile(r.cfg.Schema)
	if err != nil {
		return nil, err
	}

	p, err := plan.Build(doc)
	if p != nil {
		logDiagnostics(r.logger, &p.Diagnostics)
	}

	if err != nil {
		return nil, fmt.Errorf("building plan: %w", err)
	}

	genCfg := r.cfg.Generator()

	files, err := gen.NewGenerator(genCfg).Generate(p)
	if err != nil {
		return nil, err
	}

	if err := gen.WriteFiles(files, genCfg.OutputDir); err != nil {
		return nil, err
	}

	if r.cfg.Clean {
		removed, err := gen.RemoveStale(files, genCfg.OutputDir)
		if err != nil {
			return nil, err
		}

		for _, name := range removed {
			r.logger.Info().Str("file", name).Msg("removed stale file")
		}
	}

	r.logger.Info().
		Str("schema", r.cfg.Schema).
		Str("output", genCfg.OutputDir).
		Int("objects", len(p.Objects)).
		Int("callables", len(p.Callables)).
		Int("files", len(files)).
		Msg("bindings generated")

	return files, nil
}

// errInvalid is returned by check after the diagnostics were logged.
var errInvalid = errors.New("schema has errors")

// check loads and validates the schema without generating anything.
func (r *runner) check() error {
	doc, err := schema.LoadFile(r.cfg.Schema)
	if err != nil {
		return err
	}

	diags := schema.Validate(doc)
	logDiagnostics(r.logger, diags)

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", errInvalid, len(diags.Errors))
	}

	r.logger.Info().
		Str("schema", r.cfg.Schema).
		Int("warnings", len(diags.Warnings)).
		Msg("schema is valid")

	return nil
}

func logDiagnostics(logger zerolog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		var ev *zerolog.Event

		switch d.Severity {
		case diagnostic.DiagnosticError:
			ev = logger.Error()
		case diagnostic.DiagnosticWarning:
			ev = logger.Warn()
		default:
			ev = logger.Info()
		}

		ev = ev.Str("code", d.Code)

		if d.Owner != "" {
			ev = ev.Str("owner", d.Owner)
		}

		if d.FieldPath != "" {
			ev = ev.Str("field", d.FieldPath)
		}

		if len(d.Suggestions) > 0 {
			ev = ev.Strs("suggestions", d.Suggestions)
		}

		ev.Msg(d.Message)
	}
}
