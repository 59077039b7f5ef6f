// Package stubgen runs the load, extract, generate and write stages that turn
// a rustdoc JSON dump into a Ruby stub file.
package stubgen

import (
	"fmt"
	"io"

	"github.com/example/rbstub-gen/internal/config"
	"github.com/example/rbstub-gen/internal/generator"
	"github.com/example/rbstub-gen/internal/logger"
	"github.com/example/rbstub-gen/internal/rustdoc"
	"github.com/spf13/afero"
)

// Pipeline runs one generation pass.
type Pipeline struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	log    logger.Logger
}

// New creates a pipeline. Progress lines go to stdout, except when the
// generated file itself is written there, in which case they go to stderr.
func New(fs afero.Fs, stdout, stderr io.Writer, log logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{fs: fs, stdout: stdout, stderr: stderr, log: log}
}

// Result summarizes a successful run.
type Result struct {
	Items     int
	Functions int
	Bytes     int
}

// Run executes every stage for cfg. The first failing stage aborts the run;
// the output is only touched once generation has succeeded.
func (p *Pipeline) Run(cfg config.Config) (*Result, error) {
	progress := p.stdout
	if cfg.ToStdout() {
		progress = p.stderr
	}

	fmt.Fprintln(progress, "Loading...")
	doc, err := rustdoc.Load(p.fs, cfg.InputPath)
	if err != nil {
		return nil, err
	}
	p.log.Debug("loaded rustdoc", "path", cfg.InputPath, "format_version", doc.FormatVersion())

	fmt.Fprintln(progress, "Extracting...")
	fns, err := rustdoc.Extract(doc, rustdoc.Options{
		LocalOnly:  cfg.LocalOnly,
		PublicOnly: cfg.PublicOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract functions from %s: %w", cfg.InputPath, err)
	}
	items, err := doc.Len()
	if err != nil {
		return nil, err
	}
	p.log.Info("extracted functions", "items", items, "functions", len(fns), "skipped", items-len(fns))

	fmt.Fprintln(progress, "Generating...")
	gen := generator.NewStubGenerator(cfg.Module)
	if cfg.Header != "" {
		gen.WithHeader(cfg.Header)
	}
	content, err := gen.Generate(fns)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(progress, "Writing...")
	if cfg.ToStdout() {
		if _, err := p.stdout.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write to stdout: %w", err)
		}
	} else if err := generator.WriteFile(p.fs, cfg.OutputPath, content, cfg.Atomic); err != nil {
		return nil, err
	}
	p.log.Debug("wrote stubs", "path", cfg.OutputPath, "bytes", len(content), "atomic", cfg.Atomic)
	fmt.Fprintln(progress, "Done!")

	return &Result{Items: items, Functions: len(fns), Bytes: len(content)}, nil
}
