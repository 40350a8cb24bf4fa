package collaborator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"lugisami/internal/config"
	"lugisami/internal/errors"
	"lugisami/internal/workflow"

	"github.com/gobwas/glob"
)

// InputGenerator runs the ISAMI input writer for one source document
type InputGenerator struct {
	runner *Runner
	input  string
	output config.Command
	batch  config.Command
}

// NewInputGenerator prepares the writer commands for input
func NewInputGenerator(cfg *config.Config, runner *Runner, input string) (*InputGenerator, error) {
	if input == "" {
		return nil, errors.NewCollaboratorError("source document is required", workflow.CreateInput.String(), "", errors.CollaboratorFailed, nil)
	}
	return &InputGenerator{
		runner: runner,
		input:  input,
		output: cfg.Collaborators.CreateInput.Output,
		batch:  cfg.Collaborators.CreateInput.Batch,
	}, nil
}

// WriteOutput produces the ISAMI input file
func (g *InputGenerator) WriteOutput(ctx context.Context, folder, name string) error {
	return g.run(ctx, g.output, folder, name)
}

// WriteBatch produces the batch file
func (g *InputGenerator) WriteBatch(ctx context.Context, folder, name string) error {
	return g.run(ctx, g.batch, folder, name)
}

func (g *InputGenerator) run(ctx context.Context, c config.Command, folder, name string) error {
	return g.runner.Run(ctx, Invocation{
		Workflow: workflow.CreateInput.String(),
		Command:  c.Command,
		Args:     Expand(c.Args, g.input, folder, name),
	})
}

// ReportReader runs the reader matching the report's file name
type ReportReader struct {
	runner *Runner
	input  string
	reader config.Reader
}

// NewReportReader picks the first configured reader whose pattern matches
// the lower-cased base name of input.
func NewReportReader(cfg *config.Config, runner *Runner, input string) (*ReportReader, error) {
	base := strings.ToLower(filepath.Base(input))
	for _, r := range cfg.Collaborators.ReadReport.Readers {
		g, err := glob.Compile(strings.ToLower(r.Pattern))
		if err != nil {
			return nil, errors.NewConfigError("invalid pattern", r.Pattern, errors.InvalidConfig, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err))
		}
		if g.Match(base) {
			return &ReportReader{runner: runner, input: input, reader: r}, nil
		}
	}
	return nil, errors.NewCollaboratorError("no reader matches "+base, workflow.ReadReport.String(), "", errors.UnsupportedFormat, errors.ErrUnsupportedFormat)
}

// Pattern returns the glob of the selected reader
func (r *ReportReader) Pattern() string {
	return r.reader.Pattern
}

// WriteOutput extracts Kt into folder/name
func (r *ReportReader) WriteOutput(ctx context.Context, folder, name string) error {
	return r.runner.Run(ctx, Invocation{
		Workflow: workflow.ReadReport.String(),
		Command:  r.reader.Command,
		Args:     Expand(r.reader.Args, r.input, folder, name),
	})
}

// Factories wires the configured tools into the dispatcher
func Factories(cfg *config.Config, runner *Runner) workflow.Collaborators {
	if runner == nil {
		runner = &Runner{}
	}
	return workflow.Collaborators{
		NewInputGenerator: func(input string) (workflow.InputGenerator, error) {
			return NewInputGenerator(cfg, runner, input)
		},
		NewReportReader: func(input string) (workflow.ReportReader, error) {
			return NewReportReader(cfg, runner, input)
		},
	}
}
