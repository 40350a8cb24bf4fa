// Package workflow selects and runs one of the tool's workflows against
// the external domain collaborators.
package workflow

import (
	"context"
	"fmt"

	"lugisami/internal/errors"
	"lugisami/internal/log"
)

// InputGenerator produces an ISAMI input file and its batch file
type InputGenerator interface {
	WriteOutput(ctx context.Context, folder, name string) error
	WriteBatch(ctx context.Context, folder, name string) error
}

// ReportReader extracts Kt from an HTML or CZM report
type ReportReader interface {
	WriteOutput(ctx context.Context, folder, name string) error
}

// Collaborators constructs the domain collaborators from a source document path
type Collaborators struct {
	NewInputGenerator func(inputFile string) (InputGenerator, error)
	NewReportReader   func(inputFile string) (ReportReader, error)
}

// Request carries the validated field values
type Request struct {
	InputFile    string
	OutputFolder string
	OutputName   string
}

// Report messages.
const (
	MsgInputGenerated     = "The ISAMI file has been generated."
	MsgInputIncompatible  = "Error: ISAMI input file not compatible."
	MsgReportRead         = "The HTML file has been read: Kt has been extracted."
	MsgReportIncompatible = "Error: HTML or CZM file not compatible."
	MsgSelectWorkflow     = "Error: Select one of the program options."
)

// Outcome is the result of one dispatch
type Outcome struct {
	Choice Choice
	Err    error
}

// Succeeded reports whether the workflow completed
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Message is the single line shown to the user. Root causes never appear in it.
func (o Outcome) Message() string {
	switch o.Choice {
	case CreateInput:
		if o.Succeeded() {
			return MsgInputGenerated
		}
		return MsgInputIncompatible
	case ReadReport:
		if o.Succeeded() {
			return MsgReportRead
		}
		return MsgReportIncompatible
	}
	return MsgSelectWorkflow
}

// Dispatcher runs the selected workflow
type Dispatcher struct {
	collaborators Collaborators
}

// NewDispatcher creates a dispatcher over c
func NewDispatcher(c Collaborators) *Dispatcher {
	return &Dispatcher{collaborators: c}
}

// Dispatch runs choice synchronously. Every collaborator error or panic is
// captured in the returned Outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, choice Choice, req Request) (out Outcome) {
	out.Choice = choice
	logger := log.LogWithFields(log.F("workflow", choice.String()), log.F("input", req.InputFile))

	defer func() {
		if r := recover(); r != nil {
			out.Err = errors.NewCollaboratorError("collaborator panicked", choice.String(), "", errors.CollaboratorFailed, fmt.Errorf("%v", r))
		}
		switch {
		case choice == None:
			logger.Warn("no workflow selected")
		case out.Err != nil:
			logger.WithError(out.Err).Error("workflow failed")
		default:
			logger.Info("workflow completed")
		}
	}()

	switch choice {
	case CreateInput:
		out.Err = d.createInput(ctx, req)
	case ReadReport:
		out.Err = d.readReport(ctx, req)
	default:
		out.Err = errors.ErrNoWorkflow
	}
	return out
}

func (d *Dispatcher) createInput(ctx context.Context, req Request) error {
	if d.collaborators.NewInputGenerator == nil {
		return errors.NewCollaboratorError("no input generator configured", CreateInput.String(), "", errors.CollaboratorFailed, nil)
	}
	gen, err := d.collaborators.NewInputGenerator(req.InputFile)
	if err != nil {
		return err
	}
	if err := gen.WriteOutput(ctx, req.OutputFolder, req.OutputName); err != nil {
		return err
	}
	return gen.WriteBatch(ctx, req.OutputFolder, req.OutputName)
}

func (d *Dispatcher) readReport(ctx context.Context, req Request) error {
	if d.collaborators.NewReportReader == nil {
		return errors.NewCollaboratorError("no report reader configured", ReadReport.String(), "", errors.CollaboratorFailed, nil)
	}
	reader, err := d.collaborators.NewReportReader(req.InputFile)
	if err != nil {
		return err
	}
	return reader.WriteOutput(ctx, req.OutputFolder, req.OutputName)
}
