// Package controller drives the form: it validates the fields, dispatches
// the selected workflow and reports the outcome on a single surface.
package controller

import (
	"context"
	"strings"

	"lugisami/internal/form"
	"lugisami/internal/log"
	"lugisami/internal/report"
	"lugisami/internal/workflow"
)

// MsgHelpUnavailable is reported when the help document cannot be opened.
const MsgHelpUnavailable = "Error: Couldn't open the README file."

// State of the Generate cycle
type State int

const (
	Idle State = iota
	Validating
	Dispatching
	Reporting
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Dispatching:
		return "dispatching"
	case Reporting:
		return "reporting"
	}
	return "idle"
}

// HelpLauncher opens the help document
type HelpLauncher interface {
	Launch() error
}

// Controller owns the form state. All methods run on the UI thread.
type Controller struct {
	fields     *form.Registry
	selector   *workflow.Selector
	dispatcher *workflow.Dispatcher
	reporter   report.Reporter
	help       HelpLauncher

	state        State
	onTransition func(from, to State)
}

// New creates a controller. help may be nil.
func New(fields *form.Registry, selector *workflow.Selector, dispatcher *workflow.Dispatcher, reporter report.Reporter, help HelpLauncher) *Controller {
	return &Controller{
		fields:     fields,
		selector:   selector,
		dispatcher: dispatcher,
		reporter:   reporter,
		help:       help,
	}
}

// Fields returns the field registry
func (c *Controller) Fields() *form.Registry { return c.fields }

// Selector returns the workflow selector
func (c *Controller) Selector() *workflow.Selector { return c.selector }

// State returns the current cycle state
func (c *Controller) State() State { return c.state }

// OnTransition registers fn to observe state changes
func (c *Controller) OnTransition(fn func(from, to State)) {
	c.onTransition = fn
}

func (c *Controller) enter(s State) {
	from := c.state
	c.state = s
	log.Debugf("controller %s -> %s", from, s)
	if c.onTransition != nil {
		c.onTransition(from, s)
	}
}

// Generate runs one full cycle and reports whether the workflow succeeded.
// Each call starts from Idle regardless of how the previous one ended.
func (c *Controller) Generate(ctx context.Context) bool {
	c.state = Idle
	defer c.enter(Idle)

	c.enter(Validating)
	c.reporter.Show("")
	warnings := form.Validate(c.fields)
	if len(warnings) > 0 {
		c.enter(Reporting)
		c.reporter.Show(strings.Join(warnings, "\n"))
		log.LogWithFields(log.F("warnings", len(warnings))).Warn("generate blocked by empty fields")
		return false
	}

	c.enter(Dispatching)
	outcome := c.dispatcher.Dispatch(ctx, c.selector.Current(), c.request())

	c.enter(Reporting)
	c.reporter.Show(outcome.Message())
	return outcome.Succeeded()
}

func (c *Controller) request() workflow.Request {
	return workflow.Request{
		InputFile:    c.fields.MustValue(form.InputFile),
		OutputFolder: c.fields.MustValue(form.OutputFolder),
		OutputName:   c.fields.MustValue(form.OutputName),
	}
}

// Help opens the help document. Failure is reported, never returned.
func (c *Controller) Help() {
	if c.help == nil {
		c.reporter.Show(MsgHelpUnavailable)
		return
	}
	if err := c.help.Launch(); err != nil {
		log.LogWithError(err).Warn("help document unavailable")
		c.reporter.Show(MsgHelpUnavailable)
	}
}
