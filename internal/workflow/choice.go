package workflow

import (
	"fmt"
	"strings"
)

// Choice is the selected workflow. None is the initial state.
type Choice int

const (
	None Choice = iota
	CreateInput
	ReadReport
)

// Choices lists the selectable workflows in display order
var Choices = []Choice{CreateInput, ReadReport}

func (c Choice) String() string {
	switch c {
	case CreateInput:
		return "create-input"
	case ReadReport:
		return "read-report"
	}
	return "none"
}

// Label is the text shown next to the workflow's radio button
func (c Choice) Label() string {
	switch c {
	case CreateInput:
		return "Create ISAMI input"
	case ReadReport:
		return "Read HTML or CZM"
	}
	return ""
}

// ParseChoice accepts a workflow name or label. The empty string is None.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "create-input", "create_input", "create", strings.ToLower(CreateInput.Label()):
		return CreateInput, nil
	case "read-report", "read_report", "read", strings.ToLower(ReadReport.Label()):
		return ReadReport, nil
	}
	return None, fmt.Errorf("unknown workflow %q", s)
}

// Selector holds the current workflow choice
type Selector struct {
	current Choice
}

// NewSelector returns a selector with nothing chosen
func NewSelector() *Selector {
	return &Selector{}
}

// Set replaces the current choice
func (s *Selector) Set(c Choice) {
	s.current = c
}

// SetLabel selects the workflow whose label is l; an unknown label clears it
func (s *Selector) SetLabel(l string) {
	c, err := ParseChoice(l)
	if err != nil {
		c = None
	}
	s.current = c
}

// Current returns the active choice
func (s *Selector) Current() Choice {
	return s.current
}
