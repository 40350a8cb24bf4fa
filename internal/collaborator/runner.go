// Package collaborator adapts the external lug tools to the workflow
// contracts by running them as configured commands.
package collaborator

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"lugisami/internal/config"
	"lugisami/internal/errors"
	"lugisami/internal/log"
)

// Runner executes collaborator commands
type Runner struct {
	// Env is appended to the process environment of every command.
	Env []string
}

// Invocation is a fully expanded command line
type Invocation struct {
	Workflow string
	Command  string
	Args     []string
}

// Expand substitutes the path placeholders into args
func Expand(args []string, input, folder, name string) []string {
	r := strings.NewReplacer(
		config.PlaceholderInput, input,
		config.PlaceholderFolder, folder,
		config.PlaceholderName, name,
		config.PlaceholderOutput, filepath.Join(folder, name),
	)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}

// Run starts inv and waits for it. A non-zero exit is a collaborator error
// carrying the command's combined output.
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	log.LogWithFields(log.F("workflow", inv.Workflow), log.F("command", inv.Command), log.F("args", inv.Args)).Debug("running collaborator")

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(output.String())
		if msg != "" {
			err = errors.Wrap(err, msg)
		}
		return errors.NewCollaboratorError("external tool failed", inv.Workflow, inv.Command, errors.CollaboratorFailed, err)
	}
	return nil
}
