//go:build nogui
// +build nogui

package gui

import (
	"context"

	"lugisami/internal/config"
	"lugisami/internal/errors"
	"lugisami/internal/workflow"
)

// Start is a stub for builds with the GUI disabled
func Start(_ context.Context, _ *config.Config, _ workflow.Collaborators) error {
	return errors.New("GUI not available in this build; use the tui or generate commands")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
