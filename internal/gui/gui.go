//go:build !nogui
// +build !nogui

// Package gui is the desktop front end of the form.
package gui

import (
	"context"

	"lugisami/internal/config"
	"lugisami/internal/workflow"
)

// Start opens the main window and blocks until it is closed
func Start(ctx context.Context, cfg *config.Config, collaborators workflow.Collaborators) error {
	NewApp(nil, cfg, collaborators).Run(ctx)
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
