// Package help opens the tool's help document with the platform viewer.
package help

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"lugisami/internal/errors"
	"lugisami/internal/log"
)

// Launcher locates and opens a help document
type Launcher struct {
	Document string

	// Dirs are searched in order for a relative Document. Empty means the
	// executable's directory followed by the working directory.
	Dirs []string

	// Open starts the viewer. Defaults to the platform opener.
	Open func(path string) error
}

// NewLauncher creates a launcher for document
func NewLauncher(document string) *Launcher {
	return &Launcher{Document: document}
}

// Resolve returns the absolute path of the help document
func (l *Launcher) Resolve() (string, error) {
	if l.Document == "" {
		return "", errors.ErrHelpUnavailable
	}
	if filepath.IsAbs(l.Document) {
		if _, err := os.Stat(l.Document); err != nil {
			return "", errors.Wrap(errors.ErrHelpUnavailable, err.Error())
		}
		return l.Document, nil
	}

	for _, dir := range l.searchDirs() {
		candidate := filepath.Join(dir, l.Document)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Wrapf(errors.ErrHelpUnavailable, "%s not found", l.Document)
}

// Launch opens the help document
func (l *Launcher) Launch() error {
	path, err := l.Resolve()
	if err != nil {
		return err
	}
	open := l.Open
	if open == nil {
		open = openWithSystem
	}
	if err := open(path); err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	log.Debugf("opened help document %s", path)
	return nil
}

func (l *Launcher) searchDirs() []string {
	if len(l.Dirs) > 0 {
		return l.Dirs
	}
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return dirs
}

func openWithSystem(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
