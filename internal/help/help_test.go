package help

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"lugisami/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchFindsDocumentInSearchDirs(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	doc := filepath.Join(second, "LugISAMI_Help.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("%PDF-1.4"), 0644))

	var opened string
	l := &Launcher{
		Document: "LugISAMI_Help.pdf",
		Dirs:     []string{first, second},
		Open:     func(p string) error { opened = p; return nil },
	}

	require.NoError(t, l.Launch())
	assert.Equal(t, doc, opened)
}

func TestLaunchMissingDocument(t *testing.T) {
	called := false
	l := &Launcher{
		Document: "LugISAMI_Help.pdf",
		Dirs:     []string{t.TempDir()},
		Open:     func(string) error { called = true; return nil },
	}

	err := l.Launch()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrHelpUnavailable))
	assert.False(t, called)
}

func TestLaunchAbsolutePath(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "manual.pdf")
	l := &Launcher{Document: doc, Open: func(string) error { return nil }}

	assert.True(t, errors.Is(l.Launch(), errors.ErrHelpUnavailable))

	require.NoError(t, os.WriteFile(doc, []byte("x"), 0644))
	assert.NoError(t, l.Launch())
}

func TestLaunchOpenerFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "h.pdf"), []byte("x"), 0644))

	l := &Launcher{
		Document: "h.pdf",
		Dirs:     []string{dir},
		Open:     func(string) error { return fmt.Errorf("no viewer") },
	}
	err := l.Launch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no viewer")
}

func TestEmptyDocument(t *testing.T) {
	_, err := NewLauncher("").Resolve()
	assert.Equal(t, errors.ErrHelpUnavailable, err)
}
