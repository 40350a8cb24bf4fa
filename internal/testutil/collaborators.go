// Package testutil provides fakes shared by the controller and front-end tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lugisami/internal/workflow"

	"github.com/stretchr/testify/require"
)

// Call records one collaborator invocation
type Call struct {
	Op     string
	Input  string
	Folder string
	Name   string
}

// FakeCollaborators records constructions and calls, and fails where told to
type FakeCollaborators struct {
	Constructed []string // workflow names in construction order
	Calls       []Call

	ConstructErr error
	OutputErr    error
	BatchErr     error
	Panic        interface{}
}

// Collaborators returns factories backed by f
func (f *FakeCollaborators) Collaborators() workflow.Collaborators {
	return workflow.Collaborators{
		NewInputGenerator: func(input string) (workflow.InputGenerator, error) {
			f.Constructed = append(f.Constructed, workflow.CreateInput.String())
			if f.ConstructErr != nil {
				return nil, f.ConstructErr
			}
			return &fakeGenerator{owner: f, input: input}, nil
		},
		NewReportReader: func(input string) (workflow.ReportReader, error) {
			f.Constructed = append(f.Constructed, workflow.ReadReport.String())
			if f.ConstructErr != nil {
				return nil, f.ConstructErr
			}
			return &fakeReader{owner: f, input: input}, nil
		},
	}
}

func (f *FakeCollaborators) record(op, input, folder, name string) {
	f.Calls = append(f.Calls, Call{Op: op, Input: input, Folder: folder, Name: name})
	if f.Panic != nil {
		panic(f.Panic)
	}
}

type fakeGenerator struct {
	owner *FakeCollaborators
	input string
}

func (g *fakeGenerator) WriteOutput(_ context.Context, folder, name string) error {
	g.owner.record("output", g.input, folder, name)
	return g.owner.OutputErr
}

func (g *fakeGenerator) WriteBatch(_ context.Context, folder, name string) error {
	g.owner.record("batch", g.input, folder, name)
	return g.owner.BatchErr
}

type fakeReader struct {
	owner *FakeCollaborators
	input string
}

func (r *fakeReader) WriteOutput(_ context.Context, folder, name string) error {
	r.owner.record("read", r.input, folder, name)
	return r.owner.OutputErr
}

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}
