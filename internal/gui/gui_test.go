//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"
	"path/filepath"
	"testing"

	"lugisami/internal/config"
	"lugisami/internal/form"
	"lugisami/internal/testutil"
	"lugisami/internal/workflow"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHelp struct{ err error }

func (h fakeHelp) Launch() error { return h.err }

func newTestApp(t *testing.T, fake *testutil.FakeCollaborators, picks *form.Preset, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithChooser(picks), WithHelp(fakeHelp{})}, opts...)
	a := NewApp(test.NewApp(), config.New(), fake.Collaborators(), opts...)
	require.NotNil(t, a)
	t.Cleanup(a.mainWindow.Close)
	return a
}

func TestNewAppWindow(t *testing.T) {
	a := newTestApp(t, &testutil.FakeCollaborators{}, &form.Preset{})

	w := a.GetMainWindow()
	require.NotNil(t, w)
	assert.Equal(t, "ISAMI LUG V1.0", w.Title())
	assert.True(t, w.FixedSize())

	_, ok := w.Content().(*fyne.Container)
	assert.True(t, ok, "window content should be a container")

	assert.Equal(t, []string{"Create ISAMI input", "Read HTML or CZM"}, a.workflows.Options)
	assert.Equal(t, "", a.workflows.Selected)
	assert.True(t, a.output.Disabled())
}

func TestPathEntriesAreReadOnly(t *testing.T) {
	a := newTestApp(t, &testutil.FakeCollaborators{}, &form.Preset{})

	assert.True(t, a.entries[form.InputFile].Disabled())
	assert.True(t, a.entries[form.OutputFolder].Disabled())
	assert.False(t, a.entries[form.OutputName].Disabled())

	assert.Contains(t, a.pickButtons, form.InputFile)
	assert.Contains(t, a.pickButtons, form.OutputFolder)
	assert.NotContains(t, a.pickButtons, form.OutputName)
}

func TestPickButtonsFillEntries(t *testing.T) {
	in := filepath.Join(t.TempDir(), "report.html")
	out := t.TempDir()
	a := newTestApp(t, &testutil.FakeCollaborators{}, &form.Preset{File: in, Folder: out})

	test.Tap(a.pickButtons[form.InputFile])
	test.Tap(a.pickButtons[form.OutputFolder])

	assert.Equal(t, in, a.entries[form.InputFile].Text)
	assert.Equal(t, out, a.entries[form.OutputFolder].Text)
	assert.Equal(t, in, a.ctrl.Fields().MustValue(form.InputFile))
}

func TestCancelledPickKeepsValue(t *testing.T) {
	picks := &form.Preset{File: "/data/first.html"}
	a := newTestApp(t, &testutil.FakeCollaborators{}, picks)

	test.Tap(a.pickButtons[form.InputFile])
	picks.File = ""
	test.Tap(a.pickButtons[form.InputFile])

	assert.Equal(t, "/data/first.html", a.entries[form.InputFile].Text)
}

func TestRadioSetsSelector(t *testing.T) {
	a := newTestApp(t, &testutil.FakeCollaborators{}, &form.Preset{})

	a.workflows.SetSelected("Read HTML or CZM")
	assert.Equal(t, workflow.ReadReport, a.ctrl.Selector().Current())

	a.workflows.SetSelected("Create ISAMI input")
	assert.Equal(t, workflow.CreateInput, a.ctrl.Selector().Current())
}

func TestGenerateReportsWarnings(t *testing.T) {
	fake := &testutil.FakeCollaborators{}
	a := newTestApp(t, fake, &form.Preset{})

	test.Tap(a.generateButton)

	assert.Equal(t,
		"Error: input file has not been selected.\n"+
			"Error: output folder has not been selected.\n"+
			"Error: output name has not been selected.",
		a.output.Text)
	assert.Empty(t, fake.Constructed)
}

func TestGenerateDispatchesSelection(t *testing.T) {
	fake := &testutil.FakeCollaborators{}
	a := newTestApp(t, fake, &form.Preset{File: "/data/report.czm", Folder: "/out"})

	test.Tap(a.pickButtons[form.InputFile])
	test.Tap(a.pickButtons[form.OutputFolder])
	test.Type(a.entries[form.OutputName], "res")
	assert.Equal(t, "res", a.ctrl.Fields().MustValue(form.OutputName))

	test.Tap(a.generateButton)
	assert.Equal(t, "Error: Select one of the program options.", a.output.Text)

	a.workflows.SetSelected("Read HTML or CZM")
	test.Tap(a.generateButton)
	assert.Equal(t, "The HTML file has been read: Kt has been extracted.", a.output.Text)
	require.Len(t, fake.Calls, 1)
	assert.Equal(t, testutil.Call{Op: "read", Input: "/data/report.czm", Folder: "/out", Name: "res"}, fake.Calls[0])

	fake.OutputErr = fmt.Errorf("not a report")
	test.Tap(a.generateButton)
	assert.Equal(t, "Error: HTML or CZM file not compatible.", a.output.Text)
}

func TestHelpButton(t *testing.T) {
	a := newTestApp(t, &testutil.FakeCollaborators{}, &form.Preset{}, WithHelp(fakeHelp{err: fmt.Errorf("no viewer")}))

	test.Tap(a.helpButton)
	assert.Equal(t, "Error: Couldn't open the README file.", a.output.Text)
}

func TestDialogFilterFollowsWorkflow(t *testing.T) {
	selector := workflow.NewSelector()
	c := &dialogChooser{selector: selector}

	assert.Nil(t, c.filter())

	selector.Set(workflow.ReadReport)
	require.NotNil(t, c.filter())

	assert.True(t, c.filter().Matches(storage.NewFileURI("/r/report.htm")))
	assert.False(t, c.filter().Matches(storage.NewFileURI("/r/report.pdf")))
}

func TestIsGUIAvailable(t *testing.T) {
	assert.True(t, IsGUIAvailable())
}
