//go:build !nogui
// +build !nogui

package gui

import (
	"lugisami/internal/workflow"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// reportExtensions are offered by the file dialog while reading a report
var reportExtensions = []string{".html", ".htm", ".czm"}

// dialogChooser answers picker requests with the fyne file dialogs
type dialogChooser struct {
	window   fyne.Window
	selector *workflow.Selector
}

func (c *dialogChooser) filter() storage.FileFilter {
	if c.selector != nil && c.selector.Current() == workflow.ReadReport {
		return storage.NewExtensionFileFilter(reportExtensions)
	}
	return nil
}

func (c *dialogChooser) ChooseFile(done func(string, bool)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			done("", false)
			return
		}
		defer reader.Close()
		done(reader.URI().Path(), true)
	}, c.window)
	if f := c.filter(); f != nil {
		d.SetFilter(f)
	}
	d.Show()
}

func (c *dialogChooser) ChooseFolder(done func(string, bool)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			done("", false)
			return
		}
		done(uri.Path(), true)
	}, c.window)
}
