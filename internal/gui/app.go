//go:build !nogui
// +build !nogui

package gui

import (
	"context"

	"lugisami/internal/config"
	"lugisami/internal/controller"
	"lugisami/internal/form"
	"lugisami/internal/help"
	"lugisami/internal/log"
	"lugisami/internal/report"
	"lugisami/internal/workflow"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	ctx        context.Context
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	ctrl       *controller.Controller
	bridge     *form.Bridge

	entries        map[string]*widget.Entry
	pickButtons    map[string]*widget.Button
	workflows      *widget.RadioGroup
	output         *widget.Entry
	generateButton *widget.Button
	helpButton     *widget.Button
}

type options struct {
	chooser form.Chooser
	help    controller.HelpLauncher
}

// Option customises an App
type Option func(*options)

// WithChooser replaces the file dialogs
func WithChooser(c form.Chooser) Option {
	return func(o *options) { o.chooser = c }
}

// WithHelp replaces the help launcher
func WithHelp(h controller.HelpLauncher) Option {
	return func(o *options) { o.help = h }
}

// NewApp creates the main window. A nil fyneApp starts the desktop driver.
func NewApp(fyneApp fyne.App, cfg *config.Config, collaborators workflow.Collaborators, opts ...Option) *App {
	if fyneApp == nil {
		fyneApp = app.NewWithID("io.github.lugisami")
	}
	if cfg == nil {
		cfg = config.New()
	}

	a := &App{
		ctx:         context.Background(),
		fyneApp:     fyneApp,
		cfg:         cfg,
		entries:     make(map[string]*widget.Entry),
		pickButtons: make(map[string]*widget.Button),
	}
	a.mainWindow = fyneApp.NewWindow(cfg.Window.Title)
	a.mainWindow.SetFixedSize(!cfg.Window.Resizable)

	fields := form.NewRegistry(form.DefaultFields()...)
	selector := workflow.NewSelector()

	o := &options{
		chooser: &dialogChooser{window: a.mainWindow, selector: selector},
		help:    help.NewLauncher(cfg.Help.Document),
	}
	for _, opt := range opts {
		opt(o)
	}

	a.output = widget.NewMultiLineEntry()
	a.output.Wrapping = fyne.TextWrapWord
	a.output.SetMinRowsVisible(6)
	a.output.Disable()

	a.ctrl = controller.New(fields, selector, workflow.NewDispatcher(collaborators), report.Func(a.output.SetText), o.help)
	a.bridge = form.NewBridge(fields, o.chooser)

	a.setupMainWindow()
	return a
}

// GetMainWindow returns the main window
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Controller returns the controller behind the window
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Run shows the window and blocks until it is closed
func (a *App) Run(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
	log.Info("starting GUI")
	a.mainWindow.ShowAndRun()
}

func (a *App) setupMainWindow() {
	labels := make([]string, 0, len(workflow.Choices))
	for _, c := range workflow.Choices {
		labels = append(labels, c.Label())
	}
	a.workflows = widget.NewRadioGroup(labels, func(label string) {
		a.ctrl.Selector().SetLabel(label)
		log.Debugf("workflow selected: %s", a.ctrl.Selector().Current())
	})
	a.workflows.Horizontal = true

	rows := container.New(layout.NewFormLayout())
	for _, f := range a.ctrl.Fields().Fields() {
		label, row := a.fieldRow(f)
		rows.Add(label)
		rows.Add(row)
	}

	a.ctrl.Fields().OnChange(func(f *form.Field) {
		if e, ok := a.entries[f.Name()]; ok && e.Text != f.Value() {
			e.SetText(f.Value())
		}
	})

	a.generateButton = widget.NewButton("Generate", func() {
		a.ctrl.Generate(a.ctx)
	})
	a.generateButton.Importance = widget.HighImportance
	a.helpButton = widget.NewButton("HELP", a.ctrl.Help)

	content := container.NewBorder(
		a.workflows,
		container.NewHBox(a.generateButton, layout.NewSpacer(), a.helpButton),
		nil,
		nil,
		container.NewVBox(rows, widget.NewSeparator(), a.output),
	)
	a.mainWindow.SetContent(content)
	a.mainWindow.Resize(fyne.NewSize(640, 360))
}

// fieldRow builds the label and the entry for one field. Path entries are
// read-only and carry a "..." button that opens the matching dialog.
func (a *App) fieldRow(f *form.Field) (fyne.CanvasObject, fyne.CanvasObject) {
	name := f.Name()
	entry := widget.NewEntry()
	entry.SetText(f.Value())
	a.entries[name] = entry

	if f.Kind().Editable() {
		entry.OnChanged = func(text string) {
			if err := a.ctrl.Fields().SetValue(name, text); err != nil {
				log.LogWithError(err).Error("field update rejected")
			}
		}
		return widget.NewLabel(f.Label()), entry
	}

	entry.Disable()
	pick := widget.NewButton("...", func() {
		if err := a.bridge.Pick(name); err != nil {
			log.LogWithError(err).Error("picker failed")
		}
	})
	a.pickButtons[name] = pick
	return widget.NewLabel(f.Label()), container.NewBorder(nil, nil, nil, pick, entry)
}
