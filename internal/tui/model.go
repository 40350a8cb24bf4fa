// Package tui is the terminal front end of the form.
package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"lugisami/internal/config"
	"lugisami/internal/controller"
	"lugisami/internal/form"
	"lugisami/internal/help"
	"lugisami/internal/log"
	"lugisami/internal/report"
	"lugisami/internal/workflow"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// reportExtensions restrict the picker while reading a report
var reportExtensions = []string{".html", ".htm", ".czm"}

type rowKind int

const (
	rowWorkflow rowKind = iota
	rowField
	rowGenerate
	rowHelp
)

type row struct {
	kind  rowKind
	field *form.Field
}

type Model struct {
	ctx    context.Context
	title  string
	ctrl   *controller.Controller
	bridge *form.Bridge

	rows   []row
	cursor int
	inputs map[string]*textinput.Model
	report string

	// Picker state
	picker     filepicker.Model
	picking    bool
	pickDir    bool
	pending    func(string, bool)
	pickerInit tea.Cmd
	startDir   string

	height int
}

type options struct {
	chooser  form.Chooser
	help     controller.HelpLauncher
	startDir string
}

// Option customises a Model
type Option func(*options)

// WithChooser answers picker requests without the file picker
func WithChooser(c form.Chooser) Option {
	return func(o *options) { o.chooser = c }
}

// WithHelp replaces the help launcher
func WithHelp(h controller.HelpLauncher) Option {
	return func(o *options) { o.help = h }
}

// WithStartDir sets the directory the file picker opens in
func WithStartDir(dir string) Option {
	return func(o *options) { o.startDir = dir }
}

func New(ctx context.Context, cfg *config.Config, collaborators workflow.Collaborators, opts ...Option) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.New()
	}

	o := &options{help: help.NewLauncher(cfg.Help.Document)}
	for _, opt := range opts {
		opt(o)
	}
	if o.startDir == "" {
		if wd, err := os.Getwd(); err == nil {
			o.startDir = wd
		} else {
			o.startDir = "."
		}
	}

	m := &Model{
		ctx:      ctx,
		title:    cfg.Window.Title,
		inputs:   make(map[string]*textinput.Model),
		startDir: o.startDir,
	}

	fields := form.NewRegistry(form.DefaultFields()...)
	reporter := report.Func(func(text string) { m.report = text })
	m.ctrl = controller.New(fields, workflow.NewSelector(), workflow.NewDispatcher(collaborators), reporter, o.help)

	var chooser form.Chooser = m
	if o.chooser != nil {
		chooser = o.chooser
	}
	m.bridge = form.NewBridge(fields, chooser)

	m.rows = append(m.rows, row{kind: rowWorkflow})
	for _, f := range fields.Fields() {
		m.rows = append(m.rows, row{kind: rowField, field: f})
		if f.Kind().Editable() {
			ti := textinput.New()
			ti.Placeholder = form.Humanize(f.Name())
			ti.CharLimit = 255
			ti.Prompt = ""
			m.inputs[f.Name()] = &ti
		}
	}
	m.rows = append(m.rows, row{kind: rowGenerate}, row{kind: rowHelp})

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picking {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.move(1)
	case "shift+tab", "up":
		return m, m.move(-1)
	case "ctrl+g":
		m.ctrl.Generate(m.ctx)
		return m, nil
	}

	r := m.rows[m.cursor]
	switch r.kind {
	case rowWorkflow:
		switch msg.String() {
		case "right", "l", " ":
			m.cycleWorkflow(1)
		case "left", "h":
			m.cycleWorkflow(-1)
		}
	case rowField:
		if in, ok := m.inputs[r.field.Name()]; ok {
			if msg.Type == tea.KeyEnter {
				return m, m.move(1)
			}
			var cmd tea.Cmd
			*in, cmd = in.Update(msg)
			if err := m.ctrl.Fields().SetValue(r.field.Name(), in.Value()); err != nil {
				log.LogWithError(err).Error("field update rejected")
			}
			return m, cmd
		}
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			if err := m.bridge.Pick(r.field.Name()); err != nil {
				log.LogWithError(err).Error("picker failed")
			}
			cmd := m.pickerInit
			m.pickerInit = nil
			return m, cmd
		}
	case rowGenerate:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			m.ctrl.Generate(m.ctx)
		}
	case rowHelp:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			m.ctrl.Help()
		}
	}
	return m, nil
}

func (m *Model) move(delta int) tea.Cmd {
	if in := m.focusedInput(); in != nil {
		in.Blur()
	}
	m.cursor = (m.cursor + delta + len(m.rows)) % len(m.rows)
	if in := m.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

func (m *Model) focusedInput() *textinput.Model {
	r := m.rows[m.cursor]
	if r.kind != rowField {
		return nil
	}
	return m.inputs[r.field.Name()]
}

// cycleWorkflow steps through the selectable workflows. The unselected
// state is only reachable before the first choice.
func (m *Model) cycleWorkflow(delta int) {
	sel := m.ctrl.Selector()
	n := len(workflow.Choices)
	idx := -1
	for i, c := range workflow.Choices {
		if c == sel.Current() {
			idx = i
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = n - 1
	default:
		idx = (idx + delta + n) % n
	}
	sel.Set(workflow.Choices[idx])
	log.Debugf("workflow selected: %s", sel.Current())
}

// ChooseFile opens the file picker
func (m *Model) ChooseFile(done func(string, bool)) {
	m.openPicker(false, done)
}

// ChooseFolder opens the file picker in directory mode
func (m *Model) ChooseFolder(done func(string, bool)) {
	m.openPicker(true, done)
}

func (m *Model) openPicker(dir bool, done func(string, bool)) {
	fp := filepicker.New()
	fp.DirAllowed = dir
	fp.FileAllowed = !dir
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = m.pickerHeight()
	fp.Styles = pickerStyles()
	fp.CurrentDirectory = m.startDir
	if !dir && m.ctrl.Selector().Current() == workflow.ReadReport {
		fp.AllowedTypes = reportExtensions
	}

	m.picker = fp
	m.picking = true
	m.pickDir = dir
	m.pending = done
	m.pickerInit = fp.Init()
}

func (m *Model) pickerHeight() int {
	if m.height <= 0 {
		return 12
	}
	return max(m.height-8, 6)
}

func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.finishPick("", false)
			return m, nil
		case "ctrl+s":
			if m.pickDir {
				m.finishPick(m.picker.CurrentDirectory, true)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.finishPick(path, true)
		return m, nil
	}
	return m, cmd
}

func (m *Model) finishPick(path string, ok bool) {
	done := m.pending
	m.picking = false
	m.pending = nil
	if ok && path != "" {
		if m.pickDir {
			m.startDir = path
		} else {
			m.startDir = filepath.Dir(path)
		}
	}
	if done != nil {
		done(path, ok)
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.picking {
		what := "Select a file"
		hint := "enter select · esc cancel"
		if m.pickDir {
			what = "Select a folder"
			hint = "enter select · l/→ open · ctrl+s use this folder · esc cancel"
		}
		b.WriteString(what + ": " + HintStyle.Render(m.picker.CurrentDirectory) + "\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n" + HintStyle.Render(hint))
		return App.Render(b.String())
	}

	for i, r := range m.rows {
		focused := i == m.cursor
		switch r.kind {
		case rowWorkflow:
			b.WriteString(m.workflowView(focused))
			b.WriteString("\n\n")
		case rowField:
			b.WriteString(m.fieldView(r.field, focused))
			b.WriteString("\n")
		case rowGenerate:
			b.WriteString("\n")
			b.WriteString(buttonView("Generate", focused))
		case rowHelp:
			b.WriteString(" ")
			b.WriteString(buttonView("HELP", focused))
			b.WriteString("\n")
		}
	}

	if m.report != "" {
		style := SuccessStyle
		if strings.HasPrefix(m.report, "Error:") {
			style = ErrorStyle
		}
		b.WriteString("\n" + style.Render(m.report) + "\n")
	}
	b.WriteString("\n" + HintStyle.Render("tab/↑↓ move · ←→ workflow · enter pick or press · ctrl+g generate · esc quit"))
	return App.Render(b.String())
}

func (m *Model) workflowView(focused bool) string {
	parts := make([]string, 0, len(workflow.Choices))
	for _, c := range workflow.Choices {
		mark := "( )"
		if m.ctrl.Selector().Current() == c {
			mark = "(•)"
		}
		parts = append(parts, mark+" "+c.Label())
	}
	line := strings.Join(parts, "   ")
	if focused {
		return FocusStyle.Render(line)
	}
	return line
}

func (m *Model) fieldView(f *form.Field, focused bool) string {
	label := LabelStyle.Render(f.Label())
	if focused {
		label = LabelStyle.Inherit(FocusStyle).Render(f.Label())
	}
	if in, ok := m.inputs[f.Name()]; ok {
		return label + in.View()
	}
	value := f.Value()
	if value == "" {
		value = EmptyStyle.Render("not selected")
	}
	return label + value + " " + HintStyle.Render("[...]")
}

func buttonView(text string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render(text)
	}
	return ButtonStyle.Render(text)
}

// Report returns the text currently shown in the report pane
func (m *Model) Report() string {
	return m.report
}

// Controller returns the controller behind the form
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}

// Run starts the terminal UI and blocks until it exits
func Run(ctx context.Context, cfg *config.Config, collaborators workflow.Collaborators) error {
	p := tea.NewProgram(New(ctx, cfg, collaborators), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
