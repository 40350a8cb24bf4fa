// Package form holds the user-editable inputs of the tool: the field
// registry, the picker bridge that fills path fields, and the presence
// validator run before every dispatch.
package form

import (
	"lugisami/internal/errors"
)

// Kind is the input mode of a field
type Kind int

const (
	KindText   Kind = iota // typed directly by the user
	KindFile               // filled by an open-file dialog
	KindFolder             // filled by an open-folder dialog
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	}
	return "unknown"
}

// Editable reports whether the user may type into fields of this kind
func (k Kind) Editable() bool {
	return k == KindText
}

// Field names used by the workflows.
const (
	InputFile    = "input_file"
	OutputFolder = "output_folder"
	OutputName   = "output_name"
)

// Descriptor declares one input row
type Descriptor struct {
	Name  string
	Kind  Kind
	Label string
}

// DefaultFields returns the rows of the main form, in display order
func DefaultFields() []Descriptor {
	return []Descriptor{
		{Name: InputFile, Kind: KindFile, Label: "Input file:"},
		{Name: OutputFolder, Kind: KindFolder, Label: "Output folder:"},
		{Name: OutputName, Kind: KindText, Label: "Output filename:"},
	}
}

// Field is one named user input
type Field struct {
	name  string
	kind  Kind
	label string
	value string
}

func (f *Field) Name() string  { return f.name }
func (f *Field) Kind() Kind    { return f.kind }
func (f *Field) Label() string { return f.label }
func (f *Field) Value() string { return f.value }

// Registry stores fields in registration order. Fields are never removed.
// It is owned by the UI thread and is not safe for concurrent use.
type Registry struct {
	fields    []*Field
	byName    map[string]*Field
	listeners []func(*Field)
}

// NewRegistry creates a registry and registers descs in order
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{byName: make(map[string]*Field)}
	for _, d := range descs {
		r.Register(d.Name, d.Kind, d.Label)
	}
	return r
}

// Register creates and stores a field. Names must be unique.
func (r *Registry) Register(name string, kind Kind, label string) *Field {
	f := &Field{name: name, kind: kind, label: label}
	r.fields = append(r.fields, f)
	r.byName[name] = f
	return f
}

// Fields returns the registered fields in registration order
func (r *Registry) Fields() []*Field {
	out := make([]*Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Field looks up a field by name
func (r *Registry) Field(name string) (*Field, error) {
	f, ok := r.byName[name]
	if !ok {
		return nil, errors.NewFieldError("lookup failed", name, errors.FieldNotFound, errors.ErrFieldNotFound)
	}
	return f, nil
}

// Value returns the current content of a field
func (r *Registry) Value(name string) (string, error) {
	f, err := r.Field(name)
	if err != nil {
		return "", err
	}
	return f.value, nil
}

// MustValue returns the content of a field, or "" when it is not registered
func (r *Registry) MustValue(name string) string {
	v, _ := r.Value(name)
	return v
}

// SetValue applies a direct user edit. Path fields reject it: they change
// only through a Bridge.
func (r *Registry) SetValue(name, value string) error {
	f, err := r.Field(name)
	if err != nil {
		return err
	}
	if !f.kind.Editable() {
		return errors.NewFieldError("cannot set value", name, errors.ReadOnlyField, errors.ErrReadOnlyField)
	}
	r.assign(f, value)
	return nil
}

// OnChange registers fn to be called after any field value changes
func (r *Registry) OnChange(fn func(*Field)) {
	r.listeners = append(r.listeners, fn)
}

func (r *Registry) assign(f *Field, value string) {
	if f.value == value {
		return
	}
	f.value = value
	for _, fn := range r.listeners {
		fn(f)
	}
}
