package form

import (
	"path/filepath"

	"lugisami/internal/errors"
	"lugisami/internal/log"
)

// Chooser asks the user for a path. Implementations call done exactly once;
// ok is false when the user cancelled.
type Chooser interface {
	ChooseFile(done func(path string, ok bool))
	ChooseFolder(done func(path string, ok bool))
}

// Bridge writes paths picked through a Chooser into path fields
type Bridge struct {
	fields  *Registry
	chooser Chooser
}

// NewBridge binds chooser to the fields of reg
func NewBridge(reg *Registry, chooser Chooser) *Bridge {
	return &Bridge{fields: reg, chooser: chooser}
}

// PickFile opens a file chooser for the named file field
func (b *Bridge) PickFile(name string) error {
	f, err := b.pathField(name, KindFile)
	if err != nil {
		return err
	}
	b.chooser.ChooseFile(b.receive(f))
	return nil
}

// PickFolder opens a folder chooser for the named folder field
func (b *Bridge) PickFolder(name string) error {
	f, err := b.pathField(name, KindFolder)
	if err != nil {
		return err
	}
	b.chooser.ChooseFolder(b.receive(f))
	return nil
}

// Pick opens the chooser matching the field's kind
func (b *Bridge) Pick(name string) error {
	f, err := b.fields.Field(name)
	if err != nil {
		return err
	}
	if f.kind == KindFolder {
		return b.PickFolder(name)
	}
	return b.PickFile(name)
}

func (b *Bridge) pathField(name string, kind Kind) (*Field, error) {
	f, err := b.fields.Field(name)
	if err != nil {
		return nil, err
	}
	if f.kind != kind {
		return nil, errors.NewFieldError("field cannot be picked as "+kind.String(), name, errors.InvalidFieldKind, nil)
	}
	return f, nil
}

func (b *Bridge) receive(f *Field) func(string, bool) {
	return func(path string, ok bool) {
		if !ok || path == "" {
			log.Debugf("picker for %s cancelled", f.name)
			return
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		b.fields.assign(f, path)
		log.Debugf("picker set %s to %s", f.name, path)
	}
}

// Preset answers every chooser request with a fixed path. It stands in for
// the dialogs when paths come from command-line flags.
type Preset struct {
	File   string
	Folder string
}

func (p Preset) ChooseFile(done func(string, bool))   { done(p.File, p.File != "") }
func (p Preset) ChooseFolder(done func(string, bool)) { done(p.Folder, p.Folder != "") }
