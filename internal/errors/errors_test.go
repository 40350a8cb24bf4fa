package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFieldError(t *testing.T) {
	fieldErr := NewFieldError("field is read-only", "input_file", ReadOnlyField, nil)
	assert.Equal(t, "field is read-only: input_file", fieldErr.Error())
	assert.Equal(t, "input_file", fieldErr.Field())
	assert.Equal(t, ReadOnlyField, fieldErr.Kind())

	assert.True(t, IsReadOnlyField(fieldErr))
	assert.False(t, IsFieldNotFound(fieldErr))

	notFound := NewFieldError("field not registered", "missing", FieldNotFound, nil)
	assert.True(t, IsFieldNotFound(notFound))
	assert.False(t, IsReadOnlyField(notFound))

	// Predefined sentinels
	assert.Equal(t, "field is read-only", ErrReadOnlyField.Error())
	assert.Equal(t, FieldNotFound, ErrFieldNotFound.Kind())
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "help.document", InvalidConfig, nil)
	assert.Equal(t, "invalid value: help.document", configErr.Error())
	assert.Equal(t, "help.document", configErr.Param())

	origErr := fmt.Errorf("empty string")
	configErr = NewConfigError("invalid value", "help.document", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: help.document: empty string", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))
}

func TestCollaboratorError(t *testing.T) {
	cause := fmt.Errorf("exit status 2")
	collabErr := NewCollaboratorError("external tool failed", "read-report", "lugreader", CollaboratorFailed, cause)
	assert.Equal(t, "external tool failed: read-report: exit status 2", collabErr.Error())
	assert.Equal(t, "read-report", collabErr.Workflow())
	assert.Equal(t, "lugreader", collabErr.Command())

	assert.True(t, IsCollaboratorFailed(collabErr))
	assert.False(t, IsUnsupportedFormat(collabErr))
	assert.True(t, IsUnsupportedFormat(ErrUnsupportedFormat))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, InvalidSelection, KindOf(ErrNoWorkflow))
	assert.Equal(t, ReadOnlyField, KindOf(Wrap(ErrReadOnlyField, "set value")))
	assert.Equal(t, HelpUnavailable, KindOf(Wrapf(ErrHelpUnavailable, "%s not found", "LugISAMI_Help.pdf")))
	assert.Equal(t, CollaboratorFailed, KindOf(fmt.Errorf("dispatch: %w", Wrap(NewCollaboratorError("external tool failed", "create-input", "lugwriter", CollaboratorFailed, nil), "run"))))
	assert.Equal(t, Unknown, KindOf(Wrap(fmt.Errorf("plain"), "context")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestErrorChains(t *testing.T) {
	baseErr := errors.New("base error")
	fieldErr := NewFieldError("field error", "output_folder", FieldNotFound, baseErr)
	configErr := NewConfigError("config error", "collaborators", InvalidConfig, fieldErr)

	assert.Equal(t, "config error: collaborators: field error: output_folder: base error", configErr.Error())

	assert.True(t, Is(configErr, baseErr))
	assert.True(t, Is(configErr, fieldErr))

	var fe *FieldError
	assert.True(t, As(configErr, &fe))
	assert.Equal(t, "output_folder", fe.Field())

	assert.True(t, IsFieldNotFound(configErr))
	assert.True(t, IsInvalidConfig(configErr))
}
