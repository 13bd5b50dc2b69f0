// Package form holds the draft behind the create and edit forms.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrRequired      = errors.New("field is required")
	ErrSubmitPending = errors.New("a submission is already in progress")
	ErrNotStarted    = errors.New("form is not bound to create or edit")
)

// Field names match the JSON keys of the draft.
type Field string

const (
	FieldName      Field = "name"
	FieldEmail     Field = "email"
	FieldPhone     Field = "telefone"
	FieldBirthDate Field = "birth_date"
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldBirthDate}

type Mode int

const (
	ModeNone Mode = iota
	ModeCreate
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	}
	return "none"
}

// Form is the transient state of one form. It is not safe for concurrent use.
type Form struct {
	draft   models.Draft
	mode    Mode
	editing *models.Record
	pending bool
}

func New() *Form {
	return &Form{}
}

// StartCreate clears the draft for a new record.
func (f *Form) StartCreate() {
	f.draft = models.Draft{}
	f.mode = ModeCreate
	f.editing = nil
}

// StartEdit seeds the draft from r and remembers which record is edited.
func (f *Form) StartEdit(r models.Record) {
	f.draft = models.DraftFromRecord(r)
	f.mode = ModeEdit
	f.editing = &r
}

// SetField stores raw into the named field. The phone keeps digits only.
func (f *Form) SetField(field Field, raw string) error {
	switch field {
	case FieldName:
		f.draft.Name = raw
	case FieldEmail:
		f.draft.Email = raw
	case FieldPhone:
		f.draft.Phone = models.DigitsOnly(raw)
	case FieldBirthDate:
		f.draft.BirthDate = raw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Value returns the current draft value of field.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.draft.Name
	case FieldEmail:
		return f.draft.Email
	case FieldPhone:
		return f.draft.Phone
	case FieldBirthDate:
		return f.draft.BirthDate
	}
	return ""
}

// Reset clears the draft and the create/edit binding. The pending flag is
// left alone; it belongs to the in-flight call.
func (f *Form) Reset() {
	f.draft = models.Draft{}
	f.mode = ModeNone
	f.editing = nil
}

// Validate applies the required constraint on name and email.
func (f *Form) Validate() error {
	var errs []error
	if strings.TrimSpace(f.draft.Name) == "" {
		errs = append(errs, fmt.Errorf("%s: %w", FieldName, ErrRequired))
	}
	if strings.TrimSpace(f.draft.Email) == "" {
		errs = append(errs, fmt.Errorf("%s: %w", FieldEmail, ErrRequired))
	}
	return errors.Join(errs...)
}

// BeginSubmit marks a submission as in flight. Only one is allowed at a time.
func (f *Form) BeginSubmit() error {
	if f.mode == ModeNone {
		return ErrNotStarted
	}
	if f.pending {
		return ErrSubmitPending
	}
	f.pending = true
	return nil
}

// EndSubmit clears the in-flight marker.
func (f *Form) EndSubmit() {
	f.pending = false
}

func (f *Form) Pending() bool {
	return f.pending
}

func (f *Form) Draft() models.Draft {
	return f.draft
}

func (f *Form) Mode() Mode {
	return f.mode
}

// Editing returns the record the form was seeded from in edit mode.
func (f *Form) Editing() (models.Record, bool) {
	if f.editing == nil {
		return models.Record{}, false
	}
	return *f.editing, true
}
