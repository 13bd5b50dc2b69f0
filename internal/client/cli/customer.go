package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/form"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/common"
)

var fieldPrompts = []struct {
	field form.Field
	label string
}{
	{form.FieldName, "Name"},
	{form.FieldEmail, "Email"},
	{form.FieldPhone, "Phone (digits only)"},
	{form.FieldBirthDate, "Birth date (YYYY-MM-DD)"},
}

func draftValue(d models.Draft, f form.Field) string {
	switch f {
	case form.FieldName:
		return d.Name
	case form.FieldEmail:
		return d.Email
	case form.FieldPhone:
		return d.Phone
	case form.FieldBirthDate:
		return d.BirthDate
	}
	return ""
}

// promptFields walks the form fields, offering the draft's values as defaults.
func (a *App) promptFields(d models.Draft, set func(form.Field, string) error) error {
	for _, p := range fieldPrompts {
		v, err := GetTextWithDefault(a.reader, p.label, draftValue(d, p.field), a.out)
		if err != nil {
			return err
		}
		if err := set(p.field, v); err != nil {
			return err
		}
	}
	return nil
}

// List prints the stored customers.
func (a *App) List(ctx context.Context) error {
	printHeader(a.out, "Customer list")
	printRecords(a.out, a.ctrl.Records(), a.loc)
	return nil
}

// Reload fetches the list from the server and prints it.
func (a *App) Reload(ctx context.Context) error {
	a.ctrl.Load(ctx)
	return a.List(ctx)
}

func (a *App) Show(ctx context.Context, id string) error {
	r, ok := a.ctrl.Record(id)
	if !ok {
		fmt.Fprintf(a.out, "Customer %s not found.\n", id)
		return common.ErrNotFound
	}
	printRecord(a.out, r, a.loc)
	return nil
}

// New runs the create form until it is saved or the user gives up. The
// inline error of the last attempt is shown above the form.
func (a *App) New(ctx context.Context) error {
	a.ctrl.StartCreate()

	for {
		printHeader(a.out, "Add customer")
		if msg := a.ctrl.LastError(); msg != "" {
			fmt.Fprintf(a.out, "Error: %s\n", msg)
		}

		if err := a.promptFields(a.ctrl.CreateDraft(), a.ctrl.SetCreateField); err != nil {
			return err
		}

		_, err := a.ctrl.SubmitCreate(ctx)
		if err == nil {
			return a.List(ctx)
		}

		fmt.Fprintf(a.out, "Error: %s\n", a.ctrl.LastError())
		if !Confirm(a.reader, "Try again?", a.out) {
			return err
		}
	}
}

// Edit opens the edit dialog for id. A rejected save keeps the dialog and
// its draft; the user may retry or close it.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.ctrl.OpenEdit(id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "Customer %s not found.\n", id)
		} else {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
		return err
	}

	for {
		r, _ := a.ctrl.Dialog()
		printHeader(a.out, fmt.Sprintf("Edit customer %q", r.Name))

		if err := a.promptFields(a.ctrl.EditDraft(), a.ctrl.SetEditField); err != nil {
			a.ctrl.CloseModal()
			return err
		}
		if !Confirm(a.reader, "Save changes?", a.out) {
			a.ctrl.CloseModal()
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		}

		_, err := a.ctrl.SubmitEdit(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, form.ErrRequired) {
			fmt.Fprintf(a.out, "Error: %s\n", err)
		}
		if _, open := a.ctrl.Dialog(); !open {
			return err
		}

		if !Confirm(a.reader, "Edit again?", a.out) {
			a.ctrl.CloseModal()
			return err
		}
	}
}

// Delete asks for confirmation and removes id. The request deadline starts
// only after the user has answered.
func (a *App) Delete(ctx context.Context, id string) error {
	err := a.ctrl.Delete(ctx, id)
	switch {
	case errors.Is(err, services.ErrCancelled):
		fmt.Fprintln(a.out, "Cancelled.")
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintf(a.out, "Customer %s not found.\n", id)
	}
	return err
}

// Toasts prints the notifications that have not expired yet.
func (a *App) Toasts(ctx context.Context) error {
	active := a.notifier.Active(time.Now())
	if len(active) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return nil
	}
	for _, t := range active {
		fmt.Fprintf(a.out, "#%d [%s] %s\n", t.ID, t.Kind, t.Message)
	}
	return nil
}

func (a *App) Dismiss(ctx context.Context, id int) error {
	if !a.notifier.Dismiss(id) {
		fmt.Fprintf(a.out, "No dismissable notification #%d.\n", id)
		return common.ErrNotFound
	}
	return nil
}
