package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/clientdesk/internal/client/form"
)

// CreateOnce submits one create form filled from values.
func (a *App) CreateOnce(ctx context.Context, values map[form.Field]string) error {
	a.ctrl.StartCreate()
	for _, f := range form.Fields {
		if err := a.ctrl.SetCreateField(f, values[f]); err != nil {
			return err
		}
	}

	created, err := a.ctrl.SubmitCreate(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", a.ctrl.LastError())
		return err
	}
	printRecord(a.out, *created, a.loc)
	return nil
}

// UpdateOnce loads the list, applies changes to the record's draft and saves it.
func (a *App) UpdateOnce(ctx context.Context, id string, changes map[form.Field]string) error {
	a.ctrl.Load(ctx)
	if err := a.ctrl.OpenEdit(id); err != nil {
		return err
	}
	defer a.ctrl.CloseModal()

	for f, v := range changes {
		if err := a.ctrl.SetEditField(f, v); err != nil {
			return err
		}
	}

	updated, err := a.ctrl.SubmitEdit(ctx)
	if err != nil {
		return err
	}
	printRecord(a.out, *updated, a.loc)
	return nil
}

// DeleteOnce loads the list and deletes id, asking first unless yes is set.
func (a *App) DeleteOnce(ctx context.Context, id string, yes bool) error {
	a.assumeYes = yes
	defer func() { a.assumeYes = false }()

	a.ctrl.Load(ctx)

	return a.Delete(ctx, id)
}
