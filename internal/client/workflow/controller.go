// Package workflow ties the client state objects together: the record store,
// the create and edit forms, the edit dialog and the sync service. Views and
// commands read value snapshots from it and call its handlers.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/form"
	"github.com/dmitrijs2005/clientdesk/internal/client/modal"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/services"
	"github.com/dmitrijs2005/clientdesk/internal/client/store"
	"github.com/dmitrijs2005/clientdesk/internal/common"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

var ErrNoDialog = errors.New("no edit dialog is open")

// Controller is driven from a single goroutine.
type Controller struct {
	store  *store.Store
	create *form.Form
	edit   *form.Form
	modal  *modal.Controller
	sync   services.CustomerService
	logger logging.Logger

	lastErr string
}

func New(s *store.Store, sync services.CustomerService, logger logging.Logger) *Controller {
	edit := form.New()
	return &Controller{
		store:  s,
		create: form.New(),
		edit:   edit,
		modal:  modal.New(edit),
		sync:   sync,
		logger: logger.With("module", "workflow"),
	}
}

// Load replaces the store with the server's list. A failed fetch leaves an
// empty list. An open dialog follows its record or closes when it is gone.
func (c *Controller) Load(ctx context.Context) {
	records := c.sync.FetchAll(ctx)
	c.store.ReplaceAll(records)
	c.logger.Debug(ctx, "customer list loaded", "count", c.store.Len())

	if bound, ok := c.modal.Bound(); ok {
		if fresh, found := c.store.Get(bound.ID); found {
			c.modal.Rebind(fresh)
		} else {
			c.modal.Close()
		}
	}
}

// forget drops a record the server no longer knows.
func (c *Controller) forget(ctx context.Context, id string) {
	c.store.RemoveOne(id)
	if bound, ok := c.modal.Bound(); ok && bound.ID == id {
		c.modal.Close()
	}
	c.logger.Warn(ctx, "customer vanished on server", "id", id)
}

func (c *Controller) Records() []models.Record {
	return c.store.Snapshot()
}

func (c *Controller) Count() int {
	return c.store.Len()
}

func (c *Controller) Record(id string) (models.Record, bool) {
	return c.store.Get(id)
}

// StartCreate opens a blank create form.
func (c *Controller) StartCreate() {
	c.create.StartCreate()
	c.lastErr = ""
}

func (c *Controller) SetCreateField(field form.Field, raw string) error {
	return c.create.SetField(field, raw)
}

func (c *Controller) CreateDraft() models.Draft {
	return c.create.Draft()
}

func (c *Controller) CreatePending() bool {
	return c.create.Pending()
}

// LastError is the inline error of the create form, empty after a success.
func (c *Controller) LastError() string {
	return c.lastErr
}

// SubmitCreate validates and posts the create form. On success the form is
// cleared and the list is reloaded from the server.
func (c *Controller) SubmitCreate(ctx context.Context) (*models.Record, error) {
	if err := c.create.Validate(); err != nil {
		c.lastErr = err.Error()
		return nil, err
	}
	if err := c.create.BeginSubmit(); err != nil {
		return nil, err
	}
	defer c.create.EndSubmit()

	created, err := c.sync.Create(ctx, c.create.Draft())
	if err != nil {
		c.lastErr = client.UserMessage(err, "Failed to create customer.")
		return nil, err
	}

	c.lastErr = ""
	c.create.Reset()
	c.Load(ctx)
	return created, nil
}

// OpenEdit opens the edit dialog for the stored record with the given id.
func (c *Controller) OpenEdit(id string) error {
	r, ok := c.store.Get(id)
	if !ok {
		return fmt.Errorf("customer %s: %w", id, common.ErrNotFound)
	}
	return c.modal.Open(r)
}

func (c *Controller) SetEditField(field form.Field, raw string) error {
	if !c.modal.IsOpen() {
		return ErrNoDialog
	}
	return c.edit.SetField(field, raw)
}

func (c *Controller) EditDraft() models.Draft {
	return c.edit.Draft()
}

// Dialog returns the record bound to the open edit dialog.
func (c *Controller) Dialog() (models.Record, bool) {
	return c.modal.Bound()
}

// SubmitEdit sends the edit draft. The dialog closes only on success; after
// a rejection it stays open with the draft intact, unless the server no
// longer has the record.
func (c *Controller) SubmitEdit(ctx context.Context) (*models.Record, error) {
	bound, ok := c.modal.Bound()
	if !ok {
		return nil, ErrNoDialog
	}
	if err := c.edit.Validate(); err != nil {
		return nil, err
	}
	if err := c.edit.BeginSubmit(); err != nil {
		return nil, err
	}

	updated, err := c.sync.Update(ctx, bound.ID, c.edit.Draft())
	c.edit.EndSubmit()
	if err != nil {
		if client.IsNotFound(err) {
			c.forget(ctx, bound.ID)
		}
		return nil, err
	}

	c.modal.Close()
	return updated, nil
}

// CloseModal handles both cancel and close of the dialog.
func (c *Controller) CloseModal() {
	c.modal.Close()
}

func (c *Controller) ModalState() modal.State {
	return c.modal.State()
}

// Delete asks for confirmation and removes the record. Deleting the record
// an open dialog is bound to also closes the dialog.
func (c *Controller) Delete(ctx context.Context, id string) error {
	r, ok := c.store.Get(id)
	if !ok {
		return fmt.Errorf("customer %s: %w", id, common.ErrNotFound)
	}
	if err := c.sync.Delete(ctx, r.ID, r.Name); err != nil {
		if client.IsNotFound(err) {
			c.forget(ctx, id)
		}
		return err
	}
	if bound, ok := c.modal.Bound(); ok && bound.ID == id {
		c.modal.Close()
	}
	return nil
}
