// Package modal tracks the edit dialog: closed, or open and bound to one
// record. Opening and closing drive the edit form.
package modal

import (
	"errors"

	"github.com/dmitrijs2005/clientdesk/internal/client/form"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

var ErrAlreadyOpen = errors.New("edit dialog is already open")

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Controller owns at most one open dialog.
type Controller struct {
	state State
	bound models.Record
	form  *form.Form
}

func New(f *form.Form) *Controller {
	return &Controller{form: f}
}

// Open binds the dialog to r and seeds the edit form from it.
func (c *Controller) Open(r models.Record) error {
	if c.state == Open {
		return ErrAlreadyOpen
	}
	c.state = Open
	c.bound = r
	c.form.StartEdit(r)
	return nil
}

// Close resets the form. Closing a closed dialog does nothing.
func (c *Controller) Close() {
	if c.state == Closed {
		return
	}
	c.state = Closed
	c.bound = models.Record{}
	c.form.Reset()
}

// Rebind points an open dialog at a fresher copy of its record.
func (c *Controller) Rebind(r models.Record) {
	if c.state == Open && c.bound.ID == r.ID {
		c.bound = r
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) IsOpen() bool {
	return c.state == Open
}

// Bound returns the record the open dialog edits.
func (c *Controller) Bound() (models.Record, bool) {
	if c.state != Open {
		return models.Record{}, false
	}
	return c.bound, true
}
