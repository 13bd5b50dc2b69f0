// Package notify is the feedback channel for remote operations: every
// operation shows a pending toast that ends as exactly one success or error.
package notify

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type Kind int

const (
	KindPending Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	}
	return "pending"
}

// Toast is one notification as currently displayed.
type Toast struct {
	ID        int
	Kind      Kind
	Message   string
	UpdatedAt time.Time
	// DismissAt is zero while pending.
	DismissAt time.Time
}

// Event is one state change of a toast, kept in order of occurrence.
type Event struct {
	ID      int
	Kind    Kind
	Message string
}

// Notifier is what the sync layer reports to.
type Notifier interface {
	Begin(message string) Operation
	Success(message string)
	Error(message string)
}

// Operation resolves a pending toast. Only the first call has an effect.
type Operation interface {
	Succeed(message string)
	Fail(message string)
}

// Center keeps the toasts and optionally prints every transition.
type Center struct {
	out     io.Writer
	color   bool
	ttl     time.Duration
	now     func() time.Time
	nextID  int
	toasts  []Toast
	history []Event
}

// NewConsole prints toasts to w; toasts auto-dismiss ttl after they resolve.
// Colours are used when w is a terminal.
func NewConsole(w io.Writer, ttl time.Duration) *Center {
	c := &Center{out: w, ttl: ttl, now: time.Now}
	if f, ok := w.(*os.File); ok && isTerminal(int(f.Fd())) {
		c.color = true
	}
	return c
}

// NewRecorder keeps toasts in memory only.
func NewRecorder() *Center {
	return &Center{ttl: 5 * time.Second, now: time.Now}
}

// WithClock replaces the time source.
func (c *Center) WithClock(now func() time.Time) *Center {
	c.now = now
	return c
}

func (c *Center) Begin(message string) Operation {
	c.prune()
	c.nextID++
	t := Toast{ID: c.nextID, Kind: KindPending, Message: message, UpdatedAt: c.now()}
	c.toasts = append(c.toasts, t)
	c.record(t)
	return &operation{center: c, id: t.ID}
}

func (c *Center) Success(message string) {
	c.Begin("").Succeed(message)
}

func (c *Center) Error(message string) {
	c.Begin("").Fail(message)
}

// Dismiss removes a resolved toast before its deadline. Pending toasts stay
// until their operation ends.
func (c *Center) Dismiss(id int) bool {
	i := c.index(id)
	if i < 0 || c.toasts[i].Kind == KindPending {
		return false
	}
	c.toasts = slices.Delete(c.toasts, i, i+1)
	return true
}

// Active lists pending toasts and resolved ones whose deadline is after now.
func (c *Center) Active(now time.Time) []Toast {
	var out []Toast
	for _, t := range c.toasts {
		if t.Kind == KindPending || now.Before(t.DismissAt) {
			out = append(out, t)
		}
	}
	return out
}

// Events returns every transition seen so far.
func (c *Center) Events() []Event {
	return slices.Clone(c.history)
}

// Last returns the most recent transition.
func (c *Center) Last() (Event, bool) {
	if len(c.history) == 0 {
		return Event{}, false
	}
	return c.history[len(c.history)-1], true
}

func (c *Center) resolve(id int, kind Kind, message string) {
	i := c.index(id)
	if i < 0 || c.toasts[i].Kind != KindPending {
		return
	}
	now := c.now()
	t := &c.toasts[i]
	t.Kind = kind
	t.Message = message
	t.UpdatedAt = now
	t.DismissAt = now.Add(c.ttl)
	c.record(*t)
}

func (c *Center) record(t Toast) {
	c.history = append(c.history, Event{ID: t.ID, Kind: t.Kind, Message: t.Message})
	if c.out == nil || t.Message == "" {
		return
	}
	fmt.Fprintln(c.out, c.render(t))
}

func (c *Center) render(t Toast) string {
	label, code := "...", "33"
	switch t.Kind {
	case KindSuccess:
		label, code = "ok", "32"
	case KindError:
		label, code = "error", "31"
	}
	if c.color {
		return fmt.Sprintf("\033[%sm[%s]\033[0m %s", code, label, t.Message)
	}
	return fmt.Sprintf("[%s] %s", label, t.Message)
}

func (c *Center) prune() {
	now := c.now()
	c.toasts = slices.DeleteFunc(c.toasts, func(t Toast) bool {
		return t.Kind != KindPending && !now.Before(t.DismissAt)
	})
}

func (c *Center) index(id int) int {
	return slices.IndexFunc(c.toasts, func(t Toast) bool { return t.ID == id })
}

type operation struct {
	center *Center
	id     int
}

func (o *operation) Succeed(message string) {
	o.center.resolve(o.id, KindSuccess, message)
}

func (o *operation) Fail(message string) {
	o.center.resolve(o.id, KindError, message)
}
