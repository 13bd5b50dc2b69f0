// Package services contains the client's sync layer: the only code that
// calls the remote API. It reports every mutation through a notifier and
// folds successful results back into the record store.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/client/client"
	"github.com/dmitrijs2005/clientdesk/internal/client/models"
	"github.com/dmitrijs2005/clientdesk/internal/client/notify"
	"github.com/dmitrijs2005/clientdesk/internal/client/store"
	"github.com/dmitrijs2005/clientdesk/internal/logging"
)

// ErrCancelled is returned when the user declines a confirmation prompt.
var ErrCancelled = errors.New("cancelled by user")

const (
	fallbackCreate = "Failed to create customer."
	fallbackUpdate = "Failed to update customer."
	fallbackDelete = "Failed to delete customer."
)

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// CustomerService defines the sync operations of the client.
//
// Contract:
//   - FetchAll: full list for the initial load; failures degrade to an empty
//     list and are logged, never returned.
//   - Create: submit a new record; the store is not touched.
//   - Update: submit the full draft; on success the store entry is replaced
//     by the server's answer.
//   - Delete: confirm first, then delete; on success the entry leaves the store.
//
// Mutations report pending, then exactly one success or error. Errors are
// returned to the caller after being reported; nothing is retried.
type CustomerService interface {
	FetchAll(ctx context.Context) []models.Record
	Create(ctx context.Context, draft models.Draft) (*models.Record, error)
	Update(ctx context.Context, id string, draft models.Draft) (*models.Record, error)
	Delete(ctx context.Context, id, name string) error
}

type customerService struct {
	client   client.Client
	store    *store.Store
	notifier notify.Notifier
	confirm  Confirmer
	logger   logging.Logger
	timeout  time.Duration
}

type Option func(*customerService)

// WithRequestTimeout bounds every API call by d. The deadline starts when
// the request is about to be sent, after any confirmation prompt.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *customerService) { s.timeout = d }
}

func NewCustomerService(c client.Client, s *store.Store, n notify.Notifier, confirm Confirmer, logger logging.Logger, opts ...Option) CustomerService {
	svc := &customerService{
		client:   c,
		store:    s,
		notifier: n,
		confirm:  confirm,
		logger:   logger.With("module", "sync"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *customerService) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *customerService) FetchAll(ctx context.Context) []models.Record {
	rctx, cancel := s.requestContext(ctx)
	defer cancel()

	records, err := s.client.List(rctx)
	if err != nil {
		s.logger.Error(ctx, "failed to fetch customers", "error", err)
		return []models.Record{}
	}
	return records
}

func (s *customerService) Create(ctx context.Context, draft models.Draft) (*models.Record, error) {
	op := s.notifier.Begin("Saving customer...")

	rctx, cancel := s.requestContext(ctx)
	defer cancel()

	created, err := s.client.Create(rctx, draft)
	if err != nil {
		s.logger.Error(ctx, "create customer failed", "error", err)
		op.Fail(client.UserMessage(err, fallbackCreate))
		return nil, fmt.Errorf("create customer: %w", err)
	}

	op.Succeed(fmt.Sprintf("Customer %q created successfully.", created.Name))
	return created, nil
}

func (s *customerService) Update(ctx context.Context, id string, draft models.Draft) (*models.Record, error) {
	op := s.notifier.Begin("Updating customer...")

	rctx, cancel := s.requestContext(ctx)
	defer cancel()

	updated, err := s.client.Update(rctx, id, draft)
	if err != nil {
		s.logger.Error(ctx, "update customer failed", "id", id, "error", err)
		op.Fail(client.UserMessage(err, fallbackUpdate))
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.store.ReplaceOne(ctx, *updated)
	op.Succeed(fmt.Sprintf("Customer %q updated successfully.", updated.Name))
	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, id, name string) error {
	if !s.confirm.Confirm(fmt.Sprintf("Are you sure you want to delete customer %q?", name)) {
		return ErrCancelled
	}

	op := s.notifier.Begin(fmt.Sprintf("Deleting customer %q...", name))

	rctx, cancel := s.requestContext(ctx)
	defer cancel()

	if err := s.client.Delete(rctx, id); err != nil {
		s.logger.Error(ctx, "delete customer failed", "id", id, "error", err)
		op.Fail(client.UserMessage(err, fallbackDelete))
		return fmt.Errorf("delete customer: %w", err)
	}

	s.store.RemoveOne(id)
	op.Succeed(fmt.Sprintf("Customer %q deleted successfully.", name))
	return nil
}
