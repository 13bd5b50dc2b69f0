package customers

import (
	"context"
)

// Repository stores customers. Missing ids yield common.ErrNotFound and a
// second record with the same email yields common.ErrAlreadyExists.
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, c *Customer) (*Customer, error)
	Update(ctx context.Context, c *Customer) (*Customer, error)
	Delete(ctx context.Context, id string) error
}
