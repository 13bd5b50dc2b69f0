package client

import (
	"context"

	"github.com/dmitrijs2005/clientdesk/internal/client/models"
)

type Client interface {
	List(ctx context.Context) ([]models.Record, error)
	Create(ctx context.Context, draft models.Draft) (*models.Record, error)
	Update(ctx context.Context, id string, draft models.Draft) (*models.Record, error)
	Delete(ctx context.Context, id string) error
}
