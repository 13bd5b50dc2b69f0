package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/clientdesk/internal/server/customers"
)

type InMemoryRepositoryManager struct {
	customers customers.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Customers() customers.Repository {
	return m.customers
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{customers: customers.NewInMemoryRepository()}
}
