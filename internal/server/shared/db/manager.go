// Package db selects and owns the storage backend of the server.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/clientdesk/internal/server/customers"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	// Conn is nil for the in-memory backend.
	Conn() *sql.DB
	Customers() customers.Repository
	Close() error
}
