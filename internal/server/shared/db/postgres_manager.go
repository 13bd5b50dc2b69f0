package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/clientdesk/internal/server/customers"
	"github.com/dmitrijs2005/clientdesk/internal/server/migrations"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.nhat.io/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
)

type PostgresRepositoryManager struct {
	db        *sql.DB
	customers customers.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Customers() customers.Repository {
	return m.customers
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

// openInstrumented opens dsn through an otelsql-wrapped pgx driver, so every
// query becomes a span of tp.
func openInstrumented(dsn string, tp trace.TracerProvider) (*sql.DB, error) {
	pgCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid dsn: %w", err)
	}

	driverName, err := otelsql.Register("pgx",
		otelsql.AllowRoot(),
		otelsql.TraceQueryWithoutArgs(),
		otelsql.TraceRowsClose(),
		otelsql.TraceRowsAffected(),
		otelsql.WithDatabaseName(pgCfg.Database),
		otelsql.WithSystem(semconv.DBSystemPostgreSQL),
		otelsql.WithTracerProvider(tp),
	)
	if err != nil {
		return nil, fmt.Errorf("could not register otelsql: %w", err)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := otelsql.RecordStats(db, otelsql.WithSystem(semconv.DBSystemPostgreSQL)); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not record db stats: %w", err)
	}

	return db, nil
}

// NewPostgresRepositoryManager connects to dsn and migrates the schema.
func NewPostgresRepositoryManager(ctx context.Context, dsn string, tp trace.TracerProvider) (RepositoryManager, error) {
	db, err := openInstrumented(dsn, tp)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		customers: customers.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

// New picks Postgres when dsn is set and the in-memory backend otherwise.
func New(ctx context.Context, dsn string, tp trace.TracerProvider) (RepositoryManager, error) {
	if dsn == "" {
		return NewInMemoryRepositoryManager(), nil
	}
	return NewPostgresRepositoryManager(ctx, dsn, tp)
}
