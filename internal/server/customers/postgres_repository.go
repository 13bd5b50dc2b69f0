package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdesk/internal/common"
	"github.com/dmitrijs2005/clientdesk/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*Customer, error) {
	var (
		c         Customer
		phone     sql.NullString
		birthDate sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &birthDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if birthDate.Valid {
		t := birthDate.Time
		c.BirthDate = &t
	}
	return &c, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Customer, error) {
	query :=
		`SELECT id, name, email, phone, birth_date, created_at, updated_at
		 FROM customers
		 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Customer, error) {
	query :=
		`SELECT id, name, email, phone, birth_date, created_at, updated_at
		 FROM customers
		 WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *Customer) (*Customer, error) {
	query :=
		`INSERT INTO customers (id, name, email, phone, birth_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.BirthDate, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *Customer) (*Customer, error) {
	query :=
		`UPDATE customers
		 SET name = $2, email = $3, phone = $4, birth_date = $5, updated_at = $6
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.BirthDate, c.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrNotFound
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM customers WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
