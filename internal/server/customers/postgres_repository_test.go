package customers

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/clientdesk/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "email", "phone", "birth_date", "created_at", "updated_at"}

const (
	selectAll = `(?s)^SELECT\s+id,\s*name,\s*email,\s*phone,\s*birth_date,\s*created_at,\s*updated_at\s+FROM\s+customers\s+ORDER\s+BY\s+created_at\s+ASC$`
	selectOne = `(?s)^SELECT\s+id,.*FROM\s+customers\s+WHERE\s+id\s*=\s*\$1$`
	insertQ   = `(?s)^INSERT\s+INTO\s+customers\s*\(id,\s*name,\s*email,\s*phone,\s*birth_date,\s*created_at,\s*updated_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)$`
	updateQ   = `(?s)^UPDATE\s+customers\s+SET\s+name\s*=\s*\$2,\s*email\s*=\s*\$3,\s*phone\s*=\s*\$4,\s*birth_date\s*=\s*\$5,\s*updated_at\s*=\s*\$6\s+WHERE\s+id\s*=\s*\$1$`
	deleteQ   = `(?s)^DELETE\s+FROM\s+customers\s+WHERE\s+id\s*=\s*\$1$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

var (
	t1 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
)

func TestList_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	bd := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("c1", "Ana", "ana@example.com", "11999", bd, t1, t1).
		AddRow("c2", "Bruno", "bruno@example.com", nil, nil, t2, t2)
	mock.ExpectQuery(selectAll).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Phone)
	assert.Equal(t, "11999", *got[0].Phone)
	require.NotNil(t, got[0].BirthDate)
	assert.True(t, bd.Equal(*got[0].BirthDate))
	assert.Nil(t, got[1].Phone)
	assert.Nil(t, got[1].BirthDate)
}

func TestList_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(selectAll).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(selectAll).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())
}

func TestGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectOne).WithArgs("c1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "Ana", "ana@example.com", nil, nil, t1, t2))

		got, err := repo.Get(context.Background(), "c1")
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name)
		assert.Equal(t, t2, got.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(selectOne).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "ghost")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestCreate(t *testing.T) {
	phone := "11999"
	c := &Customer{ID: "c1", Name: "Ana", Email: "ana@example.com", Phone: &phone, CreatedAt: t1, UpdatedAt: t1}

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertQ).
			WithArgs("c1", "Ana", "ana@example.com", "11999", nil, t1, t1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		got, err := repo.Create(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertQ).WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key"})

		_, err := repo.Create(context.Background(), c)
		assert.ErrorIs(t, err, common.ErrAlreadyExists)
	})

	t.Run("other error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(insertQ).WillReturnError(errors.New("boom"))

		_, err := repo.Create(context.Background(), c)
		require.Error(t, err)
		assert.NotErrorIs(t, err, common.ErrAlreadyExists)
	})
}

func TestUpdate(t *testing.T) {
	c := &Customer{ID: "c1", Name: "Ana", Email: "ana@example.com", UpdatedAt: t2}

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(updateQ).
			WithArgs("c1", "Ana", "ana@example.com", nil, nil, t2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := repo.Update(context.Background(), c)
		require.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(updateQ).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Update(context.Background(), c)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(updateQ).WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.Update(context.Background(), c)
		assert.ErrorIs(t, err, common.ErrAlreadyExists)
	})
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(deleteQ).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), "c1"))
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(deleteQ).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), common.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(deleteQ).WithArgs("c1").WillReturnError(errors.New("db down"))
		err := repo.Delete(context.Background(), "c1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})
}
