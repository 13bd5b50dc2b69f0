package customers

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/clientdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInMemoryRepository()

	_, err := r.Create(ctx, &Customer{ID: "1", Name: "Ana", Email: "ana@example.com", CreatedAt: t1})
	require.NoError(t, err)
	_, err = r.Create(ctx, &Customer{ID: "2", Name: "Bruno", Email: "bruno@example.com", CreatedAt: t2})
	require.NoError(t, err)

	_, err = r.Create(ctx, &Customer{ID: "3", Email: "ANA@example.com"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)

	list[0].Name = "mutated"
	got, err := r.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name, "List returns a copy")

	updated, err := r.Update(ctx, &Customer{ID: "1", Name: "Ana Maria", Email: "ana@example.com", UpdatedAt: t2})
	require.NoError(t, err)
	assert.Equal(t, t1, updated.CreatedAt, "created_at survives updates")

	_, err = r.Update(ctx, &Customer{ID: "1", Email: "bruno@example.com"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	_, err = r.Update(ctx, &Customer{ID: "9"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, r.Delete(ctx, "1"))
	assert.ErrorIs(t, r.Delete(ctx, "1"), common.ErrNotFound)
	_, err = r.Get(ctx, "1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	list, _ = r.List(ctx)
	assert.Len(t, list, 1)
}
