package contactmem

import (
	"context"
	"testing"

	"github.com/oggyb/portfolio-inbox/internal/domain/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	c, err := contact.NewContact("Ann", "ann@x.com", "Hi", contact.ClientMeta{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	updated, err := repo.UpdateStatus(ctx, c.ID, contact.StatusRead)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, updated.Status)

	st, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, contact.Stats{Total: 1, Read: 1}, st)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), contact.ErrNotFound)

	list, err := repo.List(ctx, contact.ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	c, _ := contact.NewContact("Ann", "ann@x.com", "Hi", contact.ClientMeta{})
	require.NoError(t, repo.Create(ctx, c))

	got, _ := repo.Get(ctx, c.ID)
	got.Status = contact.StatusReplied

	again, _ := repo.Get(ctx, c.ID)
	assert.Equal(t, contact.StatusNew, again.Status)
}

func TestRepository_ImportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	c, _ := contact.NewContact("Ann", "ann@x.com", "Hi", contact.ClientMeta{})

	inserted, err := repo.Import(ctx, c)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Import(ctx, c)
	require.NoError(t, err)
	assert.False(t, inserted)

	st, _ := repo.Stats(ctx)
	assert.EqualValues(t, 1, st.Total)
}

func TestRepository_Down(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	repo.SetDown(true)

	c, _ := contact.NewContact("Ann", "ann@x.com", "Hi", contact.ClientMeta{})
	assert.ErrorIs(t, repo.Create(ctx, c), contact.ErrUnavailable)

	_, err := repo.List(ctx, contact.ListOptions{})
	assert.ErrorIs(t, err, contact.ErrUnavailable)

	_, err = repo.UpdateStatus(ctx, "x", contact.StatusRead)
	assert.ErrorIs(t, err, contact.ErrUnavailable)
}
