package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*SQLiteRepository)(nil)
	_ Repository = (*MemoryRepository)(nil)
)

func TestMemoryRepository_CreateFindList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "hash", FirstName: "A"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	got, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
	assert.Equal(t, "A", got.FirstName)

	withSecret, err := repo.FindByEmailWithSecret(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", withSecret.PasswordHash)

	_, err = repo.FindByEmail(ctx, "b@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].PasswordHash)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, &models.User{Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	created.FirstName = "mutated"

	got, err := repo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, got.FirstName)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, &models.User{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, common.ErrIdentityExists)
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryRepository().Create(ctx, &models.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepository_ConcurrentRegistration(t *testing.T) {
	assertSingleWinner(t, NewMemoryRepository())
}
