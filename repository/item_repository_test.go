package repository

import (
	"context"
	"testing"

	"minesbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_GrantAndGetOwned(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	repo := NewItemRepository(testDB.DB)
	ctx := context.Background()

	_, err := users.Create(ctx, 300001, "alice", 100)
	require.NoError(t, err)

	t.Run("no items initially", func(t *testing.T) {
		owned, err := repo.GetOwned(ctx, 300001)
		require.NoError(t, err)
		assert.Empty(t, owned)
	})

	t.Run("granted items returned in acquisition order", func(t *testing.T) {
		require.NoError(t, repo.Grant(ctx, 300001, "star"))
		require.NoError(t, repo.Grant(ctx, 300001, "crown"))

		owned, err := repo.GetOwned(ctx, 300001)
		require.NoError(t, err)
		assert.Equal(t, []string{"star", "crown"}, owned)
	})

	t.Run("duplicate grant is a no-op", func(t *testing.T) {
		require.NoError(t, repo.Grant(ctx, 300001, "star"))

		owned, err := repo.GetOwned(ctx, 300001)
		require.NoError(t, err)
		assert.Len(t, owned, 2)
	})

	t.Run("grant to unknown user fails the foreign key", func(t *testing.T) {
		err := repo.Grant(ctx, 300999, "star")
		assert.Error(t, err)
	})
}

func TestItemRepository_Has(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	repo := NewItemRepository(testDB.DB)
	ctx := context.Background()

	_, err := users.Create(ctx, 300002, "bob", 100)
	require.NoError(t, err)
	require.NoError(t, repo.Grant(ctx, 300002, "rocket"))

	t.Run("owned item", func(t *testing.T) {
		owned, err := repo.Has(ctx, 300002, "rocket")
		require.NoError(t, err)
		assert.True(t, owned)
	})

	t.Run("unowned item", func(t *testing.T) {
		owned, err := repo.Has(ctx, 300002, "crown")
		require.NoError(t, err)
		assert.False(t, owned)
	})
}

func TestItemRepository_Revoke(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	repo := NewItemRepository(testDB.DB)
	ctx := context.Background()

	_, err := users.Create(ctx, 300003, "carol", 100)
	require.NoError(t, err)
	require.NoError(t, repo.Grant(ctx, 300003, "fire"))

	t.Run("revoke owned item", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, 300003, "fire"))

		owned, err := repo.Has(ctx, 300003, "fire")
		require.NoError(t, err)
		assert.False(t, owned)
	})

	t.Run("revoke unowned item fails", func(t *testing.T) {
		err := repo.Revoke(ctx, 300003, "fire")
		assert.Error(t, err)
	})
}

func TestItemRepository_RemoveAll(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	repo := NewItemRepository(testDB.DB)
	ctx := context.Background()

	_, err := users.Create(ctx, 300004, "dave", 100)
	require.NoError(t, err)
	_, err = users.Create(ctx, 300005, "erin", 100)
	require.NoError(t, err)

	require.NoError(t, repo.Grant(ctx, 300004, "star"))
	require.NoError(t, repo.Grant(ctx, 300005, "crown"))

	require.NoError(t, repo.RemoveAll(ctx))

	for _, id := range []int64{300004, 300005} {
		owned, err := repo.GetOwned(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, owned)
	}
}
