package repository

import (
	"context"
	"testing"

	"inventory/internal/inventory/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLRepository {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.Close()
	})

	repo := NewSQLRepository(db, "sqlite3")
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func TestSQLCreateAndGetByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	apple := &model.Item{Name: "Apple", CreatedBy: "u_1", UpdatedBy: "u_1"}
	require.NoError(t, repo.CreateItem(ctx, apple))
	assert.NotEmpty(t, apple.ID)
	assert.Equal(t, model.StatusActive, apple.Status)

	fetched, err := repo.GetItemByName(ctx, "Apple")
	require.NoError(t, err)

	assert.Equal(t, apple.ID, fetched.ID)
	assert.Equal(t, apple.Name, fetched.Name)
	assert.Equal(t, apple.Description, fetched.Description)
	assert.Equal(t, apple.Quantity, fetched.Quantity)
	assert.Equal(t, apple.Status, fetched.Status)
	assert.Equal(t, apple.CreatedBy, fetched.CreatedBy)
	assert.True(t, apple.CreatedAt.Equal(fetched.CreatedAt))
	assert.True(t, apple.UpdatedAt.Equal(fetched.UpdatedAt))
	assert.Nil(t, fetched.DeletedAt)
}

func TestSQLCreateDuplicateName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateItem(ctx, &model.Item{Name: "Apple"}))

	err := repo.CreateItem(ctx, &model.Item{Name: "Apple"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSQLGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetItemByName(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLUpdateItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateItem(ctx, &model.Item{Name: "Apple", Quantity: 1}))

	desc := "granny smith"
	qty := int64(5)
	updated, err := repo.UpdateItem(ctx, "Apple", model.ItemUpdate{
		Description: &desc,
		Quantity:    &qty,
		UpdatedBy:   "u_2",
	})
	require.NoError(t, err)
	assert.Equal(t, "granny smith", updated.Description)
	assert.Equal(t, int64(5), updated.Quantity)
	assert.Equal(t, "u_2", updated.UpdatedBy)

	t.Run("rename", func(t *testing.T) {
		newName := "Pear"
		renamed, err := repo.UpdateItem(ctx, "Apple", model.ItemUpdate{Name: &newName, UpdatedBy: "u_2"})
		require.NoError(t, err)
		assert.Equal(t, "Pear", renamed.Name)

		_, err = repo.GetItemByName(ctx, "Apple")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rename onto existing name conflicts", func(t *testing.T) {
		require.NoError(t, repo.CreateItem(ctx, &model.Item{Name: "Banana"}))

		taken := "Banana"
		_, err := repo.UpdateItem(ctx, "Pear", model.ItemUpdate{Name: &taken, UpdatedBy: "u_2"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := repo.UpdateItem(ctx, "nope", model.ItemUpdate{Description: &desc, UpdatedBy: "u_2"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLSoftDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateItem(ctx, &model.Item{Name: "Apple"}))
	require.NoError(t, repo.SoftDeleteItem(ctx, "Apple", "u_1"))

	_, err := repo.GetItemByName(ctx, "Apple")
	assert.ErrorIs(t, err, ErrNotFound)

	t.Run("deleted name can be reused", func(t *testing.T) {
		assert.NoError(t, repo.CreateItem(ctx, &model.Item{Name: "Apple"}))
	})

	t.Run("missing item", func(t *testing.T) {
		err := repo.SoftDeleteItem(ctx, "nope", "u_1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLFindItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []*model.Item{
		{Name: "Apple", Status: model.StatusActive},
		{Name: "Apricot", Status: model.StatusArchived},
		{Name: "Banana", Status: model.StatusActive},
	}
	for _, item := range seed {
		require.NoError(t, repo.CreateItem(ctx, item))
	}
	require.NoError(t, repo.SoftDeleteItem(ctx, "Banana", "u_1"))

	t.Run("excludes deleted", func(t *testing.T) {
		items, err := repo.FindItems(ctx, model.ItemFilter{})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		items, err := repo.FindItems(ctx, model.ItemFilter{Status: model.StatusArchived})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Apricot", items[0].Name)
	})

	t.Run("name prefix filter", func(t *testing.T) {
		items, err := repo.FindItems(ctx, model.ItemFilter{NamePrefix: "Ap"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		items, err := repo.FindItems(ctx, model.ItemFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Apricot", items[0].Name)
	})

	t.Run("offset without limit", func(t *testing.T) {
		items, err := repo.FindItems(ctx, model.ItemFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Apricot", items[0].Name)
	})

	t.Run("prefix with LIKE metacharacters", func(t *testing.T) {
		require.NoError(t, repo.CreateItem(ctx, &model.Item{Name: "100%_juice"}))

		items, err := repo.FindItems(ctx, model.ItemFilter{NamePrefix: "100%_"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "100%_juice", items[0].Name)
	})
}
