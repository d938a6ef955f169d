package repository

import (
	"context"
	"errors"

	"inventory/internal/inventory/model"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type ItemRepository interface {
	// Create a new item
	CreateItem(ctx context.Context, item *model.Item) error
	// Fetch a live item by its name
	GetItemByName(ctx context.Context, name string) (*model.Item, error)
	// Find items with filter
	FindItems(ctx context.Context, filter model.ItemFilter) ([]*model.Item, error)
	// Apply a partial update to a live item, returning the updated record
	UpdateItem(ctx context.Context, name string, update model.ItemUpdate) (*model.Item, error)
	// Soft delete a live item
	SoftDeleteItem(ctx context.Context, name, deletedBy string) error
	// Initialize Indexes
	EnsureIndexes(ctx context.Context) error
}
