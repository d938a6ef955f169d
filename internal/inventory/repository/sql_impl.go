package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"math"
	"strings"
	"time"

	"inventory/internal/inventory/model"

	"github.com/jmoiron/sqlx"
)

// Schema bootstrap for the sqlite backend. Postgres and MySQL deployments
// are expected to own their schema through migrations.
var sqliteSchema = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    quantity INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    deleted_at DATETIME,
    created_by TEXT NOT NULL DEFAULT '',
    updated_by TEXT NOT NULL DEFAULT '',
    deleted_by TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS uniq_live_item_name ON items(name) WHERE deleted_at IS NULL;
`

type SQLRepository struct {
	DB     *sqlx.DB
	Driver string
}

func NewSQLRepository(db *sqlx.DB, driver string) *SQLRepository {
	return &SQLRepository{DB: db, Driver: driver}
}

func (r *SQLRepository) EnsureIndexes(ctx context.Context) error {
	if r.Driver != "sqlite3" {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, sqliteSchema)
	return err
}

func (r *SQLRepository) CreateItem(ctx context.Context, item *model.Item) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	if item.ID == "" {
		item.ID = newItemID()
	}
	if item.Status == "" {
		item.Status = model.StatusActive
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	item.DeletedAt = nil

	query := `INSERT INTO items
		(id, name, description, quantity, status, created_at, updated_at, created_by, updated_by)
		VALUES (:id, :name, :description, :quantity, :status, :created_at, :updated_at, :created_by, :updated_by)`

	_, err := r.DB.NamedExecContext(ctx, query, item)
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *SQLRepository) GetItemByName(ctx context.Context, name string) (*model.Item, error) {
	query := r.DB.Rebind(`SELECT * FROM items WHERE name = ? AND deleted_at IS NULL`)

	var item model.Item
	err := r.DB.GetContext(ctx, &item, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQLRepository) FindItems(ctx context.Context, filter model.ItemFilter) ([]*model.Item, error) {
	query := `SELECT * FROM items WHERE deleted_at IS NULL`
	args := []interface{}{}

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.NamePrefix != "" {
		query += ` AND name LIKE ? ESCAPE '|'`
		args = append(args, escapeLike(filter.NamePrefix)+"%")
	}

	query += ` ORDER BY created_at ASC, name ASC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// sqlite and MySQL reject OFFSET without a LIMIT clause
		query += ` LIMIT ?`
		args = append(args, int64(math.MaxInt64))
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	items := []*model.Item{}
	err := r.DB.SelectContext(ctx, &items, r.DB.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQLRepository) UpdateItem(ctx context.Context, name string, update model.ItemUpdate) (*model.Item, error) {
	sets := []string{"updated_at = ?", "updated_by = ?"}
	args := []interface{}{time.Now().UTC().Truncate(time.Millisecond), update.UpdatedBy}

	newName := name
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
		newName = *update.Name
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *update.Quantity)
	}
	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}

	query := `UPDATE items SET ` + strings.Join(sets, ", ") + ` WHERE name = ? AND deleted_at IS NULL`
	args = append(args, name)

	res, err := r.DB.ExecContext(ctx, r.DB.Rebind(query), args...)
	if err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return r.GetItemByName(ctx, newName)
}

func (r *SQLRepository) SoftDeleteItem(ctx context.Context, name, deletedBy string) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	query := r.DB.Rebind(`UPDATE items
		SET deleted_at = ?, deleted_by = ?, updated_at = ?, updated_by = ?
		WHERE name = ? AND deleted_at IS NULL`)

	res, err := r.DB.ExecContext(ctx, query, now, deletedBy, now, deletedBy, name)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func newItemID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// isDuplicateErr classifies unique-constraint violations across the
// supported drivers (sqlite3, pgx, mysql).
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}

// escapeLike neutralizes LIKE metacharacters. '|' is the escape character
// because a backslash literal parses differently under MySQL.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `|`, `||`)
	s = strings.ReplaceAll(s, `%`, `|%`)
	s = strings.ReplaceAll(s, `_`, `|_`)
	return s
}
