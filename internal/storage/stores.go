package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// ErrStoreNotFound is returned when deleting a store by an unknown id.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepo handles the stores table.
type StoreRepo struct {
	db DBTX
}

// NewStoreRepo creates a StoreRepo.
func NewStoreRepo(db DBTX) *StoreRepo {
	return &StoreRepo{db: db}
}

// Create inserts a new store and returns it with its assigned id.
func (r *StoreRepo) Create(ctx context.Context, s model.Store) (model.Store, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO stores(name, pattern, category_id) VALUES(?, ?, ?)`,
		s.Name, s.Pattern, s.CategoryID)
	if err != nil {
		return model.Store{}, fmt.Errorf("inserting store %q: %w", s.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Store{}, fmt.Errorf("reading store id: %w", err)
	}
	s.ID = id
	return s, nil
}

// List returns all stores in insertion order. Classification depends on this
// order being stable: first-match-wins is resolved by id.
func (r *StoreRepo) List(ctx context.Context) ([]model.Store, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, pattern, category_id FROM stores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var out []model.Store
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Pattern, &s.CategoryID); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a store by id. Expenses referencing it fall back to NULL
// via the schema's ON DELETE SET NULL, making them eligible for re-sync.
func (r *StoreRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting store %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting store %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("store %d: %w", id, ErrStoreNotFound)
	}
	return nil
}
