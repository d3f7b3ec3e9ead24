package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// ErrCategoryExists is returned when creating a category whose name is taken.
var ErrCategoryExists = errors.New("category already exists")

// CategoryRepo handles the categories table.
type CategoryRepo struct {
	db DBTX
}

// NewCategoryRepo creates a CategoryRepo.
func NewCategoryRepo(db DBTX) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create inserts a new category. Names are unique (case-sensitive).
func (r *CategoryRepo) Create(ctx context.Context, name string) (model.Category, error) {
	if _, err := r.GetByName(ctx, name); err == nil {
		return model.Category{}, fmt.Errorf("category %q: %w", name, ErrCategoryExists)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, err
	}

	res, err := r.db.ExecContext(ctx, `INSERT INTO categories(name) VALUES(?)`, name)
	if err != nil {
		return model.Category{}, fmt.Errorf("inserting category %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Category{}, fmt.Errorf("reading category id: %w", err)
	}
	return model.Category{ID: id, Name: name}, nil
}

// FindOrCreate returns the category with the given name, creating it if it
// does not exist yet. Store creation relies on this so referencing an
// unknown category name is not an error.
func (r *CategoryRepo) FindOrCreate(ctx context.Context, name string) (model.Category, error) {
	c, err := r.GetByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, err
	}
	return r.Create(ctx, name)
}

// GetByName looks a category up by exact name. Returns sql.ErrNoRows when absent.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (model.Category, error) {
	var c model.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE name = ?`, name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("querying category %q: %w", name, err)
	}
	return c, nil
}

// List returns all categories in insertion order.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
