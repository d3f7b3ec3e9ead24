package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

const dateFormat = "2006-01-02"

// ExpenseRepo handles the expenses table.
type ExpenseRepo struct {
	db DBTX
}

// NewExpenseRepo creates an ExpenseRepo.
func NewExpenseRepo(db DBTX) *ExpenseRepo {
	return &ExpenseRepo{db: db}
}

// Insert stores a new expense and returns its assigned id.
func (r *ExpenseRepo) Insert(ctx context.Context, e model.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses(party, description, amount, date, store_id, import_id)
		VALUES(?, ?, ?, ?, ?, ?)`,
		e.Party, e.Description, e.Amount.String(), e.Date.Format(dateFormat),
		e.StoreID, e.ImportID)
	if err != nil {
		return 0, fmt.Errorf("inserting expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading expense id: %w", err)
	}
	return id, nil
}

// Exists is the dedup check: it reports whether an expense with the same
// (party, description) pair is already stored. Amount and date deliberately
// do not participate.
func (r *ExpenseRepo) Exists(ctx context.Context, party, description string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses WHERE party = ? AND description = ?`,
		party, description).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking for duplicate: %w", err)
	}
	return n > 0, nil
}

// List returns all expenses ordered by date, then id.
func (r *ExpenseRepo) List(ctx context.Context) ([]model.Expense, error) {
	return r.query(ctx,
		`SELECT id, party, description, amount, date, store_id, import_id
		 FROM expenses ORDER BY date, id`)
}

// ListUnclassified returns expenses with no store attached, in id order.
func (r *ExpenseRepo) ListUnclassified(ctx context.Context) ([]model.Expense, error) {
	return r.query(ctx,
		`SELECT id, party, description, amount, date, store_id, import_id
		 FROM expenses WHERE store_id IS NULL ORDER BY id`)
}

// AttachStore points an expense at a store.
func (r *ExpenseRepo) AttachStore(ctx context.Context, id, storeID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET store_id = ? WHERE id = ?`, storeID, id)
	if err != nil {
		return fmt.Errorf("attaching store %d to expense %d: %w", storeID, id, err)
	}
	return nil
}

// Truncate removes all expenses.
func (r *ExpenseRepo) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("truncating expenses: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) query(ctx context.Context, q string, args ...any) ([]model.Expense, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var out []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanExpense(rows *sql.Rows) (model.Expense, error) {
	var (
		e       model.Expense
		amount  string
		date    string
		storeID sql.NullInt64
	)
	if err := rows.Scan(&e.ID, &e.Party, &e.Description, &amount, &date, &storeID, &e.ImportID); err != nil {
		return model.Expense{}, fmt.Errorf("scanning expense: %w", err)
	}

	var err error
	e.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing stored amount %q: %w", amount, err)
	}
	e.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing stored date %q: %w", date, err)
	}
	if storeID.Valid {
		e.StoreID = &storeID.Int64
	}
	return e, nil
}
