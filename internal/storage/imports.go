package storage

import (
	"context"
	"fmt"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// ImportRepo records one row per import run.
type ImportRepo struct {
	db DBTX
}

// NewImportRepo creates an ImportRepo.
func NewImportRepo(db DBTX) *ImportRepo {
	return &ImportRepo{db: db}
}

// Record persists the outcome of an import batch.
func (r *ImportRepo) Record(ctx context.Context, res model.ImportResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO imports(id, filename, inserted, duplicates, failed)
		VALUES(?, ?, ?, ?, ?)`,
		res.BatchID, res.File, res.Inserted, res.Duplicates, len(res.Failures))
	if err != nil {
		return fmt.Errorf("recording import %s: %w", res.BatchID, err)
	}
	return nil
}
