package importer

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

// Service imports statement files into the database.
type Service struct {
	db       *sql.DB
	registry *Registry
}

// NewService creates an import Service using the built-in parsers.
func NewService(db *sql.DB) *Service {
	return &Service{db: db, registry: DefaultRegistry()}
}

// ImportFile parses one statement file and inserts its rows inside a single
// transaction. Rows whose (party, description) pair is already stored are
// skipped, which makes re-importing the same file a no-op. A storage error
// rolls the whole batch back.
func (s *Service) ImportFile(ctx context.Context, path string) (model.ImportResult, error) {
	return s.importFile(ctx, path, "camt")
}

func (s *Service) importFile(ctx context.Context, path, format string) (model.ImportResult, error) {
	parser := s.registry.Get(format)
	if parser == nil {
		return model.ImportResult{}, fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return model.ImportResult{}, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	expenses, failures, err := parser.Parse(f)
	if err != nil {
		return model.ImportResult{}, err
	}

	result := model.ImportResult{
		File:     filepath.Base(path),
		BatchID:  uuid.NewString(),
		Failures: failures,
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewExpenseRepo(tx)
		for _, e := range expenses {
			// The check runs inside the transaction, so a duplicate earlier
			// in the same file is already visible here.
			dup, err := repo.Exists(ctx, e.Party, e.Description)
			if err != nil {
				return err
			}
			if dup {
				result.Duplicates++
				continue
			}
			e.ImportID = result.BatchID
			if _, err := repo.Insert(ctx, e); err != nil {
				return err
			}
			result.Inserted++
		}
		return storage.NewImportRepo(tx).Record(ctx, result)
	})
	if err != nil {
		return model.ImportResult{}, err
	}
	return result, nil
}
