package reconcile

import (
	"context"
	"database/sql"

	"github.com/martin-ueding/bank-statement-parser/internal/rules"
	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

// Syncer backfills store assignments onto unclassified expenses. It runs
// after every mutating command, so a newly added rule retroactively
// classifies historical data.
type Syncer struct {
	db *sql.DB
}

// NewSyncer creates a Syncer.
func NewSyncer(db *sql.DB) *Syncer {
	return &Syncer{db: db}
}

// Sync classifies the payee text of every expense without a store against
// the current rule set and attaches the first match. Unmatched expenses are
// left untouched, so they are retried on the next pass. Returns the number
// of expenses updated; with an unchanged rule set a second run updates
// nothing.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	stores, err := storage.NewStoreRepo(s.db).List(ctx)
	if err != nil {
		return 0, err
	}
	set, err := rules.NewSet(stores)
	if err != nil {
		return 0, err
	}

	updated := 0
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := storage.NewExpenseRepo(tx)
		unclassified, err := repo.ListUnclassified(ctx)
		if err != nil {
			return err
		}
		for _, e := range unclassified {
			// Matching runs against the payee name, not the purpose text.
			store, ok := set.Classify(e.Party)
			if !ok {
				continue
			}
			if err := repo.AttachStore(ctx, e.ID, store.ID); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
