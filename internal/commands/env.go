package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/martin-ueding/bank-statement-parser/internal/config"
	"github.com/martin-ueding/bank-statement-parser/internal/reconcile"
	"github.com/martin-ueding/bank-statement-parser/internal/runlog"
	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

// env bundles the opened configuration and database handed to a command.
type env struct {
	cfg *config.Config
	db  *sql.DB
}

// openEnv loads the config (falling back to defaults when the file is
// absent) and opens the database. dbOverride, when non-empty, wins over the
// configured database path.
func openEnv(configPath, dbOverride string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
	}
	if dbOverride != "" {
		cfg.Database = dbOverride
	}

	db, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, db: db}, nil
}

func (e *env) close() {
	_ = e.db.Close()
}

// sync runs the reconciliation pass every mutating command finishes with.
// After it returns, nothing classifiable under the current rules is left
// unclassified.
func (e *env) sync(ctx context.Context) error {
	updated, err := reconcile.NewSyncer(e.db).Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	if updated > 0 {
		fmt.Printf("Classified %d expense(s)\n", updated)
	}
	return nil
}

// log appends one entry to the command log. Log failures are reported but
// never fail the command that already succeeded.
func (e *env) log(command, details, batchID string) {
	err := runlog.Append(e.cfg.LogFile, []runlog.Entry{{
		Timestamp: time.Now().UTC(),
		Command:   command,
		Details:   details,
		BatchID:   batchID,
	}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing command log: %v\n", err)
	}
}
