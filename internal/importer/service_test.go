package importer

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-ueding/bank-statement-parser/internal/storage"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func writeStatement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportFile(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	path := writeStatement(t, camtFile(
		camtRow("05.03.2014", "Einkauf", "ALDI SUED SAGT DANKE 123", "-12,50"),
		camtRow("07.03.2014", "REWE sagt danke", "REWE Filiale 12", "-45,30"),
	))

	result, err := NewService(db).ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Duplicates)
	assert.Empty(t, result.Failures)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, "statement.csv", result.File)

	expenses, err := storage.NewExpenseRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Nil(t, expenses[0].StoreID)
	assert.Equal(t, result.BatchID, expenses[0].ImportID)
}

func TestImportFile_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	svc := NewService(db)

	path := writeStatement(t, camtFile(
		camtRow("05.03.2014", "Einkauf", "ALDI SUED SAGT DANKE 123", "-12,50"),
		camtRow("07.03.2014", "REWE sagt danke", "REWE Filiale 12", "-45,30"),
	))

	first, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 2, first.Inserted)

	// Re-importing the same file is a no-op.
	second, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Duplicates)

	expenses, err := storage.NewExpenseRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)
}

func TestImportFile_DedupIgnoresAmountAndDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// Same (party, description) pair, different amount and date: one row.
	path := writeStatement(t, camtFile(
		camtRow("05.03.2014", "Einkauf", "ALDI SUED SAGT DANKE 123", "-12,50"),
		camtRow("19.04.2014", "Einkauf", "ALDI SUED SAGT DANKE 123", "-99,99"),
	))

	result, err := NewService(db).ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Duplicates)

	expenses, err := storage.NewExpenseRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "-12.5", expenses[0].Amount.String())
}

func TestImportFile_BadRowsDoNotAbortBatch(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	path := writeStatement(t, camtFile(
		camtRow("05.03.2014", "ok", "ALDI", "-1,00"),
		camtRow("BAD", "broken", "REWE", "-2,00"),
		camtRow("07.03.2014", "ok", "Netto", "-3,00"),
	))

	result, err := NewService(db).ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 3, result.Failures[0].Row)

	expenses, err := storage.NewExpenseRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)
}

func TestImportFile_MissingFile(t *testing.T) {
	db := openTestDB(t)
	_, err := NewService(db).ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
