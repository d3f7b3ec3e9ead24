package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

func TestWriteMonthlyCSV(t *testing.T) {
	expenses := []model.Expense{
		expense("2014-03-07", "-45.30", storeID(11)),
		expense("2014-04-02", "-10.00", storeID(11)),
		expense("2014-03-09", "-3.20", nil),
	}
	sum := Aggregate(expenses, testStores, testCategories, MonthBucket)

	dir := t.TempDir()
	paths, err := WriteMonthlyCSV(dir, sum)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	food, err := os.ReadFile(filepath.Join(dir, "food.csv"))
	require.NoError(t, err)
	assert.Equal(t, "2014-03-01 45.30\n2014-04-01 10.00\n", string(food))

	unclassified, err := os.ReadFile(filepath.Join(dir, "None.csv"))
	require.NoError(t, err)
	assert.Equal(t, "2014-03-01 3.20\n", string(unclassified))
}

func TestWriteMonthlyCSV_SkipsEmptyBuckets(t *testing.T) {
	expenses := []model.Expense{
		expense("2014-03-07", "-45.30", storeID(11)), // food
		expense("2014-05-01", "-30.00", storeID(12)), // hardware
	}
	sum := Aggregate(expenses, testStores, testCategories, MonthBucket)

	dir := t.TempDir()
	_, err := WriteMonthlyCSV(dir, sum)
	require.NoError(t, err)

	// food has no May spending, so its file carries only the March row.
	food, err := os.ReadFile(filepath.Join(dir, "food.csv"))
	require.NoError(t, err)
	assert.Equal(t, "2014-03-01 45.30\n", string(food))
}

func TestWriteMonthlyCSV_CreatesDir(t *testing.T) {
	expenses := []model.Expense{expense("2014-03-07", "-1.00", storeID(10))}
	sum := Aggregate(expenses, testStores, testCategories, MonthBucket)

	dir := filepath.Join(t.TempDir(), "reports")
	_, err := WriteMonthlyCSV(dir, sum)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCategoryFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"food", "food.csv"},
		{"Dining & Drinks", "Dining___Drinks.csv"},
		{"bills/2014", "bills_2014.csv"},
		{"a-b_c", "a-b_c.csv"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, categoryFileName(tt.in))
	}
}
