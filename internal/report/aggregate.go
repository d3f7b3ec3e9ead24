package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// BucketFunc maps a transaction date to its time bucket.
type BucketFunc func(time.Time) time.Time

// MonthBucket truncates a date to the first day of its month.
func MonthBucket(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// FractionalYear maps a bucket to a continuous year value, e.g. March 2014
// becomes 2014.1666. Used as the x axis of the line chart.
func FractionalYear(t time.Time) float64 {
	return float64(t.Year()) + float64(int(t.Month())-1)/12.0
}

// Summary is spending grouped by category and time bucket. Amounts are
// spend magnitudes (sign-flipped outflows), so every value is positive.
type Summary struct {
	Categories map[string]map[time.Time]decimal.Decimal
	Totals     map[time.Time]decimal.Decimal
}

// Aggregate groups outflows by category and bucket. Inflows are dropped.
// Expenses without a store are kept under the unclassified sentinel
// category, so the per-bucket totals always cover all outflows.
func Aggregate(expenses []model.Expense, stores []model.Store, categories []model.Category, bucket BucketFunc) Summary {
	categoryByID := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c.Name
	}
	storeCategory := make(map[int64]string, len(stores))
	for _, s := range stores {
		storeCategory[s.ID] = categoryByID[s.CategoryID]
	}

	sum := Summary{
		Categories: make(map[string]map[time.Time]decimal.Decimal),
		Totals:     make(map[time.Time]decimal.Decimal),
	}
	for _, e := range expenses {
		if !e.Outflow() {
			continue
		}
		name := model.UnclassifiedCategory
		if e.StoreID != nil {
			if cat, ok := storeCategory[*e.StoreID]; ok {
				name = cat
			}
		}

		b := bucket(e.Date)
		spend := e.Amount.Neg()

		if sum.Categories[name] == nil {
			sum.Categories[name] = make(map[time.Time]decimal.Decimal)
		}
		sum.Categories[name][b] = sum.Categories[name][b].Add(spend)
		sum.Totals[b] = sum.Totals[b].Add(spend)
	}
	return sum
}

// Buckets returns all time buckets in chronological order.
func (s Summary) Buckets() []time.Time {
	out := make([]time.Time, 0, len(s.Totals))
	for b := range s.Totals {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// CategoryNames returns all category names in the summary, sorted, with the
// unclassified sentinel last.
func (s Summary) CategoryNames() []string {
	out := make([]string, 0, len(s.Categories))
	unclassified := false
	for name := range s.Categories {
		if name == model.UnclassifiedCategory {
			unclassified = true
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	if unclassified {
		out = append(out, model.UnclassifiedCategory)
	}
	return out
}

// Value returns the spend for a category in a bucket, zero when absent.
func (s Summary) Value(category string, bucket time.Time) decimal.Decimal {
	return s.Categories[category][bucket]
}

// CategoryTotal returns the spend of one category across all buckets.
func (s Summary) CategoryTotal(category string) decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.Categories[category] {
		total = total.Add(v)
	}
	return total
}
