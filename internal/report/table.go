package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// CategoryTable renders categories as a console table.
func CategoryTable(w io.Writer, categories []model.Category) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Name"})
	for _, c := range categories {
		t.Append([]string{strconv.FormatInt(c.ID, 10), c.Name})
	}
	t.Render()
}

// StoreTable renders stores with their category names and patterns.
func StoreTable(w io.Writer, stores []model.Store, categories []model.Category) {
	categoryByID := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c.Name
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Name", "Category", "Pattern"})
	for _, s := range stores {
		t.Append([]string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			categoryByID[s.CategoryID],
			s.Pattern,
		})
	}
	t.Render()
}

// ExpenseTable renders expenses with their resolved store and category.
func ExpenseTable(w io.Writer, expenses []model.Expense, stores []model.Store, categories []model.Category) {
	categoryByID := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c.Name
	}
	storeByID := make(map[int64]model.Store, len(stores))
	for _, s := range stores {
		storeByID[s.ID] = s
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"ID", "Date", "Amount", "Party", "Store", "Category"})
	for _, e := range expenses {
		storeName, categoryName := "", ""
		if e.StoreID != nil {
			if s, ok := storeByID[*e.StoreID]; ok {
				storeName = s.Name
				categoryName = categoryByID[s.CategoryID]
			}
		}
		t.Append([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format("2006-01-02"),
			e.Amount.StringFixed(2),
			e.Party,
			storeName,
			categoryName,
		})
	}
	t.Render()
}
