package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/martin-ueding/bank-statement-parser/internal/model"
)

// Row-level parse errors. Each aborts only the row it occurred on.
var (
	ErrMalformedAmount = errors.New("malformed amount")
	ErrMalformedDate   = errors.New("malformed date")
)

// CamtParser parses CAMT-style bank statement exports: semicolon-delimited,
// 17 ordered columns, header row, decimal comma, day-first dates.
type CamtParser struct{}

const (
	camtDateFormat = "02.01.2006"
	camtNumFields  = 17
	camtColDate    = 1  // booking date
	camtColDesc    = 4  // purpose free text
	camtColParty   = 11 // payee name
	camtColAmount  = 14
)

// Format returns the parser name.
func (p *CamtParser) Format() string { return "camt" }

// Parse reads a CAMT CSV. Unparseable rows are collected as failures with
// their row number so the user can fix the file and re-import; the rest of
// the file is still processed.
func (p *CamtParser) Parse(r io.Reader) ([]model.Expense, []model.RowFailure, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	// Some exports append trailing columns; anything past the amount is ignored.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil, nil
	}

	var (
		expenses []model.Expense
		failures []model.RowFailure
	)
	for i, rec := range records[1:] {
		row := i + 2 // 1-based, header included
		e, err := parseCamtRow(rec)
		if err != nil {
			failures = append(failures, model.RowFailure{
				Row:   row,
				Value: strings.Join(rec, ";"),
				Err:   err,
			})
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, failures, nil
}

func parseCamtRow(rec []string) (model.Expense, error) {
	if len(rec) < camtNumFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", camtNumFields, len(rec))
	}

	amount, err := ParseAmount(rec[camtColAmount])
	if err != nil {
		return model.Expense{}, err
	}

	date, err := time.Parse(camtDateFormat, strings.TrimSpace(rec[camtColDate]))
	if err != nil {
		return model.Expense{}, fmt.Errorf("%w: %q", ErrMalformedDate, rec[camtColDate])
	}

	return model.Expense{
		Party:       NormalizeText(rec[camtColParty]),
		Description: NormalizeText(rec[camtColDesc]),
		Amount:      amount,
		Date:        date,
	}, nil
}

// ParseAmount parses a German-locale amount: dots are thousands separators,
// the comma is the decimal separator. "-1.234,56" parses to -1234.56.
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(s)
	normalized = strings.ReplaceAll(normalized, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}
	return d, nil
}

// NormalizeText collapses whitespace runs to single spaces and trims the
// ends. Party and description are normalized this way before the dedup
// check so formatting noise in the export cannot defeat it.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
