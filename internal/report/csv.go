package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteMonthlyCSV emits one file per category into dir, each line holding
// the first day of a month and the spend for that month:
//
//	2014-03-01 45.30
//
// The space-separated layout feeds straight into gnuplot. Returns the
// written file paths.
func WriteMonthlyCSV(dir string, sum Summary) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}

	var paths []string
	for _, name := range sum.CategoryNames() {
		path := filepath.Join(dir, categoryFileName(name))
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating report for %q: %w", name, err)
		}

		for _, b := range sum.Buckets() {
			v := sum.Value(name, b)
			if v.IsZero() {
				continue
			}
			if _, err := fmt.Fprintf(f, "%s %s\n", b.Format("2006-01-02"), v.StringFixed(2)); err != nil {
				f.Close()
				return nil, fmt.Errorf("writing report for %q: %w", name, err)
			}
		}

		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("closing report for %q: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// categoryFileName turns a category name into a safe file name.
func categoryFileName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	return clean + ".csv"
}
