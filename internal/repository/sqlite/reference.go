package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/masaslabs/customer-console/pkg/models"
)

// countryNames is the fixed code->name lookup used for filter display labels.
// Codes without an entry fall back to the code itself.
var countryNames = map[string]string{
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"DE": "Germany",
	"AU": "Australia",
	"FR": "France",
	"JP": "Japan",
	"IN": "India",
}

func (r *SQLiteRepo) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, industry FROM industries ORDER BY industry`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var out []models.Industry
	for rows.Next() {
		var i models.Industry
		if err := rows.Scan(&i.ID, &i.Industry); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate industries: %w", err)
	}

	return out, nil
}

// ListCountries returns the distinct non-null country codes present on dork
// records, each paired with its display name and ordered by that name.
func (r *SQLiteRepo) ListCountries(ctx context.Context) ([]models.Country, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT DISTINCT country_code FROM dorks WHERE country_code IS NOT NULL`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var out []models.Country
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan country code: %w", err)
		}
		name, ok := countryNames[code]
		if !ok {
			name = code
		}
		out = append(out, models.Country{Code: code, Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}
