package api

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"log/slog"

	"github.com/masaslabs/customer-console/pkg/models"
	"github.com/masaslabs/customer-console/pkg/repository"
)

type CustomersHandler struct {
	customerRepo  repository.CustomerRepo
	referenceRepo repository.ReferenceRepo
	healthRepo    repository.HealthRepo
}

func NewCustomersHandler(cr repository.CustomerRepo, rr repository.ReferenceRepo, hr repository.HealthRepo) *CustomersHandler {
	return &CustomersHandler{customerRepo: cr, referenceRepo: rr, healthRepo: hr}
}

// parseScore reads an integer query parameter, falling back to def when the
// parameter is absent or not a number. Out-of-range values are passed through
// unclamped; the store does not reject them.
func parseScore(q map[string][]string, key string, def int64) *int64 {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return &def
	}
	n, err := strconv.ParseInt(vs[0], 10, 64)
	if err != nil {
		return &def
	}
	return &n
}

// collectPrefixed gathers the values of every query parameter whose key starts
// with prefix (industry_0, industry_1, ...), the repeated-key convention the
// dashboard uses for multi-select filters.
func collectPrefixed(q map[string][]string, prefix string) []string {
	var out []string
	for key, vs := range q {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		for _, v := range vs {
			if v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// ListDetails handles GET /v1/customers/details: filter + sort parameters in,
// assembled customer rows plus the filter reference data out.
func (h *CustomersHandler) ListDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// fail fast when the store is down instead of running the full query chain
	if err := h.healthRepo.Ping(ctx); err != nil {
		logger.Error("store unreachable", slog.Any("err", err))
		http.Error(w, "database connection failed", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()

	filters := models.FilterOptions{
		CompatibilityScoreMin: parseScore(q, "compatibility_score_min", 0),
		CompatibilityScoreMax: parseScore(q, "compatibility_score_max", 100),
		DetailedScoreMin:      parseScore(q, "detailed_score_min", 0),
		DetailedScoreMax:      parseScore(q, "detailed_score_max", 100),
		Industry:              collectPrefixed(q, "industry_"),
		Country:               collectPrefixed(q, "country_"),
	}

	sort := models.SortOptions{
		Field:     q.Get("sort_field"),
		Direction: q.Get("sort_direction"),
	}
	if sort.Field == "" {
		sort.Field = models.SortFieldName
	}
	if sort.Direction == "" {
		sort.Direction = "asc"
	}

	customers, err := h.customerRepo.ListCustomerDetails(ctx, filters, sort)
	if err != nil {
		logger.Error("list customer details", slog.Any("err", err))
		http.Error(w, "failed to list customers", http.StatusInternalServerError)
		return
	}
	if customers == nil {
		customers = []models.CustomerDetails{}
	}

	// The reference fetches are independent read-only queries; run them in
	// parallel like the dashboard does.
	var (
		wg         sync.WaitGroup
		industries []models.Industry
		countries  []models.Country
		indErr     error
		ctryErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		industries, indErr = h.referenceRepo.ListIndustries(ctx)
	}()
	go func() {
		defer wg.Done()
		countries, ctryErr = h.referenceRepo.ListCountries(ctx)
	}()
	wg.Wait()
	if indErr != nil {
		logger.Error("list industries", slog.Any("err", indErr))
		http.Error(w, "failed to list industries", http.StatusInternalServerError)
		return
	}
	if ctryErr != nil {
		logger.Error("list countries", slog.Any("err", ctryErr))
		http.Error(w, "failed to list countries", http.StatusInternalServerError)
		return
	}
	if industries == nil {
		industries = []models.Industry{}
	}
	if countries == nil {
		countries = []models.Country{}
	}

	resp := map[string]any{
		"customers": customers,
		"total":     len(customers),
		"filters": map[string]any{
			"compatibility_score_min": *filters.CompatibilityScoreMin,
			"compatibility_score_max": *filters.CompatibilityScoreMax,
			"detailed_score_min":      *filters.DetailedScoreMin,
			"detailed_score_max":      *filters.DetailedScoreMax,
			"industry":                strings.Join(filters.Industry, ", "),
			"country":                 strings.Join(filters.Country, ", "),
		},
		"sort": map[string]any{
			"field":     sort.Field,
			"direction": sort.Direction,
		},
		"available_industries": industries,
		"available_countries":  countries,
	}

	writeJSON(w, resp, http.StatusOK)
}
