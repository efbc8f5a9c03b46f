package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/masaslabs/customer-console/api"
	"github.com/masaslabs/customer-console/pkg/models"
	"github.com/masaslabs/customer-console/pkg/repository/mock"
)

type listResponse struct {
	Customers []models.CustomerDetails `json:"customers"`
	Total     int                      `json:"total"`
	Filters   map[string]any           `json:"filters"`
	Sort      struct {
		Field     string `json:"field"`
		Direction string `json:"direction"`
	} `json:"sort"`
	AvailableIndustries []models.Industry `json:"available_industries"`
	AvailableCountries  []models.Country  `json:"available_countries"`
}

func doListDetails(t *testing.T, m *mock.Mocks, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := api.NewCustomersHandler(m.CustomerRepo, m.ReferenceRepo, m.HealthRepo)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ListDetails(rr, req)
	return rr
}

func TestListDetails_Defaults(t *testing.T) {
	m := mock.NewMocks()
	m.CustomerRepo.Rows = []models.CustomerDetails{
		{Customer: models.Customer{ID: 1, Name: "Alpha Metals"}},
		{Customer: models.Customer{ID: 2, Name: "Beta Electronics"}},
	}
	m.ReferenceRepo.Industries = []models.Industry{{ID: 1, Industry: "Manufacturing"}}
	m.ReferenceRepo.Countries = []models.Country{{Code: "US", Name: "United States"}}

	rr := doListDetails(t, m, "/v1/customers/details")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp listResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Customers) != 2 {
		t.Fatalf("expected 2 customers, got total=%d len=%d", resp.Total, len(resp.Customers))
	}
	if resp.Sort.Field != "name" || resp.Sort.Direction != "asc" {
		t.Fatalf("expected default sort name/asc, got %+v", resp.Sort)
	}
	if len(resp.AvailableIndustries) != 1 || resp.AvailableIndustries[0].Industry != "Manufacturing" {
		t.Fatalf("unexpected available industries %+v", resp.AvailableIndustries)
	}
	if len(resp.AvailableCountries) != 1 || resp.AvailableCountries[0].Code != "US" {
		t.Fatalf("unexpected available countries %+v", resp.AvailableCountries)
	}

	// default score bounds are 0..100 on both scales
	f := m.CustomerRepo.LastFilters
	if f.CompatibilityScoreMin == nil || *f.CompatibilityScoreMin != 0 ||
		f.CompatibilityScoreMax == nil || *f.CompatibilityScoreMax != 100 {
		t.Fatalf("unexpected compatibility bounds %+v", f)
	}
	if f.DetailedScoreMin == nil || *f.DetailedScoreMin != 0 ||
		f.DetailedScoreMax == nil || *f.DetailedScoreMax != 100 {
		t.Fatalf("unexpected detailed bounds %+v", f)
	}
	if len(f.Industry) != 0 || len(f.Country) != 0 {
		t.Fatalf("expected empty filter sets, got %+v", f)
	}
}

func TestListDetails_ParsesFiltersAndSort(t *testing.T) {
	m := mock.NewMocks()

	rr := doListDetails(t, m, "/v1/customers/details?compatibility_score_min=50&compatibility_score_max=90"+
		"&detailed_score_min=10&detailed_score_max=80"+
		"&industry_0=Manufacturing&country_0=US&country_1=JP"+
		"&sort_field=compatibility_score&sort_direction=desc")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	f := m.CustomerRepo.LastFilters
	if f.CompatibilityScoreMin == nil || *f.CompatibilityScoreMin != 50 ||
		f.CompatibilityScoreMax == nil || *f.CompatibilityScoreMax != 90 {
		t.Fatalf("unexpected compatibility bounds %+v", f)
	}
	if f.DetailedScoreMin == nil || *f.DetailedScoreMin != 10 ||
		f.DetailedScoreMax == nil || *f.DetailedScoreMax != 80 {
		t.Fatalf("unexpected detailed bounds %+v", f)
	}
	if len(f.Industry) != 1 || f.Industry[0] != "Manufacturing" {
		t.Fatalf("unexpected industry set %v", f.Industry)
	}
	// repeated country_N keys come from a map, so compare as a set
	if len(f.Country) != 2 {
		t.Fatalf("unexpected country set %v", f.Country)
	}
	seen := map[string]bool{}
	for _, c := range f.Country {
		seen[c] = true
	}
	if !seen["US"] || !seen["JP"] {
		t.Fatalf("unexpected country set %v", f.Country)
	}

	s := m.CustomerRepo.LastSort
	if s.Field != "compatibility_score" || s.Direction != "desc" {
		t.Fatalf("unexpected sort %+v", s)
	}
}

func TestListDetails_NonNumericScoreFallsBack(t *testing.T) {
	m := mock.NewMocks()

	rr := doListDetails(t, m, "/v1/customers/details?compatibility_score_min=abc")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	f := m.CustomerRepo.LastFilters
	if f.CompatibilityScoreMin == nil || *f.CompatibilityScoreMin != 0 {
		t.Fatalf("expected fallback to 0, got %+v", f.CompatibilityScoreMin)
	}
}

func TestListDetails_EmptyResultsAreEmptyArrays(t *testing.T) {
	m := mock.NewMocks()

	rr := doListDetails(t, m, "/v1/customers/details")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	// nil slices from the repo must serialize as [], not null
	body := rr.Body.String()
	for _, key := range []string{`"customers":[]`, `"available_industries":[]`, `"available_countries":[]`} {
		if !strings.Contains(body, key) {
			t.Fatalf("expected %s in response, got %s", key, body)
		}
	}
}

func TestListDetails_PingFailure(t *testing.T) {
	m := mock.NewMocks()
	m.HealthRepo.PingErr = errors.New("store down")

	rr := doListDetails(t, m, "/v1/customers/details")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "database connection failed") {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestListDetails_ListError(t *testing.T) {
	m := mock.NewMocks()
	m.CustomerRepo.ListErr = errors.New("boom")

	rr := doListDetails(t, m, "/v1/customers/details")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestListDetails_ReferenceErrors(t *testing.T) {
	m := mock.NewMocks()
	m.ReferenceRepo.IndustriesErr = errors.New("boom")
	rr := doListDetails(t, m, "/v1/customers/details")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on industries error, got %d", rr.Code)
	}

	m = mock.NewMocks()
	m.ReferenceRepo.CountriesErr = errors.New("boom")
	rr = doListDetails(t, m, "/v1/customers/details")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on countries error, got %d", rr.Code)
	}
}
