package mock

import (
	"context"

	"github.com/masaslabs/customer-console/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	CustomerRepo  *MockCustomerRepo
	ReferenceRepo *MockReferenceRepo
	StatusRepo    *MockStatusRepo
	HealthRepo    *MockHealthRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		CustomerRepo:  &MockCustomerRepo{},
		ReferenceRepo: &MockReferenceRepo{},
		StatusRepo:    &MockStatusRepo{},
		HealthRepo:    &MockHealthRepo{},
	}
}

type MockCustomerRepo struct {
	Rows        []models.CustomerDetails
	ListErr     error
	LastFilters models.FilterOptions
	LastSort    models.SortOptions
}

func (m *MockCustomerRepo) ListCustomerDetails(ctx context.Context, filters models.FilterOptions, sort models.SortOptions) ([]models.CustomerDetails, error) {
	m.LastFilters = filters
	m.LastSort = sort
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Rows, nil
}

type MockReferenceRepo struct {
	Industries    []models.Industry
	Countries     []models.Country
	IndustriesErr error
	CountriesErr  error
}

func (m *MockReferenceRepo) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	if m.IndustriesErr != nil {
		return nil, m.IndustriesErr
	}
	return m.Industries, nil
}

func (m *MockReferenceRepo) ListCountries(ctx context.Context) ([]models.Country, error) {
	if m.CountriesErr != nil {
		return nil, m.CountriesErr
	}
	return m.Countries, nil
}

type MockStatusRepo struct {
	UpsertErr      error
	LastCustomerID int64
	LastStatus     string
	LastComment    *string
	Calls          int
}

func (m *MockStatusRepo) UpsertCustomerStatus(ctx context.Context, customerID int64, status string, comment *string) error {
	m.Calls++
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	m.LastCustomerID = customerID
	m.LastStatus = status
	m.LastComment = comment
	return nil
}

type MockHealthRepo struct {
	PingErr error
}

func (m *MockHealthRepo) Ping(ctx context.Context) error {
	return m.PingErr
}
