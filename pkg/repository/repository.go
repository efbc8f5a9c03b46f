package repository

import (
	"context"

	"github.com/masaslabs/customer-console/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type CustomerRepo interface {
	// ListCustomerDetails returns at most one row per customer, each joined
	// with its latest classification, that classification's dork and industry,
	// the latest email and the current status.
	ListCustomerDetails(ctx context.Context, filters models.FilterOptions, sort models.SortOptions) ([]models.CustomerDetails, error)
}

type ReferenceRepo interface {
	ListIndustries(ctx context.Context) ([]models.Industry, error)
	ListCountries(ctx context.Context) ([]models.Country, error)
}

type StatusRepo interface {
	// UpsertCustomerStatus records the current decision for a customer,
	// replacing any previous one. comment may be nil.
	UpsertCustomerStatus(ctx context.Context, customerID int64, status string, comment *string) error
}

type HealthRepo interface {
	// Ping runs a trivial query to verify the store is reachable.
	Ping(ctx context.Context) error
}
