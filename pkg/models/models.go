package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type Customer struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name" validate:"required"`
	Website       *string `json:"website" db:"website"`
	ContactEmail  *string `json:"contact_email" db:"contact_email"`
	Facebook      *string `json:"facebook" db:"facebook"`
	Twitter       *string `json:"twitter" db:"twitter"`
	LinkedIn      *string `json:"linkedin" db:"linkedin"`
	Instagram     *string `json:"instagram" db:"instagram"`
	Status        *string `json:"status" db:"status"`
	StatusComment *string `json:"status_comment" db:"status_comment"`
}

type Classification struct {
	ID                          int64   `json:"id" db:"id"`
	CustomerID                  int64   `json:"customer_id" db:"customer_id"`
	DorkID                      *int64  `json:"dork_id" db:"dork_id"`
	HasMetalTinClues            *string `json:"has_metal_tin_clues" db:"has_metal_tin_clues"`
	CompatibleWithMasasProducts *string `json:"compatible_with_masas_products" db:"compatible_with_masas_products"`
	CompatibilityScore          *int64  `json:"compatibility_score" db:"compatibility_score"`
	ShouldSendIntroEmail        *string `json:"should_send_intro_email" db:"should_send_intro_email"`
	Description                 *string `json:"description" db:"description"`
	DetailedCompatibilityScore  *int64  `json:"detailed_compatibility_score" db:"detailed_compatibility_score"`
}

type Dork struct {
	ID          int64   `json:"id" db:"id"`
	IndustryID  *int64  `json:"industry_id" db:"industry_id"`
	CountryCode *string `json:"country_code" db:"country_code"`
	Content     *string `json:"content" db:"content"`
	IsAnalyzed  int64   `json:"is_analyzed" db:"is_analyzed"`
}

type Industry struct {
	ID       int64  `json:"id" db:"id"`
	Industry string `json:"industry" db:"industry"`
}

type Email struct {
	ID         int64   `json:"id" db:"id"`
	CustomerID int64   `json:"customer_id" db:"customer_id"`
	Content    *string `json:"content" db:"content"`
}

type CustomerStatus struct {
	ID         int64   `json:"id" db:"id"`
	CustomerID int64   `json:"customer_id" db:"customer_id"`
	Status     string  `json:"status" db:"status" validate:"required"`
	Comment    *string `json:"comment" db:"comment"`
	UpdatedAt  int64   `json:"updated_at" db:"updated_at"`
}

// Country pairs a dork country code with its display name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CustomerDetails is the nested per-customer view assembled from the joined
// list query. Associations are pointers: nil means the join produced no row,
// which is not the same as a zero-valued record.
type CustomerDetails struct {
	Customer       Customer        `json:"customer"`
	Classification *Classification `json:"classification"`
	Dork           *Dork           `json:"dork"`
	Industry       *Industry       `json:"industry"`
	LatestEmail    *Email          `json:"latest_email"`
}

// FilterOptions narrows the customer list. Nil score bounds add no clause.
// Score bounds admit customers with no classification; industry/country sets
// do not (a customer without an industry is excluded once the set is non-empty).
type FilterOptions struct {
	CompatibilityScoreMin *int64
	CompatibilityScoreMax *int64
	DetailedScoreMin      *int64
	DetailedScoreMax      *int64
	Industry              []string
	Country               []string
}

// Sort field names accepted from the boundary layer.
const (
	SortFieldName               = "name"
	SortFieldCompatibilityScore = "compatibility_score"
	SortFieldCountry            = "country"
	SortFieldIndustry           = "industry"
)

type SortOptions struct {
	Field     string
	Direction string // "asc" or "desc"
}
