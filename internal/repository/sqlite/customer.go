package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/masaslabs/customer-console/pkg/models"
)

// customerDetailsBase joins each customer with its latest classification, that
// classification's dork and industry, the latest email and the current status.
// The classification and email joins are reduced to at most one row per
// customer inside their own subqueries (highest id wins), so the outer query
// yields exactly one row per customer without DISTINCT.
const customerDetailsBase = `
SELECT
    c.id AS customer_id,
    c.name,
    c.website,
    c.contact_email,
    c.facebook,
    c.twitter,
    c.linkedin,
    c.instagram,
    cc.id AS classification_id,
    cc.dork_id AS classification_dork_id,
    cc.has_metal_tin_clues,
    cc.compatible_with_masas_products,
    cc.compatibility_score,
    cc.should_send_intro_email,
    cc.description,
    cc.detailed_compatibility_score,
    d.id AS dork_id,
    d.industry_id AS dork_industry_id,
    d.country_code,
    d.content AS dork_content,
    d.is_analyzed,
    i.id AS industry_id,
    i.industry,
    e.id AS email_id,
    e.content AS email_content,
    cs.status,
    cs.comment AS status_comment
FROM customers c
LEFT JOIN (
    SELECT * FROM customer_classifications
    WHERE id IN (SELECT MAX(id) FROM customer_classifications GROUP BY customer_id)
) cc ON cc.customer_id = c.id
LEFT JOIN dorks d ON d.id = cc.dork_id
LEFT JOIN industries i ON i.id = d.industry_id
LEFT JOIN (
    SELECT * FROM email
    WHERE id IN (SELECT MAX(id) FROM email GROUP BY customer_id)
) e ON e.customer_id = c.id
LEFT JOIN customer_status cs ON cs.customer_id = c.id
`

// sortColumns maps boundary sort field names to their qualified columns.
var sortColumns = map[string]string{
	models.SortFieldName:               "c.name",
	models.SortFieldCompatibilityScore: "cc.compatibility_score",
	models.SortFieldCountry:            "d.country_code",
	models.SortFieldIndustry:           "i.industry",
}

// orderBy renders the ORDER BY fragment. An unrecognized field falls back to
// customer name ascending. c.id is appended as a stable tiebreak. NULL
// placement follows SQLite's native ordering: first when ascending, last when
// descending.
func orderBy(sort models.SortOptions) string {
	col, ok := sortColumns[sort.Field]
	if !ok {
		return " ORDER BY c.name ASC, c.id"
	}
	dir := "ASC"
	if strings.EqualFold(sort.Direction, "desc") {
		dir = "DESC"
	}
	return " ORDER BY " + col + " " + dir + ", c.id"
}

// ListCustomerDetails runs the joined list query with the given filters and
// sort and assembles each flat row into a nested CustomerDetails record.
//
// Score bounds are applied as "within bound OR unclassified" so customers
// without a classification are never hidden by score filters. The industry
// and country sets are plain inclusion filters: once non-empty they exclude
// customers whose join produced no industry or country.
func (r *SQLiteRepo) ListCustomerDetails(ctx context.Context, filters models.FilterOptions, sort models.SortOptions) ([]models.CustomerDetails, error) {
	var cond conditions
	if filters.CompatibilityScoreMin != nil {
		cond.and(`(cc.compatibility_score >= ? OR cc.compatibility_score IS NULL)`, *filters.CompatibilityScoreMin)
	}
	if filters.CompatibilityScoreMax != nil {
		cond.and(`(cc.compatibility_score <= ? OR cc.compatibility_score IS NULL)`, *filters.CompatibilityScoreMax)
	}
	if filters.DetailedScoreMin != nil {
		cond.and(`(cc.detailed_compatibility_score >= ? OR cc.detailed_compatibility_score IS NULL)`, *filters.DetailedScoreMin)
	}
	if filters.DetailedScoreMax != nil {
		cond.and(`(cc.detailed_compatibility_score <= ? OR cc.detailed_compatibility_score IS NULL)`, *filters.DetailedScoreMax)
	}
	cond.andIn("i.industry", filters.Industry)
	cond.andIn("d.country_code", filters.Country)

	query := customerDetailsBase + cond.where() + orderBy(sort)

	rows, err := r.conn.QueryRows(ctx, query, cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list customer details: %w", err)
	}
	defer rows.Close()

	var out []models.CustomerDetails
	for rows.Next() {
		cd, err := scanCustomerDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer details: %w", err)
		}
		out = append(out, cd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer details: %w", err)
	}

	return out, nil
}

// scanCustomerDetails maps one flat row into the nested record. Each optional
// association is present only when its id column is non-null; a classification
// score of 0 is therefore distinct from "no classification".
func scanCustomerDetails(rows *sql.Rows) (models.CustomerDetails, error) {
	var (
		cd models.CustomerDetails

		website, contactEmail, facebook, twitter, linkedin, instagram sql.NullString

		classificationID, classificationDorkID    sql.NullInt64
		hasClues, compatible, shouldSend, describ sql.NullString
		score, detailedScore                      sql.NullInt64

		dorkID, dorkIndustryID   sql.NullInt64
		countryCode, dorkContent sql.NullString
		isAnalyzed               sql.NullInt64

		industryID   sql.NullInt64
		industryName sql.NullString

		emailID      sql.NullInt64
		emailContent sql.NullString

		status, statusComment sql.NullString
	)

	if err := rows.Scan(
		&cd.Customer.ID,
		&cd.Customer.Name,
		&website,
		&contactEmail,
		&facebook,
		&twitter,
		&linkedin,
		&instagram,
		&classificationID,
		&classificationDorkID,
		&hasClues,
		&compatible,
		&score,
		&shouldSend,
		&describ,
		&detailedScore,
		&dorkID,
		&dorkIndustryID,
		&countryCode,
		&dorkContent,
		&isAnalyzed,
		&industryID,
		&industryName,
		&emailID,
		&emailContent,
		&status,
		&statusComment,
	); err != nil {
		return models.CustomerDetails{}, err
	}

	cd.Customer.Website = strPtr(website)
	cd.Customer.ContactEmail = strPtr(contactEmail)
	cd.Customer.Facebook = strPtr(facebook)
	cd.Customer.Twitter = strPtr(twitter)
	cd.Customer.LinkedIn = strPtr(linkedin)
	cd.Customer.Instagram = strPtr(instagram)
	cd.Customer.Status = strPtr(status)
	cd.Customer.StatusComment = strPtr(statusComment)

	if classificationID.Valid {
		cd.Classification = &models.Classification{
			ID:                          classificationID.Int64,
			CustomerID:                  cd.Customer.ID,
			DorkID:                      intPtr(classificationDorkID),
			HasMetalTinClues:            strPtr(hasClues),
			CompatibleWithMasasProducts: strPtr(compatible),
			CompatibilityScore:          intPtr(score),
			ShouldSendIntroEmail:        strPtr(shouldSend),
			Description:                 strPtr(describ),
			DetailedCompatibilityScore:  intPtr(detailedScore),
		}
	}

	if dorkID.Valid {
		cd.Dork = &models.Dork{
			ID:          dorkID.Int64,
			IndustryID:  intPtr(dorkIndustryID),
			CountryCode: strPtr(countryCode),
			Content:     strPtr(dorkContent),
			IsAnalyzed:  isAnalyzed.Int64,
		}
	}

	if industryID.Valid {
		cd.Industry = &models.Industry{
			ID:       industryID.Int64,
			Industry: industryName.String,
		}
	}

	if emailID.Valid {
		cd.LatestEmail = &models.Email{
			ID:         emailID.Int64,
			CustomerID: cd.Customer.ID,
			Content:    strPtr(emailContent),
		}
	}

	return cd, nil
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func intPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
