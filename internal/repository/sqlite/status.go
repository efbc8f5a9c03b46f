package sqlite

import (
	"context"
	"fmt"
)

// UpsertCustomerStatus records the operator's current decision for a customer.
// The customer_status table carries UNIQUE(customer_id), so the store resolves
// concurrent writes for the same customer itself: last write wins and at most
// one current row exists per customer. Required-field checks happen at the
// boundary before this is called.
func (r *SQLiteRepo) UpsertCustomerStatus(ctx context.Context, customerID int64, status string, comment *string) error {
	_, err := r.conn.Exec(ctx, `INSERT INTO customer_status (customer_id, status, comment, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(customer_id) DO UPDATE SET status=excluded.status, comment=excluded.comment, updated_at=excluded.updated_at`,
		customerID, status, comment, now())
	if err != nil {
		return fmt.Errorf("upsert customer status: %w", err)
	}
	return nil
}
