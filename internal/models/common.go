package models

import "time"

// AuditFields mirrors the created_at / last_updated_at columns.
type AuditFields struct {
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
