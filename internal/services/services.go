// Package services holds the booking core: category reads, time-slot
// creation with overlap validation, and the per-slot booking state machine.
// Every operation runs inside a single storage transaction.
package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NormalizeEmail returns the canonical form used for storage and ownership
// comparison: lower-cased and whitespace-trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// lockForUpdate adds a row-level lock on dialects that support it. SQLite
// (used in tests) serializes writers on its own, so the clause is skipped
// there; the uniqueness constraints remain the backstop either way.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
