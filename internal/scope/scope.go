package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForOwner returns a GORM scope restricting a query to rows owned by the
// given user. Every service query against owner-scoped tables goes
// through this, so handlers never see another caller's data.
func ForOwner(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
