package specification

import "gorm.io/gorm"

// ActiveOnly excludes soft-deleted sessions from listings. Reads by id
// deliberately skip this so an owner can still fetch a deleted session.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
