package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating       float64      `json:"rating" gorm:"type:decimal(2,1);not null"`
	Comment      string       `json:"comment"`
	ResourceKind ResourceKind `json:"resource_kind"`
	ResourceID   uint         `json:"resource_id"`
	UserID       uint         `json:"user_id"`
	User         User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	IsAnonymous  bool         `json:"is_anonymous" gorm:"default:false"`
}

// BeforeCreate hook to clamp rating into the 1.0-5.0 range
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1.0 {
		r.Rating = 1.0
	} else if r.Rating > 5.0 {
		r.Rating = 5.0
	}
	return nil
}

// HasExistingReview reports whether the user already reviewed this listing.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("user_id = ? AND resource_kind = ? AND resource_id = ? AND deleted_at IS NULL",
			r.UserID, r.ResourceKind, r.ResourceID).
		Count(&count).Error

	return count > 0, err
}
