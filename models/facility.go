package models

import (
	"gorm.io/gorm"
)

// Facility is a rentable sports facility listing. Facilities always bill
// per hour regardless of category.
type Facility struct {
	gorm.Model
	Name         string             `json:"name"`
	Type         string             `json:"type"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Rate         float64            `json:"rate"` // COP per hour
	Location     string             `json:"location"`
	Phone        string             `json:"phone"`
	Whatsapp     string             `json:"whatsapp"`
	ImageURL     string             `json:"image_url"`
	Amenities    string             `json:"amenities"`
	Rating       float64            `json:"rating" gorm:"type:decimal(2,1)"`
	Availability WeeklyAvailability `json:"availability" gorm:"type:jsonb"`
	ProviderID   uint               `json:"provider_id"`
	Provider     User               `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
