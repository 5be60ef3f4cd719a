package models

import (
	"gorm.io/gorm"
)

// HourlyRateCategories are the service categories billed per elapsed hour.
// Every other category bills a flat rate per engagement; the duration is
// still shown but does not enter the price.
var HourlyRateCategories = []string{
	"Entrenador Personal",
	"Profesores",
	"Mantenimiento Hogar",
	"Seguridad",
	"Niñeras",
}

// Service is an independent professional service listing.
type Service struct {
	gorm.Model
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Rate         float64            `json:"rate"` // COP; per hour for hourly categories, per engagement otherwise
	Location     string             `json:"location"`
	Phone        string             `json:"phone"`
	Whatsapp     string             `json:"whatsapp"`
	ImageURL     string             `json:"image_url"`
	Rating       float64            `json:"rating" gorm:"type:decimal(2,1)"`
	Availability WeeklyAvailability `json:"availability" gorm:"type:jsonb"`
	ProviderID   uint               `json:"provider_id"`
	Provider     User               `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}

// IsHourly reports whether the service's category bills per hour.
func (s *Service) IsHourly() bool {
	for _, category := range HourlyRateCategories {
		if s.Category == category {
			return true
		}
	}
	return false
}
