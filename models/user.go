package models

import (
	"time"
)

type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name"`
	Email            string     `json:"email" gorm:"unique"`
	Password         string     `json:"password,omitempty"`
	Phone            string     `json:"phone"`
	ProfilePicture   string     `json:"profile_picture"`
	RoleID           uint       `json:"role_id"`
	Role             Role       `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Services         []Service  `json:"services,omitempty" gorm:"foreignKey:ProviderID"`
	Facilities       []Facility `json:"facilities,omitempty" gorm:"foreignKey:ProviderID"`
	Bookings         []Booking  `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
	Invoices         []Invoice  `json:"invoices,omitempty" gorm:"foreignKey:UserID"`
	FavoriteServices []Service  `json:"favorite_services,omitempty" gorm:"many2many:user_favorite_services;"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
