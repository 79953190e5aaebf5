package models

import (
	"time"
)

type Restaurant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Address      string    `gorm:"not null" json:"address"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	CuisineType  string    `gorm:"index" json:"cuisine_type,omitempty"`
	IsKosher     bool      `gorm:"default:false" json:"is_kosher"`
	OpeningHours Schedule  `gorm:"type:jsonb" json:"opening_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
