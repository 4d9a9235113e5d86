package models

import "time"

type Service struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	// Display strings, e.g. "30-45 min" and "8.500 AKZ".
	Duration string `gorm:"size:30" json:"duration"`
	Price    string `gorm:"size:30" json:"price"`

	Requirements []string `gorm:"serializer:json;type:text" json:"requirements"`

	Category string `gorm:"size:50" json:"category"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
