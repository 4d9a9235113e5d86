package models

import "time"

// Posto é um posto de atendimento: a physical office serving appointments.
type Posto struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Address      string `gorm:"size:255" json:"address"`
	Municipality string `gorm:"size:100" json:"municipality"`
	Province     string `gorm:"size:100" json:"province"`
	Phone        string `gorm:"size:30" json:"phone"`

	// Operating hours as displayed to citizens, e.g. "08:00 - 16:30".
	Hours    string `gorm:"size:100" json:"hours"`
	Capacity int    `json:"capacity"`

	// HIGH / MEDIUM / LOW
	Availability string `gorm:"size:20;default:'MEDIUM'" json:"availability"`

	// ACTIVE / INACTIVE / MAINTENANCE
	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	Services []Service `gorm:"many2many:posto_services;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
