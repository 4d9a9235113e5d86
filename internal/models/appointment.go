package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ReferenceNumber string `gorm:"size:30;uniqueIndex;not null" json:"reference_number"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID string  `gorm:"size:36" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	PostoID string `gorm:"size:36;index" json:"posto_id"`
	Posto   Posto  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"posto"`

	// Calendar date ("2006-01-02") and slot label ("15:04"), kept separate:
	// a slot is the (posto, date, time) tuple.
	AppointmentDate string `gorm:"size:10" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`

	Status string `gorm:"size:20;default:'SCHEDULED'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
