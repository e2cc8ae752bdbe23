package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment lifecycle:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	completed, cancelled: terminal
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Denormalized from the service for tenant-scoped queries.
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Date holds the calendar day at midnight UTC, Time the "HH:MM" slot.
	// The pair together with ServiceID forms the booking slot; a partial
	// unique index over non-cancelled rows backs the conflict check.
	Date time.Time `gorm:"not null"`
	Time string    `gorm:"type:varchar(5);not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes  string

	User    *User    `gorm:"foreignKey:UserID"`
	Service *Service `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
