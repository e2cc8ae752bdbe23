package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Salon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string
	Contact string

	// Unapproved salons cannot accept client registrations and are hidden
	// from the public listing. Flipped by a platform admin.
	Approved bool `gorm:"default:false"`

	Users        []User        `gorm:"foreignKey:SalonID"`
	Services     []Service     `gorm:"foreignKey:SalonID"`
	Appointments []Appointment `gorm:"foreignKey:SalonID"`

	gorm.Model
}

func (s *Salon) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
