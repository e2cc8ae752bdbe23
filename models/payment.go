package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const PaymentStatusPaid = "paid"

// Payment is read-side only for this service: dashboards aggregate it, the
// rule engines never mutate it.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`

	Amount float64 `gorm:"type:decimal(10,2);not null"`
	Status string  `gorm:"type:varchar(20);not null"`
	PaidAt *time.Time

	Appointment *Appointment `gorm:"foreignKey:AppointmentID"`

	gorm.Model
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
