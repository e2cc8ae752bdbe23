package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"not null"`

	Subcategories []ServiceSubcategory `gorm:"foreignKey:CategoryID"`

	gorm.Model
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

type ServiceSubcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`

	gorm.Model
}

func (s *ServiceSubcategory) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type Service struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID       uuid.UUID `gorm:"type:uuid;index;not null"`
	SubcategoryID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Description string
	Duration    int     `gorm:"not null"` // minutes
	Price       float64 `gorm:"type:decimal(10,2);not null"`

	Salon *Salon `gorm:"foreignKey:SalonID"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
