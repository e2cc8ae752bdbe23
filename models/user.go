package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Fixed at registration; platform admins are only ever seeded.
const (
	RolePlatformAdmin = "platform_admin"
	RoleSalonAdmin    = "salon_admin"
	RoleClient        = "client"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null" json:"-"`

	Role string `gorm:"type:varchar(20);not null;index"`

	// SalonID is required for salon_admin and client, nil for platform_admin.
	SalonID *uuid.UUID `gorm:"type:uuid;index"`
	Salon   *Salon     `gorm:"foreignKey:SalonID"`

	IsActive bool `gorm:"default:true"`

	// Password-reset lifecycle. Only the SHA-256 digest of the token is
	// stored; both fields are cleared together on redemption.
	ResetTokenHash    *string    `gorm:"index" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	LastLogin *time.Time

	gorm.Model
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

func ValidRole(role string) bool {
	switch role {
	case RolePlatformAdmin, RoleSalonAdmin, RoleClient:
		return true
	}
	return false
}
