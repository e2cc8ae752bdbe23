package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// EnsureSlotIndex creates the partial unique index that makes the booking
// conflict check hold under concurrent requests: at most one non-cancelled
// appointment per (service, date, time).
func EnsureSlotIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
		ON appointments (service_id, date, time)
		WHERE status <> 'cancelled' AND deleted_at IS NULL
	`).Error
}
