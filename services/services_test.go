package services

import (
	"fmt"
	"testing"

	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema,
// including the partial slot index the conflict guarantee relies on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.ServiceCategory{},
		&models.ServiceSubcategory{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
	)
	require.NoError(t, err)

	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
		ON appointments (service_id, date, time)
		WHERE status <> 'cancelled' AND deleted_at IS NULL
	`).Error
	require.NoError(t, err)

	return db
}

func createSalon(t *testing.T, db *gorm.DB, approved bool) *models.Salon {
	t.Helper()
	salon := &models.Salon{
		Name:     "Test Salon",
		Address:  "1 Test Street",
		Contact:  "5550001111",
		Approved: approved,
	}
	require.NoError(t, db.Create(salon).Error)
	return salon
}

func createUser(t *testing.T, db *gorm.DB, email, password, role string, salonID *uuid.UUID) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		Role:     role,
		SalonID:  salonID,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createService(t *testing.T, db *gorm.DB, salonID uuid.UUID, name string, duration int, price float64) *models.Service {
	t.Helper()
	category := &models.ServiceCategory{Name: "General"}
	require.NoError(t, db.Create(category).Error)
	subcategory := &models.ServiceSubcategory{Name: "General", CategoryID: category.ID}
	require.NoError(t, db.Create(subcategory).Error)
	service := &models.Service{
		SalonID:       salonID,
		SubcategoryID: subcategory.ID,
		Name:          name,
		Duration:      duration,
		Price:         price,
	}
	require.NoError(t, db.Create(service).Error)
	return service
}
