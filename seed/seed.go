// Package seed loads the demo data set: one approved salon with its admin,
// a platform admin, a client and a few services. Every step is
// find-or-create so reruns are safe.
package seed

import (
	"errors"
	"log"

	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Run(db *gorm.DB) error {
	log.Println("Seeding database...")

	var salon models.Salon
	err := db.Where("name = ?", "Maria's Beauty Salon").First(&salon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		salon = models.Salon{
			Name:     "Maria's Beauty Salon",
			Address:  "123 Main Avenue, Guadalajara",
			Contact:  "3312345678",
			Approved: true,
		}
		err = db.Create(&salon).Error
	}
	if err != nil {
		return err
	}

	if err := seedUser(db, "Platform Administrator", "admin@salonbooker.com", "Admin1234", models.RolePlatformAdmin, nil); err != nil {
		return err
	}
	if err := seedUser(db, "Maria Garcia", "maria@salon.com", "Salon1234", models.RoleSalonAdmin, &salon.ID); err != nil {
		return err
	}
	if err := seedUser(db, "Ana Lopez", "ana@client.com", "Client1234", models.RoleClient, &salon.ID); err != nil {
		return err
	}

	var category models.ServiceCategory
	err = db.Where("name = ?", "General").First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.ServiceCategory{Name: "General"}
		err = db.Create(&category).Error
	}
	if err != nil {
		return err
	}

	var subcategory models.ServiceSubcategory
	err = db.Where("category_id = ?", category.ID).First(&subcategory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		subcategory = models.ServiceSubcategory{Name: "General", CategoryID: category.ID}
		err = db.Create(&subcategory).Error
	}
	if err != nil {
		return err
	}

	demoServices := []models.Service{
		{Name: "Women's haircut", Description: "Wash, cut and blow dry", Duration: 45, Price: 250},
		{Name: "Manicure", Description: "Classic manicure", Duration: 30, Price: 180},
		{Name: "Full coloring", Description: "Single-color dye", Duration: 90, Price: 650},
	}
	for _, svc := range demoServices {
		var existing models.Service
		err := db.Where("salon_id = ? AND name = ?", salon.ID, svc.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		svc.SalonID = salon.ID
		svc.SubcategoryID = subcategory.ID
		if err := db.Create(&svc).Error; err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedUser(db *gorm.DB, name, email, password, role string, salonID *uuid.UUID) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
		SalonID:  salonID,
		IsActive: true,
	}).Error
}
