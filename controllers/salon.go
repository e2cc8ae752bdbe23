// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"

	"salonbooker-backend/config"
	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSalonServiceInput defines the expected JSON structure for creating a service
type CreateSalonServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // in minutes
	Price       float64 `json:"price"`
}

type ApproveSalonInput struct {
	Approved *bool `json:"approved"`
}

// GetApprovedSalons lists the salons open for client registration and browsing
func GetApprovedSalons(c *gin.Context) {
	var salons []models.Salon
	err := config.DB.Where("approved = ?", true).Order("name asc").Find(&salons).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	response := make([]gin.H, 0, len(salons))
	for _, salon := range salons {
		response = append(response, gin.H{
			"id":       salon.ID,
			"name":     salon.Name,
			"address":  salon.Address,
			"contact":  salon.Contact,
			"approved": salon.Approved,
		})
	}

	c.JSON(http.StatusOK, response)
}

// GetSalons lists every salon for the platform admin view
func GetSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Order("created_at desc").Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	c.JSON(http.StatusOK, salons)
}

// ApproveSalon flips a salon's approval flag
func ApproveSalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var input ApproveSalonInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Approved == nil {
		utils.RespondWithError(c, http.StatusBadRequest, `The "approved" field must be true or false`)
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	salon.Approved = *input.Approved
	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"salon":   salon,
	})
}

// GetSalonServices retrieves all services offered by a salon
func GetSalonServices(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var svcs []models.Service
	if err := config.DB.Where("salon_id = ?", salonUUID).Order("created_at asc").Find(&svcs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, svcs)
}

// CreateSalonService creates a new service for the salon. Services always
// belong to a subcategory; when none exists yet a default "General"
// category and subcategory are provisioned first.
func CreateSalonService(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input CreateSalonServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name == "" || input.Duration <= 0 || input.Price <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Name, duration and price are required")
		return
	}

	subcategoryID, err := defaultSubcategory(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	service := models.Service{
		SalonID:       salonUUID,
		SubcategoryID: subcategoryID,
		Name:          input.Name,
		Description:   input.Description,
		Duration:      input.Duration,
		Price:         input.Price,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Service created successfully",
		"service": service,
	})
}

// defaultSubcategory returns an existing subcategory or provisions the
// "General" category/subcategory pair. This is the documented default
// provisioning step of service creation, not an incidental side effect.
func defaultSubcategory(db *gorm.DB) (uuid.UUID, error) {
	var subcategory models.ServiceSubcategory
	err := db.First(&subcategory).Error
	if err == nil {
		return subcategory.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	var category models.ServiceCategory
	err = db.First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = models.ServiceCategory{Name: "General"}
		err = db.Create(&category).Error
	}
	if err != nil {
		return uuid.Nil, err
	}

	subcategory = models.ServiceSubcategory{Name: "General", CategoryID: category.ID}
	if err := db.Create(&subcategory).Error; err != nil {
		return uuid.Nil, err
	}
	return subcategory.ID, nil
}

// GetSalonClients lists the clients registered to a salon
func GetSalonClients(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var clients []models.User
	err = config.DB.Where("salon_id = ? AND role = ?", salonUUID, models.RoleClient).
		Order("name asc").Find(&clients).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	response := make([]gin.H, 0, len(clients))
	for _, client := range clients {
		response = append(response, gin.H{
			"id":       client.ID,
			"name":     client.Name,
			"email":    client.Email,
			"isActive": client.IsActive,
		})
	}

	c.JSON(http.StatusOK, response)
}
