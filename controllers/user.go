// controllers/user.go
package controllers

import (
	"net/http"

	"salonbooker-backend/config"
	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetUsers lists every account for the platform admin view
func GetUsers(c *gin.Context) {
	var users []models.User
	err := config.DB.Preload("Salon").Order("created_at desc").Find(&users).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	response := make([]gin.H, 0, len(users))
	for _, user := range users {
		row := gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"isActive": user.IsActive,
			"salon":    nil,
		}
		if user.Salon != nil {
			row["salon"] = gin.H{
				"id":   user.Salon.ID,
				"name": user.Salon.Name,
			}
		}
		response = append(response, row)
	}

	c.JSON(http.StatusOK, response)
}
