// controllers/auth.go
package controllers

import (
	"net/http"

	"salonbooker-backend/config"
	"salonbooker-backend/models"
	"salonbooker-backend/services"
	"salonbooker-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

type ResetTokenInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func credentials() *services.CredentialService {
	return services.NewCredentialService(config.DB, services.NewMailerFromEnv())
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	result, err := credentials().Login(input.Email, input.Password)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	salonID := ""
	if result.User.Salon != nil {
		salonID = result.User.Salon.ID.String()
	}
	token, err := utils.GenerateToken(result.User.ID.String(), result.User.Role, salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"user":     result.User,
		"redirect": result.Redirect,
	})
}

func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, err := credentials().Register(input)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	message := "Account created successfully"
	if user.Role == models.RoleSalonAdmin {
		message = "Account created successfully. The salon is pending approval."
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"user":    user,
	})
}

func ForgotPassword(c *gin.Context) {
	var input ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := credentials().ForgotPassword(input.Email); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	// Identical response whether or not the email exists.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If the email is registered you will receive instructions to recover your password",
	})
}

func VerifyResetToken(c *gin.Context) {
	var input ResetTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Invalid input"})
		return
	}

	if err := credentials().VerifyResetToken(input.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func ResetPassword(c *gin.Context) {
	var input ResetTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := credentials().ResetPassword(input.Token, input.Password); err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successfully",
	})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
		return
	}

	var user models.User
	if err := config.DB.Preload("Salon").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"isActive": user.IsActive,
		},
	})
}
