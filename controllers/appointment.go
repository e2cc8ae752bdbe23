// controllers/appointment.go
package controllers

import (
	"net/http"

	"salonbooker-backend/config"
	"salonbooker-backend/services"
	"salonbooker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func booking() *services.BookingService {
	return services.NewBookingService(config.DB)
}

// CreateAppointment books a slot for a client
func CreateAppointment(c *gin.Context) {
	var input services.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, err := booking().CreateAppointment(input)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment booked successfully",
		"appointment": appointment,
	})
}

// GetAppointments lists appointments filtered by client_id or salon_id
func GetAppointments(c *gin.Context) {
	var clientID, salonID *uuid.UUID

	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
			return
		}
		clientID = &id
	}
	if raw := c.Query("salon_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
			return
		}
		salonID = &id
	}

	rows, err := booking().ListAppointments(clientID, salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CancelAppointment transitions an appointment to cancelled
func CancelAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, err := booking().CancelAppointment(appointmentID)
	if err != nil {
		utils.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment cancelled successfully",
		"appointment": appointment,
	})
}
