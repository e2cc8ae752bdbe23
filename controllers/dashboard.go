// controllers/dashboard.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"salonbooker-backend/config"
	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// percentChange renders the month-over-month delta for a metric. Metrics
// without a real prior period carry no change figure at all.
func percentChange(current, previous float64) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	change := (current - previous) / previous * 100
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, change)
}

// GetPlatformStats aggregates the platform-admin overview
func GetPlatformStats(c *gin.Context) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfPrevMonth := firstOfMonth.AddDate(0, -1, 0)

	var totalSalons, approvedSalons int64
	config.DB.Model(&models.Salon{}).Count(&totalSalons)
	config.DB.Model(&models.Salon{}).Where("approved = ?", true).Count(&approvedSalons)

	var activeUsers int64
	config.DB.Model(&models.User{}).
		Where("is_active = ? AND role IN ?", true, []string{models.RoleSalonAdmin, models.RoleClient}).
		Count(&activeUsers)

	var monthAppointments, prevMonthAppointments int64
	config.DB.Model(&models.Appointment{}).
		Where("date >= ?", firstOfMonth).Count(&monthAppointments)
	config.DB.Model(&models.Appointment{}).
		Where("date >= ? AND date < ?", firstOfPrevMonth, firstOfMonth).Count(&prevMonthAppointments)

	var monthRevenue, prevMonthRevenue float64
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND paid_at >= ?", models.PaymentStatusPaid, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthRevenue)
	config.DB.Model(&models.Payment{}).
		Where("status = ? AND paid_at >= ? AND paid_at < ?", models.PaymentStatusPaid, firstOfPrevMonth, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&prevMonthRevenue)

	c.JSON(http.StatusOK, gin.H{
		"totalSalons":       totalSalons,
		"approvedSalons":    approvedSalons,
		"activeUsers":       activeUsers,
		"monthAppointments": monthAppointments,
		"monthRevenue":      monthRevenue,
		"changes": gin.H{
			"appointments": percentChange(float64(monthAppointments), float64(prevMonthAppointments)),
			"revenue":      percentChange(monthRevenue, prevMonthRevenue),
		},
	})
}

// GetSalonStats aggregates a single salon's overview
func GetSalonStats(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	now := time.Now().UTC()
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)

	var appointmentsToday, appointmentsWeek int64
	config.DB.Model(&models.Appointment{}).
		Where("salon_id = ? AND date >= ? AND date < ?", salonUUID, today, tomorrow).
		Count(&appointmentsToday)
	config.DB.Model(&models.Appointment{}).
		Where("salon_id = ? AND date >= ?", salonUUID, weekStart).
		Count(&appointmentsWeek)

	var monthRevenue float64
	config.DB.Model(&models.Payment{}).
		Joins("JOIN appointments ON appointments.id = payments.appointment_id").
		Where("payments.status = ? AND appointments.salon_id = ? AND appointments.date >= ? AND appointments.date < ?",
			models.PaymentStatusPaid, salonUUID, firstOfMonth, firstOfNextMonth).
		Select("COALESCE(SUM(payments.amount), 0)").Scan(&monthRevenue)

	var activeClients int64
	config.DB.Model(&models.User{}).
		Where("salon_id = ? AND role = ? AND is_active = ?", salonUUID, models.RoleClient, true).
		Count(&activeClients)

	c.JSON(http.StatusOK, gin.H{
		"appointmentsToday": appointmentsToday,
		"appointmentsWeek":  appointmentsWeek,
		"monthRevenue":      monthRevenue,
		"activeClients":     activeClients,
	})
}
