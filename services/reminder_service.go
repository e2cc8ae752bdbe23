// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Day-before appointment reminders at 9 AM
	c.AddFunc("0 9 * * *", s.SendAppointmentReminders)

	// Expired reset tokens are dead weight; sweep them hourly
	c.AddFunc("@hourly", s.CleanupExpiredResetTokens)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendAppointmentReminders texts every client with a non-cancelled
// appointment tomorrow. Failures are logged and never retried.
func (s *ReminderService) SendAppointmentReminders() {
	log.Println("Starting appointment reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().UTC()).AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := s.db.Preload("User").Preload("Service").Preload("Service.Salon").
		Where("date = ? AND status <> ?", tomorrow, models.StatusCancelled).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.User == nil || appointment.Service == nil || appointment.Service.Salon == nil {
			continue
		}
		message := fmt.Sprintf("Hi %s, a reminder of your %s appointment at %s tomorrow at %s.",
			appointment.User.Name,
			appointment.Service.Name,
			appointment.Service.Salon.Name,
			appointment.Time)

		if err := s.sendSMS(appointment.Service.Salon.Contact, message); err != nil {
			log.Printf("Appointment %s: failed to send reminder: %v", appointment.ID, err)
			continue
		}
		log.Printf("Appointment %s: reminder sent", appointment.ID)
	}

	log.Println("Appointment reminder processing completed")
}

// CleanupExpiredResetTokens clears reset fields whose expiry has passed.
func (s *ReminderService) CleanupExpiredResetTokens() {
	result := s.db.Model(&models.User{}).
		Where("reset_token_expires IS NOT NULL AND reset_token_expires <= ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token_hash":    nil,
			"reset_token_expires": nil,
		})
	if result.Error != nil {
		log.Printf("Failed to clean up expired reset tokens: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Cleared %d expired reset tokens", result.RowsAffected)
	}
}

func (s *ReminderService) sendSMS(to, body string) error {
	from := os.Getenv("TWILIO_FROM_NUMBER")
	if from == "" || to == "" {
		return fmt.Errorf("missing sender or recipient number")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
