// services/booking_service.go
package services

import (
	"errors"
	"time"

	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService owns the appointment invariants: slot uniqueness among
// non-cancelled appointments, no booking in the past, and the guarded
// transition to cancelled.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type CreateAppointmentInput struct {
	ClientID  string `json:"client_id"`
	ServiceID string `json:"service_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	Notes     string `json:"notes"`
}

// AppointmentRow is the enriched listing projection.
type AppointmentRow struct {
	ID           uuid.UUID `json:"id"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	ClientName   string    `json:"clientName"`
	ClientEmail  string    `json:"clientEmail"`
	ServiceName  string    `json:"serviceName"`
	ServicePrice float64   `json:"servicePrice"`
	SalonName    string    `json:"salonName"`
}

// CreateAppointment validates the request, resolves client and service,
// rejects past slots and double bookings, and persists a pending
// appointment. The conflict check and the insert run in one transaction and
// the partial unique slot index backs them against concurrent requests.
func (s *BookingService) CreateAppointment(input CreateAppointmentInput) (*models.Appointment, error) {
	if input.ClientID == "" || input.ServiceID == "" || input.Date == "" || input.Time == "" {
		return nil, &ValidationError{Msg: "All fields are required"}
	}

	clientID, err := uuid.Parse(input.ClientID)
	if err != nil {
		return nil, &ValidationError{Msg: "Invalid client ID format"}
	}
	serviceID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		return nil, &ValidationError{Msg: "Invalid service ID format"}
	}

	var client models.User
	if err := s.db.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: "User not found"}
		}
		return nil, err
	}

	var service models.Service
	if err := s.db.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: "Service not found"}
		}
		return nil, err
	}

	day, startsAt, err := utils.ParseSlot(input.Date, input.Time)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}
	if !startsAt.After(time.Now().UTC()) {
		return nil, &PastDateError{Msg: "Appointments cannot be scheduled in the past"}
	}

	appointment := models.Appointment{
		UserID:    clientID,
		ServiceID: serviceID,
		SalonID:   service.SalonID,
		Date:      day,
		Time:      input.Time,
		Status:    models.StatusPending,
		Notes:     input.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Appointment
		err := tx.Where("service_id = ? AND date = ? AND time = ? AND status <> ?",
			serviceID, day, input.Time, models.StatusCancelled).
			First(&existing).Error
		if err == nil {
			return &ConflictError{Msg: "This time slot is already booked"}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		// A concurrent booking that slipped past the check trips the slot
		// index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Msg: "This time slot is already booked"}
		}
		return nil, err
	}

	return &appointment, nil
}

// CancelAppointment transitions an appointment to cancelled. Completed
// appointments cannot be cancelled; cancelling twice is rejected, not
// silently ignored.
func (s *BookingService) CancelAppointment(id uuid.UUID) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: "Appointment not found"}
		}
		return nil, err
	}

	switch appointment.Status {
	case models.StatusCompleted:
		return nil, &InvalidStateError{Msg: "Cannot cancel a completed appointment"}
	case models.StatusCancelled:
		return nil, &InvalidStateError{Msg: "Appointment is already cancelled"}
	}

	appointment.Status = models.StatusCancelled
	if err := s.db.Save(&appointment).Error; err != nil {
		return nil, err
	}

	return &appointment, nil
}

// ListAppointments returns appointments enriched for display, newest date
// first. The client filter wins when both filters are present.
func (s *BookingService) ListAppointments(clientID, salonID *uuid.UUID) ([]AppointmentRow, error) {
	query := s.db.Table("appointments").
		Select(`appointments.id, appointments.date, appointments.time, appointments.status, appointments.notes,
			users.name AS client_name, users.email AS client_email,
			services.name AS service_name, services.price AS service_price,
			salons.name AS salon_name`).
		Joins("JOIN users ON users.id = appointments.user_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Joins("JOIN salons ON salons.id = appointments.salon_id").
		Where("appointments.deleted_at IS NULL").
		Order("appointments.date DESC")

	if clientID != nil {
		query = query.Where("appointments.user_id = ?", *clientID)
	} else if salonID != nil {
		query = query.Where("appointments.salon_id = ?", *salonID)
	}

	rows := []AppointmentRow{}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
