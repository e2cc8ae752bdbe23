// services/credential_service.go
package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"salonbooker-backend/models"
	"salonbooker-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// Role-based redirect targets returned at login.
var roleRedirects = map[string]string{
	models.RolePlatformAdmin: "/platform-admin",
	models.RoleSalonAdmin:    "/salon-admin",
	models.RoleClient:        "/client",
}

// CredentialService owns login, registration and the reset-token lifecycle:
// tokens are high-entropy, stored only as a SHA-256 digest, expire after one
// hour and are usable exactly once.
type CredentialService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewCredentialService(db *gorm.DB, mailer Mailer) *CredentialService {
	return &CredentialService{db: db, mailer: mailer}
}

type SalonSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Contact  string    `json:"contact"`
	Approved bool      `json:"approved"`
}

// UserProfile is the sanitized projection returned by login and
// registration. It never carries the password hash.
type UserProfile struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Role     string        `json:"role"`
	IsActive bool          `json:"isActive"`
	Salon    *SalonSummary `json:"salon"`
}

type LoginResult struct {
	User     UserProfile
	Redirect string
}

type SalonInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

type RegisterInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     string      `json:"role"`
	Salon    *SalonInput `json:"salon"`
	SalonID  string      `json:"salon_id"`
}

func profileOf(user *models.User) UserProfile {
	profile := UserProfile{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
	if user.Salon != nil {
		profile.Salon = &SalonSummary{
			ID:       user.Salon.ID,
			Name:     user.Salon.Name,
			Address:  user.Salon.Address,
			Contact:  user.Salon.Contact,
			Approved: user.Salon.Approved,
		}
	}
	return profile
}

// Login checks the credentials against the stored bcrypt hash. Unknown email
// and wrong password fail identically so accounts cannot be enumerated.
func (s *CredentialService) Login(email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Msg: "Email and password are required"}
	}

	var user models.User
	err := s.db.Preload("Salon").
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AuthError{Msg: "Invalid credentials"}
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, &AuthError{Msg: "Invalid credentials"}
	}

	if !user.IsActive {
		return nil, &InactiveAccountError{Msg: "Account is inactive"}
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login", &now)

	return &LoginResult{
		User:     profileOf(&user),
		Redirect: roleRedirects[user.Role],
	}, nil
}

// Register creates an account. Salon admins get a fresh unapproved salon
// created with the user in one transaction; clients attach to an existing
// approved salon. Platform admins cannot self-register.
func (s *CredentialService) Register(input RegisterInput) (*UserProfile, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, &ValidationError{Msg: "All fields are required"}
	}
	if !models.ValidRole(input.Role) {
		return nil, &ValidationError{Msg: "Invalid user role"}
	}
	if input.Role == models.RolePlatformAdmin {
		return nil, &ValidationError{Msg: "Platform administrators cannot self-register"}
	}
	if !utils.ValidateEmail(input.Email) {
		return nil, &ValidationError{Msg: "Invalid email format"}
	}
	if !utils.ValidatePassword(input.Password) {
		return nil, &ValidationError{Msg: "Password must be at least 8 characters with upper and lower case letters and a digit"}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Msg: "This email is already registered"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Password: hashed,
		Role:     input.Role,
		IsActive: true,
	}

	switch input.Role {
	case models.RoleSalonAdmin:
		if input.Salon == nil || input.Salon.Name == "" {
			return nil, &ValidationError{Msg: "Salon details are required for salon administrators"}
		}
		// Salon and admin user are all-or-nothing: a salon without its
		// admin (or the reverse) must never be observable.
		err = s.db.Transaction(func(tx *gorm.DB) error {
			salon := models.Salon{
				Name:     input.Salon.Name,
				Address:  input.Salon.Address,
				Contact:  input.Salon.Contact,
				Approved: false,
			}
			if err := tx.Create(&salon).Error; err != nil {
				return err
			}
			user.SalonID = &salon.ID
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			user.Salon = &salon
			return nil
		})
		if err != nil {
			return nil, err
		}

	case models.RoleClient:
		if input.SalonID == "" {
			return nil, &ValidationError{Msg: "A salon is required for client registration"}
		}
		salonID, err := uuid.Parse(input.SalonID)
		if err != nil {
			return nil, &ValidationError{Msg: "Invalid salon ID format"}
		}
		var salon models.Salon
		if err := s.db.First(&salon, "id = ?", salonID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Msg: "Salon not found"}
			}
			return nil, err
		}
		if !salon.Approved {
			return nil, &ValidationError{Msg: "Salon not approved yet"}
		}
		user.SalonID = &salon.ID
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		user.Salon = &salon
	}

	profile := profileOf(&user)
	return &profile, nil
}

// ForgotPassword issues a reset token for an active account. The response is
// identical whether or not the email exists; only the one-way digest of the
// token is persisted and the plaintext goes out via the mail collaborator.
func (s *CredentialService) ForgotPassword(email string) error {
	if email == "" {
		return &ValidationError{Msg: "Email is required"}
	}

	var user models.User
	err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	digest := hashResetToken(token)
	expires := time.Now().Add(resetTokenTTL)

	err = s.db.Model(&user).Updates(map[string]interface{}{
		"reset_token_hash":    digest,
		"reset_token_expires": expires,
	}).Error
	if err != nil {
		return err
	}

	resetURL := os.Getenv("APP_URL") + "/reset-password?token=" + token
	if err := s.mailer.SendPasswordReset(user.Email, user.Name, resetURL); err != nil {
		// Delivery failures must not change the response shape.
		log.Printf("failed to send reset mail to %s: %v", user.Email, err)
	}

	return nil
}

// VerifyResetToken reports whether a plaintext token matches an unexpired
// digest on an active account. Missing and expired tokens are
// indistinguishable to the caller.
func (s *CredentialService) VerifyResetToken(token string) error {
	if token == "" {
		return &ValidationError{Msg: "Token is required"}
	}
	_, err := s.findByResetToken(token)
	return err
}

// ResetPassword redeems a token: the password hash is replaced and both
// token fields are cleared in the same update, making the token single-use.
func (s *CredentialService) ResetPassword(token, password string) error {
	if token == "" || password == "" {
		return &ValidationError{Msg: "Token and password are required"}
	}
	if !utils.ValidatePassword(password) {
		return &ValidationError{Msg: "Password must be at least 8 characters with upper and lower case letters and a digit"}
	}

	user, err := s.findByResetToken(token)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.db.Model(user).Updates(map[string]interface{}{
		"password":            hashed,
		"reset_token_hash":    nil,
		"reset_token_expires": nil,
	}).Error
}

func (s *CredentialService) findByResetToken(token string) (*models.User, error) {
	var user models.User
	err := s.db.Where("reset_token_hash = ? AND reset_token_expires > ? AND is_active = ?",
		hashResetToken(token), time.Now(), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &InvalidTokenError{Msg: "Token is invalid or has expired"}
		}
		return nil, err
	}
	return &user, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
