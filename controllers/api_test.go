package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salonbooker-backend/config"
	"salonbooker-backend/models"
	"salonbooker-backend/routes"
	"salonbooker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.ServiceCategory{},
		&models.ServiceSubcategory{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
	))
	require.NoError(t, config.EnsureSlotIndex(db))

	config.DB = db
	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedPlatformAdmin(t *testing.T) {
	t.Helper()
	hashed, err := utils.HashPassword("Admin1234")
	require.NoError(t, err)
	require.NoError(t, config.DB.Create(&models.User{
		Name:     "Platform Administrator",
		Email:    "admin@salonbooker.com",
		Password: hashed,
		Role:     models.RolePlatformAdmin,
		IsActive: true,
	}).Error)
}

func login(t *testing.T, r *gin.Engine, email, password string) (token, redirect string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	return body["token"].(string), body["redirect"].(string)
}

func TestBookingFlow(t *testing.T) {
	r := setupAPI(t)
	seedPlatformAdmin(t)

	// Salon admin registers; the salon starts unapproved.
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Maria Garcia", "email": "maria@salon.com", "password": "Salon1234",
		"role": "salon_admin", "salon": gin.H{"name": "Maria's Beauty Salon"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	salonID := decode(t, w)["user"].(map[string]interface{})["salon"].(map[string]interface{})["id"].(string)

	// Clients cannot register against an unapproved salon.
	clientInput := gin.H{
		"name": "Ana Lopez", "email": "ana@client.com", "password": "Client1234",
		"role": "client", "salon_id": salonID,
	}
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", clientInput)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Platform admin approves the salon.
	adminToken, adminRedirect := login(t, r, "admin@salonbooker.com", "Admin1234")
	assert.Equal(t, "/platform-admin", adminRedirect)
	w = doJSON(t, r, http.MethodPatch, "/admin/salons/"+salonID+"/approve", adminToken, gin.H{"approved": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Now the client can register and log in.
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", clientInput)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientToken, clientRedirect := login(t, r, "ana@client.com", "Client1234")
	assert.Equal(t, "/client", clientRedirect)

	var client models.User
	require.NoError(t, config.DB.Where("email = ?", "ana@client.com").First(&client).Error)

	// Salon admin publishes a service; the default subcategory gets
	// provisioned on first use.
	salonToken, _ := login(t, r, "maria@salon.com", "Salon1234")
	w = doJSON(t, r, http.MethodPost, "/salons/"+salonID+"/services", salonToken, gin.H{
		"name": "Women's haircut", "duration": 45, "price": 250,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	serviceID := decode(t, w)["service"].(map[string]interface{})["ID"].(string)

	var subcategories int64
	config.DB.Model(&models.ServiceSubcategory{}).Count(&subcategories)
	assert.EqualValues(t, 1, subcategories)

	// Booking: success, then conflict, then cancel frees the slot.
	date := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	bookInput := gin.H{
		"client_id": client.ID.String(), "service_id": serviceID,
		"date": date, "time": "10:00",
	}
	w = doJSON(t, r, http.MethodPost, "/appointments", clientToken, bookInput)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appointmentID := decode(t, w)["appointment"].(map[string]interface{})["ID"].(string)

	w = doJSON(t, r, http.MethodPost, "/appointments", clientToken, bookInput)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/appointments/"+appointmentID+"/cancel", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, "/appointments/"+appointmentID+"/cancel", clientToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/appointments", clientToken, bookInput)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Listing by client.
	w = doJSON(t, r, http.MethodGet, "/appointments?client_id="+client.ID.String(), clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r := setupAPI(t)
	seedPlatformAdmin(t)

	wrongPassword := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "admin@salonbooker.com", "password": "WrongPass1",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "nobody@salonbooker.com", "password": "Admin1234",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestForgotPasswordResponseShape(t *testing.T) {
	r := setupAPI(t)
	seedPlatformAdmin(t)

	known := doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "admin@salonbooker.com"})
	unknown := doJSON(t, r, http.MethodPost, "/auth/forgot-password", "", gin.H{"email": "nobody@salonbooker.com"})

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, http.StatusOK, unknown.Code)
	assert.JSONEq(t, known.Body.String(), unknown.Body.String())
}

func TestAdminRoutesRequirePlatformRole(t *testing.T) {
	r := setupAPI(t)
	seedPlatformAdmin(t)

	// No token at all.
	w := doJSON(t, r, http.MethodGet, "/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A salon admin token is not enough.
	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Maria Garcia", "email": "maria@salon.com", "password": "Salon1234",
		"role": "salon_admin", "salon": gin.H{"name": "Maria's Beauty Salon"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	salonToken, _ := login(t, r, "maria@salon.com", "Salon1234")
	w = doJSON(t, r, http.MethodGet, "/admin/users", salonToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, _ := login(t, r, "admin@salonbooker.com", "Admin1234")
	w = doJSON(t, r, http.MethodGet, "/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
