package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agendabi/bi-scheduler/internal/cache"
	"github.com/agendabi/bi-scheduler/internal/config"
	"github.com/agendabi/bi-scheduler/internal/db"
	"github.com/agendabi/bi-scheduler/internal/models"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	RegisterRoutes(r, gdb, cfg, cache.NewNoop(), zap.NewNop())
	return r, gdb
}

func seedWorld(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	users := []models.User{
		{ID: "U1", Email: "u1@example.ao", PasswordHash: "x", FullName: "Cidadão Um", Role: "USER"},
		{ID: "U2", Email: "u2@example.ao", PasswordHash: "x", FullName: "Cidadão Dois", Role: "USER"},
		{ID: "ADM", Email: "admin@example.ao", PasswordHash: "x", FullName: "Administrador", Role: "ADMIN"},
	}
	for i := range users {
		require.NoError(t, gdb.Create(&users[i]).Error)
	}

	require.NoError(t, gdb.Create(&models.Service{
		ID: "S1", Name: "Emissão de BI (1ª via)", Active: true,
	}).Error)

	require.NoError(t, gdb.Create(&models.Posto{
		ID: "L1", Name: "Posto Central de Luanda", Province: "Luanda", Status: "ACTIVE",
	}).Error)
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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

func futureWeekday() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func bookingBody(date string) gin.H {
	return gin.H{
		"service_id":       "S1",
		"posto_id":         "L1",
		"appointment_date": date,
		"appointment_time": "14:00",
	}
}

func TestBookingFlowOverHTTP(t *testing.T) {
	r, gdb := newTestServer(t)
	seedWorld(t, gdb)

	date := futureWeekday()
	u1 := tokenFor(t, "U1", "USER")
	u2 := tokenFor(t, "U2", "USER")

	// slot livre antes de qualquer reserva
	w := doJSON(t, r, http.MethodGet,
		"/api/availability?posto=L1&date="+date+"&time=14:00", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available": true}`, w.Body.String())

	// U1 reserva
	w = doJSON(t, r, http.MethodPost, "/api/appointments", u1, bookingBody(date))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "SCHEDULED", created.Status)
	assert.Regexp(t, `^BI[0-9A-Z]+$`, created.ReferenceNumber)

	// slot agora ocupado
	w = doJSON(t, r, http.MethodGet,
		"/api/availability?posto=L1&date="+date+"&time=14:00", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available": false}`, w.Body.String())

	// U2 colide
	w = doJSON(t, r, http.MethodPost, "/api/appointments", u2, bookingBody(date))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot_taken")

	// U1 cancela, o slot libera e U2 consegue reservar
	w = doJSON(t, r, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%s/cancel", created.ID), u1, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/appointments", u2, bookingBody(date))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestStatusAuthorizationOverHTTP(t *testing.T) {
	r, gdb := newTestServer(t)
	seedWorld(t, gdb)

	u1 := tokenFor(t, "U1", "USER")
	u2 := tokenFor(t, "U2", "USER")
	adm := tokenFor(t, "ADM", "ADMIN")

	w := doJSON(t, r, http.MethodPost, "/api/appointments", u1, bookingBody(futureWeekday()))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	statusPath := fmt.Sprintf("/api/appointments/%s/status", created.ID)

	// estranho não mexe
	w = doJSON(t, r, http.MethodPatch, statusPath, u2, gin.H{"status": "CANCELLED"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var ap models.Appointment
	require.NoError(t, gdb.First(&ap, "id = ?", created.ID).Error)
	assert.Equal(t, "SCHEDULED", ap.Status)

	// admin conclui
	w = doJSON(t, r, http.MethodPatch, statusPath, adm, gin.H{"status": "COMPLETED"})
	assert.Equal(t, http.StatusOK, w.Code)

	// estado terminal é final
	w = doJSON(t, r, http.MethodPatch, statusPath, adm, gin.H{"status": "CANCELLED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
}

func TestAdminOnlyRoutes(t *testing.T) {
	r, gdb := newTestServer(t)
	seedWorld(t, gdb)

	u1 := tokenFor(t, "U1", "USER")
	adm := tokenFor(t, "ADM", "ADMIN")

	w := doJSON(t, r, http.MethodPost, "/api/appointments", u1, bookingBody(futureWeekday()))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	purgePath := "/api/admin/appointments/" + created.ID

	w = doJSON(t, r, http.MethodDelete, purgePath, u1, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", u1, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, purgePath, adm, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, gdb.Model(&models.Appointment{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAuthRequired(t *testing.T) {
	r, gdb := newTestServer(t)
	seedWorld(t, gdb)

	w := doJSON(t, r, http.MethodPost, "/api/appointments", "", bookingBody(futureWeekday()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/appointments", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDayAvailabilityOverHTTP(t *testing.T) {
	r, gdb := newTestServer(t)
	seedWorld(t, gdb)

	date := futureWeekday()
	u1 := tokenFor(t, "U1", "USER")

	w := doJSON(t, r, http.MethodPost, "/api/appointments", u1, bookingBody(date))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/availability/day?posto=L1&date="+date, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Slots []struct {
			Time      string `json:"time"`
			Available bool   `json:"available"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 15)

	for _, slot := range resp.Slots {
		if slot.Time == "14:00" {
			assert.False(t, slot.Available)
		} else {
			assert.True(t, slot.Available, "slot %s", slot.Time)
		}
	}
}

func TestPublicCatalog(t *testing.T) {
	r, gdb := newTestServer(t)
	seedWorld(t, gdb)

	w := doJSON(t, r, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Emissão de BI")

	w = doJSON(t, r, http.MethodGet, "/api/postos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Posto Central de Luanda")

	w = doJSON(t, r, http.MethodGet, "/api/postos/L1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/postos/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
