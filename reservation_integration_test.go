package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/router"
	"github.com/yeremiapane/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 0. Register & login staff -> token
// 1. Create table + create reservation (booked)
// 2. Seat -> meja tertaut, reservasi seated
// 3. Dashboard stats terlihat lewat token
// 4. Finish -> meja lepas, reservasi finished
// 5. Reservasi finished menolak perubahan status
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	token := loginTest(t, r)

	tableID := createTableTest(t, r)
	reservationID := createReservationTest(t, r)

	seatTest(t, r, tableID, reservationID)
	dashboardTest(t, r, token)
	finishTest(t, r, tableID, reservationID, db)

	// reservasi finished -> transisi apa pun ditolak
	w := request(r, "PUT", reservationPath(reservationID)+"/status",
		map[string]string{"status": "seated"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.DiningTable{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func request(r *gin.Engine, method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func loginTest(t *testing.T, r *gin.Engine) string {
	w := request(r, "POST", "/register", map[string]string{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "secret123",
		"role":     "admin",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(r, "POST", "/login", map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func createTableTest(t *testing.T, r *gin.Engine) uint {
	w := request(r, "POST", "/tables", map[string]interface{}{
		"table_name": "Window 2",
		"capacity":   6,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	id, ok := data["table_id"].(float64)
	assert.True(t, ok)
	return uint(id)
}

func createReservationTest(t *testing.T, r *gin.Engine) uint {
	date := time.Now().AddDate(0, 0, 7)
	for date.Weekday() == time.Tuesday {
		date = date.AddDate(0, 0, 1)
	}

	w := request(r, "POST", "/reservations", map[string]interface{}{
		"first_name":       "Rick",
		"last_name":        "Sanchez",
		"mobile_number":    "202-555-0164",
		"reservation_date": date.Format("2006-01-02"),
		"reservation_time": "18:00",
		"people":           4,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "booked", data["status"])
	id, ok := data["reservation_id"].(float64)
	assert.True(t, ok)
	return uint(id)
}

func reservationPath(id uint) string {
	return "/reservations/" + itoa(id)
}

func tablePath(id uint) string {
	return "/tables/" + itoa(id)
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}

func seatTest(t *testing.T, r *gin.Engine, tableID, reservationID uint) {
	w := request(r, "PUT", tablePath(tableID)+"/seat", map[string]interface{}{
		"reservation_id": reservationID,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, true, data["occupied"])

	// reservasi ikut berubah jadi seated
	w = request(r, "GET", reservationPath(reservationID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seated", decodeData(t, w)["status"])
}

func dashboardTest(t *testing.T, r *gin.Engine, token string) {
	// tanpa token -> 401
	w := request(r, "GET", "/admin/dashboard/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, "GET", "/admin/dashboard/stats", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Contains(t, data, "reservations")
	assert.Contains(t, data, "tables")
}

func finishTest(t *testing.T, r *gin.Engine, tableID, reservationID uint, db *gorm.DB) {
	w := request(r, "DELETE", tablePath(tableID)+"/seat", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, false, data["occupied"])
	assert.Nil(t, data["reservation_id"])

	var res models.Reservation
	assert.NoError(t, db.First(&res, reservationID).Error)
	assert.Equal(t, models.StatusFinished, res.Status)
}
