package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/repositories"
	"github.com/yeremiapane/reservation-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> ringkasan reservasi per status untuk satu
// tanggal (default hari ini) plus okupansi meja.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	counts, err := repositories.NewReservationRepository(ac.DB).CountByStatus(date)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	occupied, free, err := repositories.NewTableRepository(ac.DB).CountOccupancy()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"date":         date,
		"reservations": counts,
		"tables": gin.H{
			"occupied": occupied,
			"free":     free,
			"total":    occupied + free,
		},
	})
}

// GetAllUsers -> khusus admin
func (ac *AdminController) GetAllUsers(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var users []struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := ac.DB.Table("users").Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondData(c, http.StatusOK, users)
}
