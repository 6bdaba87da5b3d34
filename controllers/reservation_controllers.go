package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
	"github.com/yeremiapane/reservation-app/validators"
)

type ReservationController struct {
	DB  *gorm.DB
	Svc *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:  db,
		Svc: services.NewReservationService(db),
	}
}

type reservationRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	MobileNumber    string `json:"mobile_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	People          int    `json:"people"`
	Status          string `json:"status"`
}

func (req *reservationRequest) toModel() *models.Reservation {
	return &models.Reservation{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		MobileNumber:    req.MobileNumber,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		People:          req.People,
		Status:          req.Status,
	}
}

// ListReservations -> GET /reservations?date= atau ?mobile_number=
func (rc *ReservationController) ListReservations(c *gin.Context) {
	date := c.Query("date")
	mobile := c.Query("mobile_number")

	switch {
	case date != "":
		out, err := rc.Svc.ListByDate(date)
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		utils.RespondData(c, http.StatusOK, out)
	case mobile != "":
		out, err := rc.Svc.SearchByMobile(mobile)
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		utils.RespondData(c, http.StatusOK, out)
	default:
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("either date or mobile_number query is required"))
	}
}

// CreateReservation -> membuat reservasi baru (status dipaksa booked)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res := req.toModel()
	if err := validators.ValidateReservation(res, time.Now()); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := rc.Svc.Create(res); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for %s %s (%s %s, people=%d)",
		res.ID, res.FirstName, res.LastName, res.ReservationDate, res.ReservationTime, res.People)
	utils.RespondData(c, http.StatusCreated, res)
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := paramID(c, "reservation_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	res, err := rc.Svc.Read(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, res)
}

// UpdateReservationStatus -> PUT /reservations/:reservation_id/status
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, err := paramID(c, "reservation_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validators.ValidateStatus(body.Status); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	res, err := rc.Svc.UpdateStatus(id, body.Status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", res.ID, res.Status)
	utils.RespondData(c, http.StatusOK, res)
}

// UpdateReservation -> PUT /reservations/:reservation_id, record penuh
// divalidasi ulang seperti pembuatan.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := paramID(c, "reservation_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	in := req.toModel()
	if err := validators.ValidateReservation(in, time.Now()); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	res, err := rc.Svc.UpdateReservation(id, in)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, res)
}

// paramID membaca path param sebagai id numerik.
func paramID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, utils.Validationf("%s must be a number", name)
	}
	return uint(id), nil
}
