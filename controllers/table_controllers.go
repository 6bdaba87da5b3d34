package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repositories"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/utils"
	"github.com/yeremiapane/reservation-app/validators"
)

type TableController struct {
	DB   *gorm.DB
	Repo *repositories.TableRepository
	Svc  *services.ReservationService
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{
		DB:   db,
		Repo: repositories.NewTableRepository(db),
		Svc:  services.NewReservationService(db),
	}
}

// CreateTable -> menambahkan meja baru (kosong, tanpa tautan reservasi)
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableName string `json:"table_name"`
		Capacity  int    `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.DiningTable{
		TableName: req.TableName,
		Capacity:  req.Capacity,
	}
	if err := validators.ValidateTable(&table); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	if err := tc.Repo.Create(&table); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.TableName, table.Capacity)
	utils.RespondData(c, http.StatusCreated, table)
}

// GetAllTables -> seluruh meja urut nama
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Repo.List()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	table, err := tc.Repo.Read(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondData(c, http.StatusOK, table)
}

// SeatTable -> PUT /tables/:table_id/seat, menautkan reservasi ke meja
// dan menandainya seated dalam satu transaksi.
func (tc *TableController) SeatTable(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	var body struct {
		ReservationID uint `json:"reservation_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Svc.Seat(id, body.ReservationID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d seated with reservation %d", table.ID, body.ReservationID)
	utils.RespondData(c, http.StatusOK, table)
}

// FinishTable -> DELETE /tables/:table_id/seat, melepas tautan dan
// menandai reservasinya finished.
func (tc *TableController) FinishTable(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	table, err := tc.Svc.Finish(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d finished and freed", table.ID)
	utils.RespondData(c, http.StatusOK, table)
}

// DeleteTable -> hard delete, hanya untuk meja yang tidak terisi.
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	table, err := tc.Repo.Read(id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	if table.ReservationID != nil {
		utils.RespondAppError(c, utils.Statef("Table is occupied"))
		return
	}

	if err := tc.Repo.Delete(table); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondData(c, http.StatusOK, gin.H{"table_id": table.ID})
}
