package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Reservation{}, &models.DiningTable{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func futureDate() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() == time.Tuesday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func seedReservation(t *testing.T, db *gorm.DB, people int) *models.Reservation {
	res := &models.Reservation{
		FirstName:       "Morty",
		LastName:        "Smith",
		MobileNumber:    "(555) 1234",
		ReservationDate: futureDate(),
		ReservationTime: "18:00",
		People:          people,
		Status:          models.StatusBooked,
	}
	if err := db.Create(res).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return res
}

func seedTable(t *testing.T, db *gorm.DB, name string, capacity int) *models.DiningTable {
	table := &models.DiningTable{TableName: name, Capacity: capacity}
	if err := db.Create(table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func TestCreateForcesBookedStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := &models.Reservation{
		FirstName:       "Summer",
		LastName:        "Smith",
		MobileNumber:    "555-0101",
		ReservationDate: futureDate(),
		ReservationTime: "12:00",
		People:          2,
		Status:          "", // kosong dari klien
	}
	assert.NoError(t, svc.Create(res))
	assert.NotZero(t, res.ID)
	assert.Equal(t, models.StatusBooked, res.Status)
}

func TestSeatLinksTableAndReservation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := seedReservation(t, db, 4)
	table := seedTable(t, db, "A1", 6)

	seated, err := svc.Seat(table.ID, res.ID)
	assert.NoError(t, err)
	assert.True(t, seated.Occupied)
	if assert.NotNil(t, seated.ReservationID) {
		assert.Equal(t, res.ID, *seated.ReservationID)
	}

	var got models.Reservation
	assert.NoError(t, db.First(&got, res.ID).Error)
	assert.Equal(t, models.StatusSeated, got.Status)
}

func TestSeatInsufficientCapacityLeavesRecordsUntouched(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := seedReservation(t, db, 8)
	table := seedTable(t, db, "A1", 4)

	_, err := svc.Seat(table.ID, res.ID)
	assert.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)

	var gotTable models.DiningTable
	assert.NoError(t, db.First(&gotTable, table.ID).Error)
	assert.Nil(t, gotTable.ReservationID)
	assert.False(t, gotTable.Occupied)

	var gotRes models.Reservation
	assert.NoError(t, db.First(&gotRes, res.ID).Error)
	assert.Equal(t, models.StatusBooked, gotRes.Status)
}

func TestSeatOccupiedTableRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	first := seedReservation(t, db, 2)
	second := seedReservation(t, db, 2)
	table := seedTable(t, db, "A1", 4)

	_, err := svc.Seat(table.ID, first.ID)
	assert.NoError(t, err)

	_, err = svc.Seat(table.ID, second.ID)
	assert.Error(t, err)
	var se *utils.StateError
	assert.ErrorAs(t, err, &se)
}

func TestSeatAlreadySeatedReservationRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := seedReservation(t, db, 2)
	t1 := seedTable(t, db, "A1", 4)
	t2 := seedTable(t, db, "B1", 4)

	_, err := svc.Seat(t1.ID, res.ID)
	assert.NoError(t, err)

	_, err = svc.Seat(t2.ID, res.ID)
	assert.Error(t, err)
	var se *utils.StateError
	assert.ErrorAs(t, err, &se)
}

func TestSeatMissingReservationIs404(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, "A1", 4)

	_, err := svc.Seat(table.ID, 999)
	assert.Error(t, err)
	var nf *utils.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestSeatThenFinishRestoresTable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := seedReservation(t, db, 2)
	table := seedTable(t, db, "A1", 4)

	_, err := svc.Seat(table.ID, res.ID)
	assert.NoError(t, err)

	freed, err := svc.Finish(table.ID)
	assert.NoError(t, err)
	assert.Nil(t, freed.ReservationID)
	assert.False(t, freed.Occupied)

	var gotRes models.Reservation
	assert.NoError(t, db.First(&gotRes, res.ID).Error)
	assert.Equal(t, models.StatusFinished, gotRes.Status)
}

func TestFinishUnoccupiedTableRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, "A1", 4)

	_, err := svc.Finish(table.ID)
	assert.Error(t, err)
	var se *utils.StateError
	assert.ErrorAs(t, err, &se)
}

func TestFinishedReservationRejectsUpdatesIdempotently(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := seedReservation(t, db, 2)
	table := seedTable(t, db, "A1", 4)
	_, err := svc.Seat(table.ID, res.ID)
	assert.NoError(t, err)
	_, err = svc.Finish(table.ID)
	assert.NoError(t, err)

	// Dua kali berturut-turut harus menghasilkan error yang sama
	_, err1 := svc.UpdateStatus(res.ID, models.StatusSeated)
	_, err2 := svc.UpdateStatus(res.ID, models.StatusSeated)
	assert.Error(t, err1)
	assert.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())

	var se *utils.StateError
	assert.ErrorAs(t, err1, &se)
}

func TestUpdateStatusUnknownStatusRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	res := seedReservation(t, db, 2)

	_, err := svc.UpdateStatus(res.ID, "waiting")
	assert.Error(t, err)
	var ve *utils.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestCancelLeavesTableLinkageAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)

	res := seedReservation(t, db, 2)
	table := seedTable(t, db, "A1", 4)
	_, err := svc.Seat(table.ID, res.ID)
	assert.NoError(t, err)

	cancelled, err := svc.Cancel(res.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Meja sengaja tetap tertaut; pelepasan adalah tanggung jawab pemanggil
	var gotTable models.DiningTable
	assert.NoError(t, db.First(&gotTable, table.ID).Error)
	assert.NotNil(t, gotTable.ReservationID)
	assert.True(t, gotTable.Occupied)
}

func TestListByDateExcludesFinishedAndOrdersByTime(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	date := futureDate()

	mk := func(timeOfDay, status string) {
		res := &models.Reservation{
			FirstName: "Beth", LastName: "Smith", MobileNumber: "555-0000",
			ReservationDate: date, ReservationTime: timeOfDay,
			People: 2, Status: status,
		}
		assert.NoError(t, db.Create(res).Error)
	}
	mk("20:00", models.StatusBooked)
	mk("11:00", models.StatusSeated)
	mk("12:00", models.StatusFinished)
	mk("13:00", models.StatusCancelled)

	out, err := svc.ListByDate(date)
	assert.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, "11:00", out[0].ReservationTime)
	assert.Equal(t, "13:00", out[1].ReservationTime)
	assert.Equal(t, "20:00", out[2].ReservationTime)
	for _, r := range out {
		assert.NotEqual(t, models.StatusFinished, r.Status)
	}
}

func TestSearchByMobileMatchesDigits(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReservationService(db)
	date := futureDate()

	match := &models.Reservation{
		FirstName: "Jerry", LastName: "Smith", MobileNumber: "(555) 1234",
		ReservationDate: date, ReservationTime: "18:00", People: 2,
		Status: models.StatusBooked,
	}
	miss := &models.Reservation{
		FirstName: "Bird", LastName: "Person", MobileNumber: "555-9999",
		ReservationDate: date, ReservationTime: "19:00", People: 2,
		Status: models.StatusBooked,
	}
	assert.NoError(t, db.Create(match).Error)
	assert.NoError(t, db.Create(miss).Error)

	out, err := svc.SearchByMobile("555-1234")
	assert.NoError(t, err)
	if assert.Len(t, out, 1) {
		assert.Equal(t, match.ID, out[0].ID)
	}
}
