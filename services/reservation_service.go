package services

import (
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/repositories"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

// ReservationService memegang state machine reservasi:
//
//	booked -> seated -> finished
//	booked/seated -> cancelled
//
// finished dan cancelled terminal. Seat dan Finish mengubah dua record
// (meja + reservasi) di dalam satu transaksi database supaya meja tidak
// pernah tertaut ke reservasi yang bukan seated.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Create menyimpan reservasi baru. Input diasumsikan sudah lolos
// validators; status selalu dipaksa booked.
func (s *ReservationService) Create(res *models.Reservation) error {
	res.Status = models.StatusBooked
	return repositories.NewReservationRepository(s.DB).Create(res)
}

func (s *ReservationService) Read(id uint) (*models.Reservation, error) {
	return repositories.NewReservationRepository(s.DB).Read(id)
}

// UpdateReservation memperbarui field tamu pada reservasi yang sudah
// ada. Status tidak diubah lewat jalur ini (hanya lewat UpdateStatus).
func (s *ReservationService) UpdateReservation(id uint, in *models.Reservation) (*models.Reservation, error) {
	repo := repositories.NewReservationRepository(s.DB)
	existing, err := repo.Read(id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.MobileNumber = in.MobileNumber
	existing.ReservationDate = in.ReservationDate
	existing.ReservationTime = in.ReservationTime
	existing.People = in.People

	if err := repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateStatus menerapkan transisi status generik. Reservasi yang sudah
// finished menolak perubahan apapun.
func (s *ReservationService) UpdateStatus(id uint, status string) (*models.Reservation, error) {
	if !models.ValidStatus(status) {
		return nil, utils.Validationf("unknown status: %s", status)
	}

	repo := repositories.NewReservationRepository(s.DB)
	res, err := repo.Read(id)
	if err != nil {
		return nil, err
	}
	if res.Status == models.StatusFinished {
		return nil, utils.Statef("a finished reservation cannot be updated")
	}

	res.Status = status
	if err := repo.Update(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel menandai reservasi cancelled. Sengaja tidak menyentuh kolom
// reservation_id di meja: bila reservasi sedang seated, meja tetap
// tertaut sampai staff melepasnya lewat DELETE /tables/:id/seat.
// Risiko inkonsistensi ini disadari dan dibiarkan ke disiplin pemanggil.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	return s.UpdateStatus(id, models.StatusCancelled)
}

// Seat menautkan reservasi ke meja dan mengubah statusnya jadi seated.
// Urutan pemeriksaan: meja ada (404) -> reservasi ada (404) ->
// kapasitas cukup (400) -> meja belum terisi (400) -> reservasi belum
// seated (400). Kedua penulisan terjadi dalam satu transaksi.
func (s *ReservationService) Seat(tableID, reservationID uint) (*models.DiningTable, error) {
	var seated *models.DiningTable

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		tables := repositories.NewTableRepository(tx)
		reservations := repositories.NewReservationRepository(tx)

		table, err := tables.Read(tableID)
		if err != nil {
			return err
		}
		res, err := reservations.Read(reservationID)
		if err != nil {
			return err
		}

		if res.People > table.Capacity {
			return utils.Validationf("Table does not have sufficient capacity")
		}
		if table.ReservationID != nil {
			return utils.Statef("Table is occupied")
		}
		if res.Status == models.StatusSeated {
			return utils.Statef("This reservation has already been seated")
		}

		res.Status = models.StatusSeated
		if err := reservations.Update(res); err != nil {
			return err
		}

		table.ReservationID = &res.ID
		table.Occupied = true
		if err := tables.Update(table); err != nil {
			return err
		}

		seated = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seated, nil
}

// Finish melepas tautan meja dan menandai reservasinya finished, dalam
// satu transaksi. Meja yang tidak sedang terisi ditolak.
func (s *ReservationService) Finish(tableID uint) (*models.DiningTable, error) {
	var freed *models.DiningTable

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		tables := repositories.NewTableRepository(tx)
		reservations := repositories.NewReservationRepository(tx)

		table, err := tables.Read(tableID)
		if err != nil {
			return err
		}
		if table.ReservationID == nil {
			return utils.Statef("Table is not occupied")
		}

		res, err := reservations.Read(*table.ReservationID)
		if err != nil {
			return err
		}
		res.Status = models.StatusFinished
		if err := reservations.Update(res); err != nil {
			return err
		}

		table.ReservationID = nil
		table.Occupied = false
		if err := tables.Update(table); err != nil {
			return err
		}

		freed = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	return freed, nil
}

// ListByDate -> reservasi satu tanggal tanpa yang finished, urut jam.
func (s *ReservationService) ListByDate(date string) ([]models.Reservation, error) {
	return repositories.NewReservationRepository(s.DB).ListByDate(date)
}

// SearchByMobile -> pencarian substring digit pada nomor telepon.
func (s *ReservationService) SearchByMobile(mobile string) ([]models.Reservation, error) {
	return repositories.NewReservationRepository(s.DB).SearchByMobile(mobile)
}
