package repositories

import (
	"errors"
	"strings"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

// ReservationRepository adalah adapter store untuk koleksi reservasi.
// Semua kegagalan database dibungkus StoreError; record yang tidak
// ditemukan menjadi NotFoundError. Reservasi tidak pernah dihapus
// fisik, hanya diterminasi lewat status.
type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) Create(res *models.Reservation) error {
	if err := r.DB.Create(res).Error; err != nil {
		return utils.WrapStore(err)
	}
	return nil
}

func (r *ReservationRepository) Read(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("Reservation %d does not exist", id)
		}
		return nil, utils.WrapStore(err)
	}
	return &res, nil
}

func (r *ReservationRepository) Update(res *models.Reservation) error {
	if err := r.DB.Save(res).Error; err != nil {
		return utils.WrapStore(err)
	}
	return nil
}

// ListByDate -> seluruh reservasi pada tanggal tersebut kecuali yang
// sudah finished, urut jam reservasi menaik.
func (r *ReservationRepository) ListByDate(date string) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.DB.
		Where("reservation_date = ?", date).
		Where("status <> ?", models.StatusFinished).
		Order("reservation_time asc").
		Find(&out).Error
	if err != nil {
		return nil, utils.WrapStore(err)
	}
	return out, nil
}

// SearchByMobile mencocokkan substring digit: nomor tersimpan dan kata
// kunci sama-sama dibuang karakter non-digitnya dulu. Penyaringan
// dilakukan di Go karena MySQL/SQLite tidak punya translate() seperti
// Postgres; skala data per restoran membuat ini aman.
func (r *ReservationRepository) SearchByMobile(mobile string) ([]models.Reservation, error) {
	var all []models.Reservation
	if err := r.DB.Order("reservation_date asc").Find(&all).Error; err != nil {
		return nil, utils.WrapStore(err)
	}

	needle := utils.DigitsOnly(mobile)
	matches := make([]models.Reservation, 0)
	for _, res := range all {
		if strings.Contains(utils.DigitsOnly(res.MobileNumber), needle) {
			matches = append(matches, res)
		}
	}
	return matches, nil
}

// CountByStatus menghitung reservasi per status untuk satu tanggal
// (dipakai dashboard).
func (r *ReservationRepository) CountByStatus(date string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, status := range []string{
		models.StatusBooked, models.StatusSeated,
		models.StatusFinished, models.StatusCancelled,
	} {
		var n int64
		err := r.DB.Model(&models.Reservation{}).
			Where("reservation_date = ? AND status = ?", date, status).
			Count(&n).Error
		if err != nil {
			return nil, utils.WrapStore(err)
		}
		counts[status] = n
	}
	return counts, nil
}
