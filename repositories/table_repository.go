package repositories

import (
	"errors"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
	"gorm.io/gorm"
)

// TableRepository adalah adapter store untuk koleksi meja. Meja boleh
// dihapus fisik selama tidak sedang occupied.
type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *models.DiningTable) error {
	if err := r.DB.Create(t).Error; err != nil {
		return utils.WrapStore(err)
	}
	return nil
}

func (r *TableRepository) Read(id uint) (*models.DiningTable, error) {
	var t models.DiningTable
	if err := r.DB.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("Table %d does not exist", id)
		}
		return nil, utils.WrapStore(err)
	}
	return &t, nil
}

func (r *TableRepository) Update(t *models.DiningTable) error {
	if err := r.DB.Save(t).Error; err != nil {
		return utils.WrapStore(err)
	}
	return nil
}

// List -> seluruh meja urut nama menaik.
func (r *TableRepository) List() ([]models.DiningTable, error) {
	var out []models.DiningTable
	if err := r.DB.Order("table_name asc").Find(&out).Error; err != nil {
		return nil, utils.WrapStore(err)
	}
	return out, nil
}

func (r *TableRepository) Delete(t *models.DiningTable) error {
	if err := r.DB.Delete(t).Error; err != nil {
		return utils.WrapStore(err)
	}
	return nil
}

// CountOccupancy menghitung meja terisi dan kosong (dipakai dashboard).
func (r *TableRepository) CountOccupancy() (occupied int64, free int64, err error) {
	if err = r.DB.Model(&models.DiningTable{}).Where("occupied = ?", true).Count(&occupied).Error; err != nil {
		return 0, 0, utils.WrapStore(err)
	}
	if err = r.DB.Model(&models.DiningTable{}).Where("occupied = ?", false).Count(&free).Error; err != nil {
		return 0, 0, utils.WrapStore(err)
	}
	return occupied, free, nil
}
