package validators

import (
	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// ValidateTable memeriksa payload pembuatan meja: nama dan kapasitas
// wajib ada, nama minimal dua karakter, kapasitas positif.
func ValidateTable(t *models.DiningTable) error {
	if t.TableName == "" {
		return utils.Validationf("The table_name field is missing")
	}
	if len(t.TableName) < 2 {
		return utils.Validationf("Must include a table_name longer than one character")
	}
	if t.Capacity < 1 {
		return utils.Validationf("The capacity field is missing")
	}
	return nil
}
