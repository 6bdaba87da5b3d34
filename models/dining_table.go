package models

import "time"

// DiningTable adalah meja makan. ReservationID terisi hanya selama
// reservasi yang bersangkutan berstatus seated; Occupied selalu
// mengikuti ReservationID (diubah bersama dalam satu transaksi).
type DiningTable struct {
	ID            uint         `gorm:"primaryKey" json:"table_id"`
	TableName     string       `gorm:"type:varchar(50);not null" json:"table_name"`
	Capacity      int          `gorm:"not null" json:"capacity"`
	Occupied      bool         `gorm:"not null;default:false" json:"occupied"`
	ReservationID *uint        `gorm:"index" json:"reservation_id"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt     time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at"`
}
