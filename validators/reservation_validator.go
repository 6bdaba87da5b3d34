package validators

import (
	"regexp"
	"time"

	"github.com/yeremiapane/reservation-app/models"
	"github.com/yeremiapane/reservation-app/utils"
)

// Jam operasional restoran (inklusif). Perbandingan string aman
// karena format HH:MM 24-jam selalu zero-padded.
const (
	OpeningTime = "10:30"
	LastSeating = "21:30"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}$`)
)

// reservationRule adalah satu aturan murni: menerima payload dan waktu
// "sekarang", mengembalikan error pada pelanggaran pertama. Aturan
// dijalankan berurutan sebelum mutasi apapun.
type reservationRule func(r *models.Reservation, now time.Time) error

var reservationRules = []reservationRule{
	requiredFields,
	peoplePositive,
	dateFormat,
	notOnTuesday,
	futureDateTime,
	timeFormat,
	withinBusinessHours,
	statusMustBeBooked,
}

// ValidateReservation menjalankan seluruh aturan pembuatan/pembaruan
// reservasi secara berurutan dan berhenti di pelanggaran pertama.
func ValidateReservation(r *models.Reservation, now time.Time) error {
	for _, rule := range reservationRules {
		if err := rule(r, now); err != nil {
			return err
		}
	}
	return nil
}

func requiredFields(r *models.Reservation, _ time.Time) error {
	required := []struct {
		name  string
		empty bool
	}{
		{"first_name", r.FirstName == ""},
		{"last_name", r.LastName == ""},
		{"mobile_number", r.MobileNumber == ""},
		{"reservation_date", r.ReservationDate == ""},
		{"reservation_time", r.ReservationTime == ""},
		{"people", r.People == 0},
	}
	for _, f := range required {
		if f.empty {
			return utils.Validationf("The %s is missing", f.name)
		}
	}
	return nil
}

func peoplePositive(r *models.Reservation, _ time.Time) error {
	if r.People < 1 {
		return utils.Validationf("people must be a number greater than zero")
	}
	return nil
}

func dateFormat(r *models.Reservation, _ time.Time) error {
	if !dateRe.MatchString(r.ReservationDate) {
		return utils.Validationf("reservation_date is not a date")
	}
	if _, err := time.ParseInLocation("2006-01-02", r.ReservationDate, time.Local); err != nil {
		return utils.Validationf("reservation_date is not a date")
	}
	return nil
}

// notOnTuesday -> restoran tutup tiap Selasa. Weekday dihitung dari
// tanggal kalender lokal, bukan hasil pergeseran UTC.
func notOnTuesday(r *models.Reservation, _ time.Time) error {
	d, err := time.ParseInLocation("2006-01-02", r.ReservationDate, time.Local)
	if err != nil {
		return utils.Validationf("reservation_date is not a date")
	}
	if d.Weekday() == time.Tuesday {
		return utils.Validationf("Reservations cannot be made on a Tuesday, the restaurant is closed")
	}
	return nil
}

func futureDateTime(r *models.Reservation, now time.Time) error {
	at, err := time.ParseInLocation("2006-01-02 15:04", r.ReservationDate+" "+r.ReservationTime, time.Local)
	if err != nil {
		// format jam dicek aturan berikutnya, di sini cukup lolos
		return nil
	}
	if !at.After(now) {
		return utils.Validationf("Reservations must be made for a future date")
	}
	return nil
}

func timeFormat(r *models.Reservation, _ time.Time) error {
	if !timeRe.MatchString(r.ReservationTime) {
		return utils.Validationf("reservation_time is not a time")
	}
	return nil
}

func withinBusinessHours(r *models.Reservation, _ time.Time) error {
	if r.ReservationTime < OpeningTime || r.ReservationTime > LastSeating {
		return utils.Validationf("Reservations cannot be made before 10:30am or after 9:30pm")
	}
	return nil
}

// statusMustBeBooked -> klien tidak boleh membuat reservasi dengan
// status selain booked.
func statusMustBeBooked(r *models.Reservation, _ time.Time) error {
	if r.Status != "" && r.Status != models.StatusBooked {
		return utils.Validationf("'status' field cannot be %s", r.Status)
	}
	return nil
}

// ValidateStatus memeriksa bahwa status baru termasuk enumerasi yang
// dikenal. Aturan terminal (finished) dicek di service karena butuh
// membaca record lama.
func ValidateStatus(status string) error {
	if !models.ValidStatus(status) {
		return utils.Validationf("unknown status: %s", status)
	}
	return nil
}
