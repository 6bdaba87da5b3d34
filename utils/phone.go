package utils

import "strings"

// DigitsOnly membuang semua karakter non-digit dari nomor telepon,
// mis. "(555) 123-4567" -> "5551234567". Dipakai pencarian reservasi
// supaya format penyimpanan nomor tidak mempengaruhi hasil.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
