package services

import (
	"fmt"
	"strconv"
	"time"
)

var monthsShortID = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

var monthsLongID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatRupiah memformat nominal Rupiah dengan pemisah ribuan titik,
// contoh: 1234567 -> "Rp 1.234.567".
func FormatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := false
	if digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return "Rp -" + string(grouped)
	}
	return "Rp " + string(grouped)
}

// FormatShortDateID memformat tanggal gaya id-ID singkat, contoh: "2 Jan".
func FormatShortDateID(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthsShortID[t.Month()-1])
}

// FormatLongDateID memformat tanggal+jam gaya id-ID panjang,
// contoh: "2 Januari 2025 14:05".
func FormatLongDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d %02d:%02d",
		t.Day(), monthsLongID[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// StartOfDay mengembalikan awal hari kalender dari t (00:00:00.000).
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay mengembalikan akhir hari kalender dari t (23:59:59.999).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
