package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{50000, "Rp 50.000"},
		{300000, "Rp 300.000"},
		{1234567, "Rp 1.234.567"},
		{1000000000, "Rp 1.000.000.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRupiah(tt.amount))
	}
}

func TestFormatDatesID(t *testing.T) {
	at := time.Date(2025, 8, 9, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "9 Agu", FormatShortDateID(at))
	assert.Equal(t, "9 Agustus 2025 07:05", FormatLongDateID(at))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 3, 15, 13, 45, 30, 0, time.UTC)

	start := StartOfDay(at)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)

	end := EndOfDay(at)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC), end)
}
