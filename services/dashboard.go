package services

import (
	"time"

	"github.com/RidhoIT/dropship-next-store/models"
)

// Window adalah rentang tanggal inklusif untuk agregasi dashboard.
// End dihitung sampai akhir hari kalendernya.
type Window struct {
	Start time.Time
	End   time.Time
}

// ComputeDashboard menghitung statistik dashboard dari pesanan yang sudah
// terfilter ke dalam window. Omset dan laba hanya dihitung dari pesanan
// berstatus "Selesai"; laba memakai kebijakan biaya tetap per pesanan selesai
// (profitPerOrder). TotalOrders menghitung semua pesanan dalam window apa pun
// statusnya.
func ComputeDashboard(orders []models.Order, productCount, reviewCount int64, w Window, profitPerOrder int64) models.DashboardStats {
	var completed []models.Order
	var totalOmset int64
	for _, order := range orders {
		if order.Status == models.StatusSelesai {
			completed = append(completed, order)
			totalOmset += order.TotalPrice
		}
	}

	stats := models.DashboardStats{
		TotalOmset:    totalOmset,
		TotalProfit:   profitPerOrder * int64(len(completed)),
		TotalProducts: productCount,
		TotalReviews:  reviewCount,
		TotalOrders:   len(orders),
		SalesChart:    salesSeries(completed, w, profitPerOrder),
	}

	counts := make(map[string]int, len(models.OrderStatuses))
	for _, order := range orders {
		counts[order.Status]++
	}
	// Hanya empat status yang dikenal; nilai lain diabaikan tanpa error.
	for _, status := range models.OrderStatuses {
		stats.StatusDistribution = append(stats.StatusDistribution, models.StatusCount{
			Name:  status,
			Value: counts[status],
		})
	}

	return stats
}

// salesSeries membuat satu entri per hari kalender dari awal sampai akhir
// window (inklusif), dengan hari tanpa penjualan diisi nol. Window yang
// berakhir sebelum dimulai menghasilkan seri kosong.
func salesSeries(completed []models.Order, w Window, profitPerOrder int64) []models.DailySales {
	series := []models.DailySales{}

	start := StartOfDay(w.Start)
	end := StartOfDay(w.End)
	if end.Before(start) {
		return series
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		var daySales int64
		dayOrders := 0
		for _, order := range completed {
			if sameDay(order.CreatedAt, day) {
				daySales += order.TotalPrice
				dayOrders++
			}
		}
		series = append(series, models.DailySales{
			Date:   FormatShortDateID(day),
			Sales:  daySales,
			Orders: dayOrders,
			Profit: profitPerOrder * int64(dayOrders),
		})
	}
	return series
}
