package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RidhoIT/dropship-next-store/models"
)

const testProfitPerOrder int64 = 50000

func TestComputeDashboardScenario(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 14, 30, 0, 0, time.UTC)

	orders := []models.Order{
		{Status: models.StatusBaru, TotalPrice: 50000, CreatedAt: day1},
		{Status: models.StatusSelesai, TotalPrice: 100000, CreatedAt: day1},
		{Status: models.StatusSelesai, TotalPrice: 200000, CreatedAt: day2},
	}

	stats := ComputeDashboard(orders, 7, 3, Window{Start: day1, End: day2}, testProfitPerOrder)

	assert.Equal(t, int64(300000), stats.TotalOmset)
	assert.Equal(t, 2*testProfitPerOrder, stats.TotalProfit)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, int64(7), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.TotalReviews)

	require.Len(t, stats.SalesChart, 2)
	assert.Equal(t, int64(100000), stats.SalesChart[0].Sales)
	assert.Equal(t, int64(200000), stats.SalesChart[1].Sales)
	assert.Equal(t, 1, stats.SalesChart[0].Orders)
	assert.Equal(t, testProfitPerOrder, stats.SalesChart[0].Profit)
	assert.Equal(t, "10 Mar", stats.SalesChart[0].Date)
	assert.Equal(t, "11 Mar", stats.SalesChart[1].Date)
}

func TestComputeDashboardSeriesLengthAndZeroFill(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{Status: models.StatusSelesai, TotalPrice: 75000, CreatedAt: start.Add(10 * time.Hour)},
	}

	stats := ComputeDashboard(orders, 0, 0, Window{Start: start, End: end}, testProfitPerOrder)

	// Satu entri per hari kalender, inklusif kedua ujung.
	require.Len(t, stats.SalesChart, 8)
	assert.Equal(t, int64(75000), stats.SalesChart[0].Sales)
	for _, day := range stats.SalesChart[1:] {
		assert.Zero(t, day.Sales)
		assert.Zero(t, day.Orders)
		assert.Zero(t, day.Profit)
	}
}

func TestComputeDashboardRevenueMatchesSeries(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{Status: models.StatusSelesai, TotalPrice: 120000, CreatedAt: start.AddDate(0, 0, 1)},
		{Status: models.StatusSelesai, TotalPrice: 80000, CreatedAt: start.AddDate(0, 0, 1)},
		{Status: models.StatusSelesai, TotalPrice: 300000, CreatedAt: start.AddDate(0, 0, 6)},
		{Status: models.StatusBatal, TotalPrice: 999999, CreatedAt: start.AddDate(0, 0, 2)},
	}

	stats := ComputeDashboard(orders, 0, 0, Window{Start: start, End: end}, testProfitPerOrder)

	var seriesTotal int64
	for _, day := range stats.SalesChart {
		seriesTotal += day.Sales
	}
	assert.Equal(t, stats.TotalOmset, seriesTotal)
	assert.Equal(t, int64(500000), stats.TotalOmset)
}

func TestComputeDashboardInvertedWindow(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	stats := ComputeDashboard(nil, 0, 0, Window{Start: start, End: end}, testProfitPerOrder)

	assert.Empty(t, stats.SalesChart)
	assert.Zero(t, stats.TotalOmset)
	assert.Zero(t, stats.TotalOrders)
}

func TestComputeDashboardStatusDistribution(t *testing.T) {
	at := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

	orders := []models.Order{
		{Status: models.StatusBaru, CreatedAt: at},
		{Status: models.StatusBaru, CreatedAt: at},
		{Status: models.StatusDiproses, CreatedAt: at},
		{Status: models.StatusSelesai, CreatedAt: at},
		{Status: "Dikirim", CreatedAt: at}, // status tak dikenal, diabaikan
	}

	stats := ComputeDashboard(orders, 0, 0, Window{Start: at, End: at}, testProfitPerOrder)

	require.Len(t, stats.StatusDistribution, 4)
	byName := map[string]int{}
	for _, sc := range stats.StatusDistribution {
		byName[sc.Name] = sc.Value
	}
	assert.Equal(t, 2, byName[models.StatusBaru])
	assert.Equal(t, 1, byName[models.StatusDiproses])
	assert.Equal(t, 1, byName[models.StatusSelesai])
	assert.Equal(t, 0, byName[models.StatusBatal])

	// Pesanan berstatus tak dikenal tetap terhitung di TotalOrders.
	assert.Equal(t, 5, stats.TotalOrders)
}
