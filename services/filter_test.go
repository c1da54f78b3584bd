package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RidhoIT/dropship-next-store/models"
)

func testOrders(now time.Time) []models.Order {
	sepatu := &models.Product{Name: "Sepatu Lari", Category: "Olahraga", Price: 250000}
	tas := &models.Product{Name: "Tas Ransel", Category: "Fashion", Price: 150000}

	return []models.Order{
		{
			ID:            "aaa11111-0000-0000-0000-000000000001",
			CustomerName:  "Budi Santoso",
			PhoneNumber:   "081234567890",
			Status:        models.StatusSelesai,
			PaymentMethod: models.PaymentCOD,
			CreatedAt:     now.Add(-1 * time.Hour),
			Product:       sepatu,
		},
		{
			ID:            "bbb22222-0000-0000-0000-000000000002",
			CustomerName:  "Siti Aminah",
			PhoneNumber:   "089876543210",
			Status:        models.StatusBaru,
			PaymentMethod: models.PaymentTransfer,
			CreatedAt:     now.AddDate(0, 0, -1),
			Product:       tas,
		},
		{
			ID:            "ccc33333-0000-0000-0000-000000000003",
			CustomerName:  "Agus Wijaya",
			PhoneNumber:   "085500001111",
			Status:        models.StatusSelesai,
			PaymentMethod: models.PaymentCOD,
			CreatedAt:     now.AddDate(0, 0, -10),
			Product:       nil,
		},
	}
}

func TestFilterOrdersPassThrough(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := testOrders(now)

	got := FilterOrders(orders, OrderFilter{
		Status:    FilterAll,
		Payment:   FilterAll,
		DateRange: DateAll,
	}, now)

	assert.Equal(t, orders, got)
}

func TestFilterOrdersIntersection(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := testOrders(now)

	got := FilterOrders(orders, OrderFilter{
		Status:  models.StatusSelesai,
		Payment: models.PaymentCOD,
	}, now)

	assert.Len(t, got, 2)
	for _, order := range got {
		assert.Equal(t, models.StatusSelesai, order.Status)
		assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	}
}

func TestFilterOrdersSearchFields(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := testOrders(now)

	tests := []struct {
		name   string
		search string
		wantID string
	}{
		{"order id", "aaa11111", "aaa11111-0000-0000-0000-000000000001"},
		{"customer name", "siti", "bbb22222-0000-0000-0000-000000000002"},
		{"phone number", "085500", "ccc33333-0000-0000-0000-000000000003"},
		{"product name", "sepatu", "aaa11111-0000-0000-0000-000000000001"},
		{"product category only", "olahraga", "aaa11111-0000-0000-0000-000000000001"},
		{"case insensitive", "BUDI", "aaa11111-0000-0000-0000-000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOrders(orders, OrderFilter{Search: tt.search}, now)
			assert.Len(t, got, 1)
			assert.Equal(t, tt.wantID, got[0].ID)
		})
	}
}

func TestFilterOrdersSearchNilProduct(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := testOrders(now)

	// Produk pesanan ketiga nil; pencarian nama produk tidak boleh panik
	// dan tidak boleh mencocokkan pesanan itu.
	got := FilterOrders(orders, OrderFilter{Search: "tas"}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "bbb22222-0000-0000-0000-000000000002", got[0].ID)
}

func TestFilterOrdersDateBuckets(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := testOrders(now)

	tests := []struct {
		bucket string
		want   int
	}{
		{DateToday, 1},
		{DateYesterday, 1},
		{DateWeek, 2},
		{DateMonth, 3},
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			got := FilterOrders(orders, OrderFilter{DateRange: tt.bucket}, now)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFilterOrdersCustomRange(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	orders := testOrders(now)

	got := FilterOrders(orders, OrderFilter{
		DateRange: DateCustom,
		StartDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "bbb22222-0000-0000-0000-000000000002", got[0].ID)

	// Batas yang tidak lengkap meloloskan semuanya (fail-open).
	got = FilterOrders(orders, OrderFilter{DateRange: DateCustom}, now)
	assert.Len(t, got, len(orders))

	got = FilterOrders(orders, OrderFilter{
		DateRange: DateCustom,
		StartDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}, now)
	assert.Len(t, got, len(orders))
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Sepatu Lari", Description: "Ringan untuk jogging", Category: "Olahraga", Price: 250000, Stock: 5},
		{ID: "p2", Name: "Tas Ransel", Description: "Muat laptop 15 inci", Category: "Fashion", Price: 99999, Stock: 0},
		{ID: "p3", Name: "Jam Tangan", Description: "Tahan air", Category: "Fashion", Price: 500000, Stock: 2},
	}

	got := FilterProducts(products, ProductFilter{})
	assert.Equal(t, products, got)

	got = FilterProducts(products, ProductFilter{Search: "laptop"})
	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	got = FilterProducts(products, ProductFilter{Category: "Fashion"})
	assert.Len(t, got, 2)

	got = FilterProducts(products, ProductFilter{Price: PriceLow})
	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	got = FilterProducts(products, ProductFilter{Price: PriceMedium})
	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	got = FilterProducts(products, ProductFilter{Price: PriceHigh})
	assert.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)

	got = FilterProducts(products, ProductFilter{Category: "Fashion", InStock: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}
