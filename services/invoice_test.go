package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RidhoIT/dropship-next-store/models"
)

func TestBuildInvoiceNumber(t *testing.T) {
	order := models.Order{
		ID:         "abc12345-xxxx",
		Quantity:   1,
		TotalPrice: 100000,
		CreatedAt:  time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	product := models.Product{Name: "Sepatu", Category: "Olahraga", Price: 100000}

	inv := BuildInvoice(order, product, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, "ABC12345", inv.Number)
	assert.Equal(t, "INVOICE-ABC12345-2025-03-15.pdf", inv.FileName)
}

func TestBuildInvoiceShortID(t *testing.T) {
	order := models.Order{ID: "ab12", Quantity: 1}
	inv := BuildInvoice(order, models.Product{}, time.Now())
	assert.Equal(t, "AB12", inv.Number)
}

func TestBuildInvoiceSubtotalDivergence(t *testing.T) {
	order := models.Order{
		ID:         "abc12345-xxxx",
		Quantity:   3,
		TotalPrice: 300000,
		CreatedAt:  time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	// Harga produk masih sama dengan saat pesanan dibuat.
	inv := BuildInvoice(order, models.Product{Price: 100000}, time.Now())
	assert.Equal(t, int64(300000), inv.Subtotal)
	assert.Equal(t, int64(300000), inv.Total)

	// Harga produk naik setelah pesanan dibuat: subtotal dihitung ulang,
	// total tetap memakai snapshot total_price.
	inv = BuildInvoice(order, models.Product{Price: 150000}, time.Now())
	assert.Equal(t, int64(450000), inv.Subtotal)
	assert.Equal(t, int64(300000), inv.Total)
}

func TestBuildInvoiceProductName(t *testing.T) {
	long := strings.Repeat("Sepatu Lari Premium ", 4) // 80 karakter
	inv := BuildInvoice(models.Order{ID: "x", Quantity: 1}, models.Product{Name: long, Category: "olahraga"}, time.Now())

	assert.Equal(t, long[:45]+"...", inv.ProductName)
	assert.Equal(t, "OLAHRAGA", inv.Category)

	inv = BuildInvoice(models.Order{ID: "x", Quantity: 1}, models.Product{Name: "Pendek"}, time.Now())
	assert.Equal(t, "Pendek", inv.ProductName)
}

func TestBuildInvoiceOrderDate(t *testing.T) {
	order := models.Order{
		ID:        "abc12345",
		Quantity:  1,
		CreatedAt: time.Date(2025, 1, 2, 14, 5, 0, 0, time.UTC),
	}
	inv := BuildInvoice(order, models.Product{}, time.Now())
	assert.Equal(t, "2 Januari 2025 14:05", inv.OrderDate)
}

func TestRenderPDF(t *testing.T) {
	order := models.Order{
		ID:            "abc12345-0000-0000-0000-000000000001",
		CustomerName:  "Budi Santoso",
		Address:       "Jl. Merdeka No. 17, RT 03/RW 05, Kelurahan Sukamaju, Bandung, Jawa Barat 40123",
		PhoneNumber:   "081234567890",
		Quantity:      2,
		TotalPrice:    500000,
		PaymentMethod: models.PaymentCOD,
		Status:        models.StatusSelesai,
		CreatedAt:     time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	product := models.Product{Name: "Sepatu Lari", Category: "Olahraga", Price: 250000}

	inv := BuildInvoice(order, product, time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC))
	pdfBytes, err := RenderPDF(inv)

	require.NoError(t, err)
	require.True(t, len(pdfBytes) > 0)
	assert.True(t, strings.HasPrefix(string(pdfBytes[:5]), "%PDF-"))
}

func TestRenderText(t *testing.T) {
	order := models.Order{
		ID:           "abc12345-xxxx",
		CustomerName: "Siti Aminah",
		Address:      "Jl. Kenanga 5",
		PhoneNumber:  "0898765",
		Quantity:     3,
		TotalPrice:   300000,
		CreatedAt:    time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
	}
	product := models.Product{Name: "Tas Ransel", Category: "Fashion", Price: 100000}

	out := RenderText(BuildInvoice(order, product, time.Now()))

	assert.Contains(t, out, "INVOICE #ABC12345")
	assert.Contains(t, out, "Siti Aminah")
	assert.Contains(t, out, "TOTAL BAYAR: Rp 300.000")
	assert.Contains(t, out, "Tas Ransel")
}
