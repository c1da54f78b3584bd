package services

import (
	"strings"
	"time"

	"github.com/RidhoIT/dropship-next-store/models"
)

// FilterAll adalah nilai facet yang mematikan sebuah filter.
const FilterAll = "all"

// Nilai facet rentang tanggal pesanan.
const (
	DateAll       = "all"
	DateToday     = "today"
	DateYesterday = "yesterday"
	DateWeek      = "week"
	DateMonth     = "month"
	DateCustom    = "custom"
)

// Nilai facet rentang harga katalog.
const (
	PriceLow    = "low"    // di bawah Rp 100.000
	PriceMedium = "medium" // Rp 100.000 - Rp 499.999
	PriceHigh   = "high"   // Rp 500.000 ke atas
)

const (
	priceLowMax  int64 = 100000
	priceHighMin int64 = 500000
)

// OrderFilter menampung kriteria pencarian pesanan. Facet yang kosong atau
// bernilai "all" tidak membatasi hasil; facet aktif digabung dengan AND.
type OrderFilter struct {
	Search    string
	Status    string
	Payment   string
	DateRange string
	// StartDate/EndDate hanya dipakai untuk DateRange "custom";
	// EndDate inklusif sampai akhir hari.
	StartDate time.Time
	EndDate   time.Time
}

// FilterOrders mengembalikan subset pesanan yang memenuhi semua kriteria,
// dengan urutan relatif input dipertahankan. Batas hari untuk facet tanggal
// relatif dihitung dari now.
func FilterOrders(orders []models.Order, f OrderFilter, now time.Time) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if !orderMatchesSearch(order, f.Search) {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && order.Status != f.Status {
			continue
		}
		if f.Payment != "" && f.Payment != FilterAll && order.PaymentMethod != f.Payment {
			continue
		}
		if !orderMatchesDate(order.CreatedAt, f, now) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered
}

// orderMatchesSearch mencocokkan term sebagai substring (tanpa memperhatikan
// kapitalisasi) terhadap id pesanan, nama pelanggan, nomor telepon, serta nama
// dan kategori produk bila data produk tersedia. Cocok bila salah satu field
// mengandung term.
func orderMatchesSearch(order models.Order, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(order.ID), term) ||
		strings.Contains(strings.ToLower(order.CustomerName), term) ||
		strings.Contains(strings.ToLower(order.PhoneNumber), term) {
		return true
	}
	if order.Product != nil {
		if strings.Contains(strings.ToLower(order.Product.Name), term) ||
			strings.Contains(strings.ToLower(order.Product.Category), term) {
			return true
		}
	}
	return false
}

func orderMatchesDate(createdAt time.Time, f OrderFilter, now time.Time) bool {
	today := StartOfDay(now)

	switch f.DateRange {
	case "", DateAll:
		return true
	case DateToday:
		return !createdAt.Before(today)
	case DateYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return !createdAt.Before(yesterday) && createdAt.Before(today)
	case DateWeek:
		return !createdAt.Before(today.AddDate(0, 0, -7))
	case DateMonth:
		return !createdAt.Before(today.AddDate(0, -1, 0))
	case DateCustom:
		// Tanpa batas lengkap, filter meloloskan semuanya.
		if f.StartDate.IsZero() || f.EndDate.IsZero() {
			return true
		}
		start := StartOfDay(f.StartDate)
		end := EndOfDay(f.EndDate)
		return !createdAt.Before(start) && !createdAt.After(end)
	default:
		return true
	}
}

// ProductFilter menampung kriteria katalog publik.
type ProductFilter struct {
	Search   string
	Category string
	Price    string
	InStock  bool
}

// FilterProducts mengembalikan subset produk yang memenuhi semua kriteria,
// dengan urutan relatif input dipertahankan.
func FilterProducts(products []models.Product, f ProductFilter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if !productMatchesSearch(product, f.Search) {
			continue
		}
		if f.Category != "" && f.Category != FilterAll && product.Category != f.Category {
			continue
		}
		if !productMatchesPrice(product.Price, f.Price) {
			continue
		}
		if f.InStock && product.Stock <= 0 {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered
}

func productMatchesSearch(product models.Product, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(product.Name), term) ||
		strings.Contains(strings.ToLower(product.Description), term)
}

func productMatchesPrice(price int64, bracket string) bool {
	switch bracket {
	case PriceLow:
		return price < priceLowMax
	case PriceMedium:
		return price >= priceLowMax && price < priceHighMin
	case PriceHigh:
		return price >= priceHighMin
	default:
		return true
	}
}
