package models

// DailySales adalah satu titik pada grafik penjualan harian.
type DailySales struct {
	Date   string `json:"date"`
	Sales  int64  `json:"sales"`
	Orders int    `json:"orders"`
	Profit int64  `json:"profit"`
}

// StatusCount adalah jumlah pesanan untuk satu status.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardStats mendefinisikan struktur untuk statistik dashboard admin.
// Nilai-nilai ini diturunkan dari data pesanan, tidak pernah disimpan.
type DashboardStats struct {
	TotalOmset         int64         `json:"total_omset"`
	TotalProfit        int64         `json:"total_profit"`
	TotalProducts      int64         `json:"total_products"`
	TotalReviews       int64         `json:"total_reviews"`
	TotalOrders        int           `json:"total_orders"`
	SalesChart         []DailySales  `json:"sales_chart"`
	StatusDistribution []StatusCount `json:"status_distribution"`
}
