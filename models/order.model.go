package models

import "time"

// Status pesanan yang dikenal aplikasi.
const (
	StatusBaru     = "Baru"
	StatusDiproses = "Diproses"
	StatusSelesai  = "Selesai"
	StatusBatal    = "Batal"
)

// Metode pembayaran yang dikenal aplikasi.
const (
	PaymentCOD      = "COD"
	PaymentTransfer = "Transfer"
)

// OrderStatuses berisi semua status pesanan dalam urutan tampil.
var OrderStatuses = []string{StatusBaru, StatusDiproses, StatusSelesai, StatusBatal}

// Order mendefinisikan struktur untuk pesanan.
// TotalPrice adalah snapshot harga saat pesanan dibuat dan tidak pernah
// dihitung ulang walaupun harga produk berubah.
type Order struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID     string    `json:"product_id" bson:"product_id"`
	CustomerName  string    `json:"customer_name" bson:"customer_name"`
	Address       string    `json:"address" bson:"address"`
	PhoneNumber   string    `json:"phone_number" bson:"phone_number"`
	Quantity      int       `json:"quantity" bson:"quantity"`
	TotalPrice    int64     `json:"total_price" bson:"total_price"`
	PaymentMethod string    `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`

	// Product diisi dari koleksi products saat pengambilan data, tidak disimpan.
	Product *Product `json:"product,omitempty" bson:"-"`
}

// OrderInput mendefinisikan payload untuk membuat pesanan baru.
type OrderInput struct {
	ProductID     string `json:"product_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

// OrderStatusInput mendefinisikan payload untuk mengubah status pesanan.
type OrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}
