package models

import "time"

// Review mendefinisikan struktur untuk ulasan produk.
// Hanya ulasan dengan IsApproved = true yang tampil di halaman publik.
type Review struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID    string    `json:"product_id" bson:"product_id"`
	ReviewerName string    `json:"reviewer_name" bson:"reviewer_name"`
	TextContent  string    `json:"text_content" bson:"text_content"`
	Rating       *int      `json:"rating" bson:"rating,omitempty"`
	Images       []string  `json:"images" bson:"images"`
	IsApproved   bool      `json:"is_approved" bson:"is_approved"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`

	Product *Product `json:"product,omitempty" bson:"-"`
}

// ReviewInput mendefinisikan payload untuk membuat/mengubah ulasan.
type ReviewInput struct {
	ProductID    string   `json:"product_id" binding:"required"`
	ReviewerName string   `json:"reviewer_name" binding:"required"`
	TextContent  string   `json:"text_content" binding:"required"`
	Rating       *int     `json:"rating"`
	Images       []string `json:"images"`
	IsApproved   bool     `json:"is_approved"`
}
