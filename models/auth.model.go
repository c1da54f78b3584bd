package models

// LoginRequest mendefinisikan struktur untuk permintaan login admin.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
