// File: controllers/controller.go
package controllers

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/RidhoIT/dropship-next-store/config"
)

// Controller menampung dependensi yang akan digunakan oleh semua handler.
// Pastikan field diawali huruf besar agar bisa diakses dari package lain.
type Controller struct {
	DB                *mongo.Database
	Cld               *cloudinary.Cloudinary
	PasetoSecretKey   []byte
	AdminUsername     string
	AdminPasswordHash []byte
	ProfitPerOrder    int64
}

// New membangun Controller dari konfigurasi aplikasi. Password admin
// di-hash sekali di awal agar pengecekan login selalu lewat bcrypt.
func New(cfg *config.AppConfig, db *mongo.Database, cld *cloudinary.Cloudinary) *Controller {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	return &Controller{
		DB:                db,
		Cld:               cld,
		PasetoSecretKey:   cfg.PasetoSecretKey,
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: hash,
		ProfitPerOrder:    cfg.ProfitPerOrder,
	}
}
