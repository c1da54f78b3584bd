package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"golang.org/x/crypto/bcrypt"

	"github.com/RidhoIT/dropship-next-store/models"
)

const tokenFooter = "next-store-admin"

// Login menangani proses login admin. Kredensial dicocokkan terhadap satu
// pasangan admin dari konfigurasi; tidak ada tabel pengguna.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != ctrl.AdminUsername ||
		bcrypt.CompareHashAndPassword(ctrl.AdminPasswordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	now := time.Now()
	exp := now.Add(24 * time.Hour)
	jsonToken := paseto.JSONToken{
		Subject:    ctrl.AdminUsername,
		IssuedAt:   now,
		Expiration: exp,
	}
	token, err := paseto.NewV2().Encrypt(ctrl.PasetoSecretKey, jsonToken, tokenFooter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token, "expires_at": exp})
}

// RequireAdmin memeriksa token paseto pada header Authorization dan menolak
// permintaan tanpa token yang sah. Logout cukup dengan membuang token di sisi
// klien; tidak ada state sesi di server.
func (ctrl *Controller) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			return
		}

		var jsonToken paseto.JSONToken
		var footer string
		err := paseto.NewV2().Decrypt(strings.TrimPrefix(header, "Bearer "), ctrl.PasetoSecretKey, &jsonToken, &footer)
		if err != nil || footer != tokenFooter {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if time.Now().After(jsonToken.Expiration) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			return
		}

		c.Next()
	}
}
