// File: controllers/stats.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RidhoIT/dropship-next-store/models"
	"github.com/RidhoIT/dropship-next-store/services"
)

// HealthCheck memeriksa status koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats menghitung statistik dashboard untuk rentang tanggal pada query
// start_date/end_date (format 2006-01-02). Tanpa query, rentang default
// adalah 30 hari terakhir sampai hari ini. Rentang tanggal juga diberlakukan
// ke jumlah ulasan.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	end := services.StartOfDay(time.Now())
	start := end.AddDate(0, 0, -30)
	if parsed, err := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.Local); err == nil {
		start = parsed
	}
	if parsed, err := time.ParseInLocation("2006-01-02", c.Query("end_date"), time.Local); err == nil {
		end = parsed
	}

	windowFilter := bson.M{"created_at": bson.M{
		"$gte": services.StartOfDay(start),
		"$lte": services.EndOfDay(end),
	}}

	ordersCollection := ctrl.DB.Collection("orders")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ordersCollection.Find(ctx, windowFilter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var orderList []models.Order
	if err = cursor.All(ctx, &orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalProducts, err := ctrl.DB.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totalReviews, err := ctrl.DB.Collection("reviews").CountDocuments(ctx, windowFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats := services.ComputeDashboard(orderList, totalProducts, totalReviews,
		services.Window{Start: start, End: end}, ctrl.ProfitPerOrder)

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
