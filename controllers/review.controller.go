// File: controllers/review.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RidhoIT/dropship-next-store/models"
)

// GetReviews menangani pengambilan semua ulasan untuk admin, terurut dari
// yang terbaru, dengan data produk tergabung.
func (ctrl *Controller) GetReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("reviews")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var reviewList []models.Review
	if err = cursor.All(ctx, &reviewList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.attachReviewProducts(ctx, reviewList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviewList})
}

// GetProductReviews menangani pengambilan ulasan publik sebuah produk.
// Hanya ulasan yang sudah disetujui yang dikembalikan.
func (ctrl *Controller) GetProductReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("reviews")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{
		"product_id":  c.Param("id"),
		"is_approved": true,
	}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var reviewList []models.Review
	if err = cursor.All(ctx, &reviewList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviewList})
}

// CreateReview menangani pembuatan ulasan baru oleh admin.
func (ctrl *Controller) CreateReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating harus antara 1 dan 5"})
		return
	}

	review := models.Review{
		ID:           uuid.NewString(),
		ProductID:    input.ProductID,
		ReviewerName: input.ReviewerName,
		TextContent:  input.TextContent,
		Rating:       input.Rating,
		Images:       input.Images,
		IsApproved:   input.IsApproved,
		CreatedAt:    time.Now(),
	}
	if review.Images == nil {
		review.Images = []string{}
	}

	collection := ctrl.DB.Collection("reviews")
	if _, err := collection.InsertOne(ctx, review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

// UpdateReview menangani pembaruan ulasan oleh admin.
func (ctrl *Controller) UpdateReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating harus antara 1 dan 5"})
		return
	}

	update := bson.M{"$set": bson.M{
		"product_id":    input.ProductID,
		"reviewer_name": input.ReviewerName,
		"text_content":  input.TextContent,
		"rating":        input.Rating,
		"images":        input.Images,
		"is_approved":   input.IsApproved,
	}}

	collection := ctrl.DB.Collection("reviews")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": c.Param("id")}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

// ToggleReviewApproval membalik flag persetujuan sebuah ulasan.
func (ctrl *Controller) ToggleReviewApproval(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("reviews")

	var review models.Review
	err := collection.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	_, err = collection.UpdateOne(ctx, bson.M{"_id": review.ID},
		bson.M{"$set": bson.M{"is_approved": !review.IsApproved}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_approved": !review.IsApproved})
}

// DeleteReview menangani penghapusan ulasan secara permanen.
func (ctrl *Controller) DeleteReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("reviews")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": c.Param("id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// attachReviewProducts menggabungkan data produk ke tiap ulasan. Produk yang
// sudah terhapus dibiarkan nil.
func (ctrl *Controller) attachReviewProducts(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	ids := make([]string, 0, len(reviews))
	for _, review := range reviews {
		ids = append(ids, review.ProductID)
	}

	cursor, err := ctrl.DB.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		return err
	}

	byID := make(map[string]*models.Product, len(productList))
	for i := range productList {
		byID[productList[i].ID] = &productList[i]
	}
	for i := range reviews {
		reviews[i].Product = byID[reviews[i].ProductID]
	}
	return nil
}
