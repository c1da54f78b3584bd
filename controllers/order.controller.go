// File: controllers/order.controller.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RidhoIT/dropship-next-store/models"
	"github.com/RidhoIT/dropship-next-store/services"
)

// CreateOrder menangani pembuatan pesanan baru dari form publik. Validasi
// kuantitas dilakukan sebelum ada tulisan apa pun ke database; total harga
// adalah snapshot harga produk saat ini.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jumlah minimal 1"})
		return
	}
	if input.PaymentMethod != "" &&
		input.PaymentMethod != models.PaymentCOD && input.PaymentMethod != models.PaymentTransfer {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Metode pembayaran tidak dikenal"})
		return
	}

	var product models.Product
	products := ctrl.DB.Collection("products")
	err := products.FindOne(ctx, bson.M{"_id": input.ProductID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if input.Quantity > product.Stock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Jumlah melebihi stok yang tersedia"})
		return
	}

	order := models.Order{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		CustomerName:  input.CustomerName,
		Address:       input.Address,
		PhoneNumber:   input.PhoneNumber,
		Quantity:      input.Quantity,
		TotalPrice:    product.Price * int64(input.Quantity),
		PaymentMethod: input.PaymentMethod,
		Status:        models.StatusBaru,
		CreatedAt:     time.Now(),
	}

	orders := ctrl.DB.Collection("orders")
	if _, err := orders.InsertOne(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Kurangi stok setelah pesanan tersimpan. Tanpa penguncian: dua
	// pesanan bersamaan bisa saling menimpa (last write wins).
	_, err = products.UpdateOne(ctx, bson.M{"_id": product.ID},
		bson.M{"$inc": bson.M{"stock": -input.Quantity}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetOrders menangani pengambilan daftar pesanan untuk admin, terurut dari
// yang terbaru, dengan data produk tergabung dan filter dari query string:
// q, status, payment, date (all|today|yesterday|week|month|custom),
// start_date, end_date.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("orders")
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
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

	if err := ctrl.attachProducts(ctx, orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filter := services.OrderFilter{
		Search:    c.Query("q"),
		Status:    c.Query("status"),
		Payment:   c.Query("payment"),
		DateRange: c.Query("date"),
	}
	if start, err := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.Local); err == nil {
		filter.StartDate = start
	}
	if end, err := time.ParseInLocation("2006-01-02", c.Query("end_date"), time.Local); err == nil {
		filter.EndDate = end
	}

	filtered := services.FilterOrders(orderList, filter, time.Now())
	c.JSON(http.StatusOK, gin.H{"orders": filtered, "total": len(orderList)})
}

// GetOrder menangani pengambilan satu pesanan berdasarkan ID, dipakai halaman
// sukses setelah pemesanan.
func (ctrl *Controller) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	collection := ctrl.DB.Collection("orders")
	err := collection.FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	orders := []models.Order{order}
	if err := ctrl.attachProducts(ctx, orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": orders[0]})
}

// UpdateOrderStatus menangani perubahan status pesanan oleh admin.
func (ctrl *Controller) UpdateOrderStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.OrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := false
	for _, status := range models.OrderStatuses {
		if input.Status == status {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status tidak dikenal"})
		return
	}

	collection := ctrl.DB.Collection("orders")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": c.Param("id")},
		bson.M{"$set": bson.M{"status": input.Status}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

// DeleteOrder menangani penghapusan pesanan secara permanen.
func (ctrl *Controller) DeleteOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("orders")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": c.Param("id")})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}

// GetOrderInvoice menghasilkan dokumen invoice PDF untuk satu pesanan dan
// mengirimkannya sebagai unduhan dengan nama file deterministik.
func (ctrl *Controller) GetOrderInvoice(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	err := ctrl.DB.Collection("orders").FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	err = ctrl.DB.Collection("products").FindOne(ctx, bson.M{"_id": order.ProductID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invoice := services.BuildInvoice(order, product, time.Now())

	// Varian teks polos sebagai fallback.
	if c.Query("format") == "text" {
		fileName := strings.TrimSuffix(invoice.FileName, ".pdf") + ".txt"
		c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(services.RenderText(invoice)))
		return
	}

	pdfBytes, err := services.RenderPDF(invoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice: " + err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+invoice.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// attachProducts menggabungkan data produk ke tiap pesanan lewat satu query
// tambahan. Produk yang sudah terhapus dibiarkan nil; konsumen menampilkan
// placeholder, bukan error.
func (ctrl *Controller) attachProducts(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ProductID)
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
	for i := range orders {
		orders[i].Product = byID[orders[i].ProductID]
	}
	return nil
}
