package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/RidhoIT/dropship-next-store/controllers"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)

		// Rute otentikasi
		api.POST("/login", ctrl.Login)

		// Rute publik: katalog, pemesanan, ulasan yang disetujui
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:id", ctrl.GetProduct)
		api.GET("/products/:id/reviews", ctrl.GetProductReviews)
		api.POST("/orders", ctrl.CreateOrder)
		api.GET("/orders/:id", ctrl.GetOrder)

		// Rute admin, dilindungi token
		admin := api.Group("", ctrl.RequireAdmin())
		{
			admin.POST("/products", ctrl.CreateProduct)
			admin.PUT("/products/:id", ctrl.UpdateProduct)
			admin.DELETE("/products/:id", ctrl.DeleteProduct)

			admin.GET("/orders", ctrl.GetOrders)
			admin.PUT("/orders/:id/status", ctrl.UpdateOrderStatus)
			admin.DELETE("/orders/:id", ctrl.DeleteOrder)
			admin.GET("/orders/:id/invoice", ctrl.GetOrderInvoice)

			admin.GET("/reviews", ctrl.GetReviews)
			admin.POST("/reviews", ctrl.CreateReview)
			admin.PUT("/reviews/:id", ctrl.UpdateReview)
			admin.PATCH("/reviews/:id/approve", ctrl.ToggleReviewApproval)
			admin.DELETE("/reviews/:id", ctrl.DeleteReview)

			admin.POST("/upload", ctrl.UploadImages)
			admin.GET("/stats", ctrl.GetStats)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
