package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"

	"github.com/RidhoIT/dropship-next-store/config"
	"github.com/RidhoIT/dropship-next-store/controllers"
	"github.com/RidhoIT/dropship-next-store/routes"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	db := client.Database("nextstore")

	// Cloudinary opsional: tanpa CLOUDINARY_URL endpoint upload menolak
	// dengan pesan yang jelas, fitur lain tetap berjalan.
	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Failed to initialize Cloudinary:", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image upload disabled")
	}

	ctrl := controllers.New(cfg, db, cld)
	r := routes.Setup(ctrl, cfg.Env)

	fmt.Println("🚀 Go Backend Starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
