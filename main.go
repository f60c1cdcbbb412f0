package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/malikdesigner/mobile-sale-store/auth"
	"github.com/malikdesigner/mobile-sale-store/cart"
	"github.com/malikdesigner/mobile-sale-store/catalog"
	"github.com/malikdesigner/mobile-sale-store/middleware"
	"github.com/malikdesigner/mobile-sale-store/models"
	"github.com/malikdesigner/mobile-sale-store/routes"
	"github.com/malikdesigner/mobile-sale-store/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Product{},
		&models.Order{},
		&store.KVEntry{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Firebase for Google sign-in token verification
	auth.InitFirebase(context.Background())

	// Product feed + in-memory catalog engine. The store publishes a
	// fresh snapshot on every write; the engine and the live websocket
	// consume it.
	feed := store.NewProductFeed()
	products := store.NewProductStore(db, feed)

	engine := catalog.NewEngine()
	engine.Bind(feed)
	if snapshot, err := products.All(context.Background()); err != nil {
		log.Printf("❌ Initial catalog load failed: %v", err)
	} else {
		engine.SetSnapshot(snapshot)
		log.Printf("✅ Catalog loaded: %d products", len(snapshot))
	}

	// Expired guest carts are lazily dropped on read; the cron job
	// sweeps abandoned entries out of the cache table.
	kv := store.NewKV(db)
	c := cron.New()
	if err := c.AddFunc("@hourly", func() {
		purged, err := kv.PurgeExpired(context.Background(), cart.GuestCartTTL)
		if err != nil {
			log.Printf("❌ Guest cart purge failed: %v", err)
			return
		}
		if purged > 0 {
			log.Printf("🗑️ Purged %d expired guest cart entries", purged)
		}
	}); err != nil {
		log.Fatalf("❌ Failed to schedule guest cart purge: %v", err)
	}
	c.Start()

	// Gin setup
	r := gin.Default()

	// Allow large spreadsheet uploads (32 MB)
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request metrics
	r.Use(middleware.Metrics)
	r.GET("/metrics", middleware.MetricsHandler())

	// Setup routes
	routes.SetupRoutes(r, db, engine, products, feed)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
