package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/rfapbd/jersey-store-backend/internal/admin"
	"github.com/rfapbd/jersey-store-backend/internal/analytics"
	"github.com/rfapbd/jersey-store-backend/internal/config"
	"github.com/rfapbd/jersey-store-backend/internal/imgbb"
	"github.com/rfapbd/jersey-store-backend/internal/order"
	"github.com/rfapbd/jersey-store-backend/internal/product"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	bootstrapSchema(db)

	uploader := imgbb.NewClient(cfg.ImgBB.Endpoint, cfg.ImgBB.APIKey)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService, uploader)

	// first run only: one demo product, guarded by an emptiness check
	if err := productService.SeedDemoData(); err != nil {
		fmt.Printf("warning: demo data seeding failed: %v\n", err)
	}

	orderService := order.NewService(order.NewPostgresRepository(db), productService,
		cfg.SecurityChargePerUnit, cfg.DeliveryCharge)
	orderHandler := order.NewHandler(orderService, uploader)

	adminHandler := admin.NewHandler(cfg.Admin.Username, cfg.Admin.Password, cfg.JWTSecret)
	analyticsHandler := analytics.NewHandler(analytics.NewService(orderService, productService))

	// public storefront surface
	productHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	adminHandler.RegisterPublicRoutes(app)

	// everything registered from here on requires an admin token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	analyticsHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// bootstrapSchema creates the two collections on first run. Records are
// JSON-shaped; list-valued fields live in jsonb columns.
func bootstrapSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
        id TEXT PRIMARY KEY,
        name TEXT NOT NULL,
        category TEXT NOT NULL DEFAULT '',
        description TEXT NOT NULL DEFAULT '',
        price INT NOT NULL DEFAULT 0,
        stock INT NOT NULL DEFAULT 0,
        video TEXT,
        images TEXT[] NOT NULL DEFAULT '{}',
        addons jsonb NOT NULL DEFAULT '[]',
        "extraFields" jsonb NOT NULL DEFAULT '{}'
    )`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
        id TEXT PRIMARY KEY,
        "productId" TEXT NOT NULL,
        "customerName" TEXT NOT NULL,
        phone TEXT NOT NULL,
        address TEXT NOT NULL,
        "senderNumber" TEXT,
        quantity INT NOT NULL DEFAULT 1,
        "extraFields" jsonb,
        addons jsonb NOT NULL DEFAULT '[]',
        "totalPrice" INT NOT NULL DEFAULT 0,
        "securityCharge" INT NOT NULL DEFAULT 0,
        "paymentScreenshot" TEXT,
        status TEXT NOT NULL DEFAULT 'pending',
        "trackingSteps" jsonb NOT NULL DEFAULT '[]',
        "createdAt" TEXT NOT NULL
    )`); err != nil {
		panic(err)
	}
}
