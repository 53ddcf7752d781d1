package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/lgpharma/herbal-shop-backend/internal/assistant"
	"github.com/lgpharma/herbal-shop-backend/internal/cart"
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
	"github.com/lgpharma/herbal-shop-backend/internal/checkout"
	"github.com/lgpharma/herbal-shop-backend/internal/config"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
	"github.com/lgpharma/herbal-shop-backend/internal/storage"
	"github.com/lgpharma/herbal-shop-backend/internal/tracking"
	"github.com/lgpharma/herbal-shop-backend/internal/wishlist"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(logger.New())

	store := openStore(cfg)

	catalogService := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	cartService := cart.NewService(catalogService)
	orderService := order.NewService(order.NewStoreRepository(store))
	wishlistService := wishlist.NewService(wishlist.NewStoreRepository(store), catalogService)
	checkoutService := checkout.NewService(cartService, orderService, checkout.DefaultEnv(), checkout.Config{
		CardDelay:      cfg.CardDelay,
		CODDelay:       cfg.CODDelay,
		AutoCloseDelay: cfg.AutoCloseDelay,
	})

	catalog.NewHandler(catalogService).RegisterRoutes(app)
	cart.NewHandler(cartService).RegisterRoutes(app)
	wishlist.NewHandler(wishlistService).RegisterRoutes(app)
	checkout.NewHandler(checkoutService).RegisterRoutes(app)
	order.NewHandler(orderService).RegisterRoutes(app)
	tracking.NewHandler(orderService).RegisterRoutes(app)
	assistant.NewHandler(assistant.NewService(catalogService, orderService)).RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// openStore prefers Postgres when DATABASE_URL is set and falls back
// to the JSON file store under the data directory.
func openStore(cfg config.Config) storage.RecordStore {
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("ping database: %v", err)
		}
		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		log.Printf("using postgres record store")
		return store
	}

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open file store: %v", err)
	}
	log.Printf("using file record store at %s", cfg.DataDir)
	return store
}
