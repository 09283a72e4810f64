package main

import (
	"log"
	"os"

	"jalwa-site-server/config"
	"jalwa-site-server/routes"
	"jalwa-site-server/storage"
	"jalwa-site-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	cfg := config.Load()
	store := buildStore(cfg)

	app := newApp(cfg, store)

	log.Println("Server running on port " + cfg.Port)
	app.Listen("0.0.0.0:" + cfg.Port)
}

func buildStore(cfg *config.Config) storage.Store {
	switch cfg.StorageBackend {
	case "postgres":
		db := storage.InitializeDB(cfg.DatabaseURL)

		var cache *storage.GiftCodeCache
		if cfg.RedisURL != "" {
			cache = storage.NewGiftCodeCache(storage.InitializeRedis(cfg.RedisURL))
		}

		store, err := storage.NewGormStore(db, cache, cfg.ApprovedUserIDs, cfg.DefaultGiftCode)
		if err != nil {
			log.Panic("error seeding store defaults: " + err.Error())
		}
		return store
	case "memory":
		return storage.NewMemoryStore(cfg.ApprovedUserIDs, cfg.DefaultGiftCode)
	default:
		log.Panic("unknown STORAGE_BACKEND: " + cfg.StorageBackend)
		return nil
	}
}

func newApp(cfg *config.Config, store storage.Store) *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	// CORS for the SPA host
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, X-Admin-Token")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusOK)
			return
		}
		ctx.Next()
	})

	registerRoutes(app, store, utils.NewStaticTokenAuthorizer(cfg.AdminToken))
	return app
}

func registerRoutes(app *iris.Application, store storage.Store, auth utils.Authorizer) {
	h := routes.NewVerificationHandler(store)

	app.Get("/", routes.Index)
	app.Get("/health", routes.Health)

	api := app.Party("/api")
	{
		api.Post("/verify-account", h.VerifyAccount)
		api.Get("/gift-code", h.GetGiftCode)
		api.Get("/registration-link", routes.RegistrationLink)
	}

	admin := api.Party("/admin", utils.AdminAuthMiddleware(auth))
	{
		admin.Get("/account-verifications", h.AdminListVerifications)
		admin.Get("/account-verifications/status/{status}", h.AdminListVerificationsByStatus)
		admin.Post("/account-verifications/{id}", h.AdminUpdateVerification)
		admin.Post("/account-verification/{id}/approve", h.AdminApproveVerification)
		admin.Post("/account-verification/{id}/reject", h.AdminRejectVerification)
		admin.Post("/gift-code", h.UpdateGiftCode)
	}
}
