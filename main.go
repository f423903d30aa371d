package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"faithshop/cart"
	"faithshop/condb"
	"faithshop/config"
	"faithshop/controllers"
	"faithshop/middleware"
	"faithshop/pkg/logx"
	"faithshop/repository"
	"faithshop/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("load config failed")
	}
	logx.Init(cfg.AppEnv)

	ctx := context.Background()
	client, err := condb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logx.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer client.Disconnect(context.Background())

	store := repository.NewMongoProductStore(client.Database(cfg.MongoDB))
	if err := store.EnsureIndexes(ctx); err != nil {
		logx.Fatal().Err(err).Msg("ensure indexes failed")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: controllers.UploadBodyLimit,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLog)

	app.Static("/static", cfg.StaticDir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Electronics shop API running"})
	})

	routes.RegisterRoutes(
		app,
		controllers.NewProductController(store),
		controllers.NewUploadController(cfg.StaticDir, cfg.BaseURL),
		controllers.NewCartController(cart.NewStore(), store),
	)

	logx.Info().Str("port", cfg.Port).Msg("server listening")
	logx.Fatal().Err(app.Listen(":" + cfg.Port)).Msg("server stopped")
}
