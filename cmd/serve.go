package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotel-indexer/core/indexer"
	"hotel-indexer/core/loader"
	"hotel-indexer/core/logger"
	"hotel-indexer/core/middleware/auth"
	"hotel-indexer/core/middleware/rayid"
	"hotel-indexer/core/storage"

	"hotel-indexer/feature/favorite"
	"hotel-indexer/feature/hotel"
	indexerapi "hotel-indexer/feature/indexer"
	"hotel-indexer/feature/integrity"
	"hotel-indexer/feature/media"
	"hotel-indexer/feature/reservation"
	"hotel-indexer/feature/review"
	"hotel-indexer/feature/room"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "hotel-indexer/docs/swagger"
)

// @title Hotel Indexer API
// @version 1.0
// @description Off-chain mirror of the hotel booking contract: read API, favourites, media uploads and the indexer trigger.
// @host localhost:8080
// @BasePath /api

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start"},
	Short:   "Start the HTTP API",
	Long: `Starts the HTTP server and initializes all enabled features.
With INDEXER_EMBEDDED=true the continuous sync loop runs in the same process.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Configuration, logger and stores
		d, err := loadDeps(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer d.close()
		logg := d.logger
		zap.ReplaceGlobals(logg)
		cfg := d.cfg

		// 2. Storage (Optional)
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Object storage unavailable, media uploads disabled", zap.Error(err))
		} else {
			store = client
		}

		// 3. Sync runner (Optional without a package id)
		var runner *indexer.Runner
		if r, err := d.newRunner(); err != nil {
			logg.Warn("Indexer disabled", zap.Error(err))
		} else {
			runner = r
		}

		// 4. Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Feature Loader
		mgr := loader.NewManager()
		mgr.Register(hotel.NewFeature(d.mirror, logg))
		mgr.Register(room.NewFeature(d.mirror, logg))
		mgr.Register(reservation.NewFeature(d.mirror, logg))
		mgr.Register(review.NewFeature(d.mirror, logg))
		mgr.Register(favorite.NewFeature(d.db, logg))
		mgr.Register(media.NewFeature(store, cfg.Storage, logg))
		mgr.Register(integrity.NewFeature(integrity.Options{
			DB:      d.db,
			Storage: store,
			Bucket:  cfg.Storage.Bucket,
			Region:  cfg.Storage.Region,
			Ledger:  d.ledger,
			Filter:  d.filter(),
			Logger:  logg,
		}))
		if runner != nil {
			mgr.Register(indexerapi.NewFeature(runner, cfg.Indexer.CronSecret, logg))
		}

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins}))

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth. The trigger checks its own bearer secret.
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Exempt: []string{"/api/indexer/run"},
		}))

		// 5. Load Features
		api := app.Group("/api")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		g, gctx := errgroup.WithContext(ctx)

		// 6. Start Server
		g.Go(func() error {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			return app.Listen(":" + cfg.Server.Port)
		})

		// 7. Embedded sync loop
		if cfg.Indexer.Embedded && runner != nil {
			g.Go(func() error {
				return indexer.NewScheduler(runner, cfg.Indexer, logg).Run(gctx)
			})
		}

		// 8. Graceful Shutdown
		g.Go(func() error {
			<-gctx.Done()
			logg.Info("Shutting down server...")
			return app.ShutdownWithContext(context.Background())
		})

		if err := g.Wait(); err != nil {
			logg.Error("Server stopped with error", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
