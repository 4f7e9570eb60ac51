package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-sync/core/config"
	"content-sync/core/database"
	"content-sync/core/loader"
	"content-sync/core/logger"
	"content-sync/core/middleware/auth"
	"content-sync/core/middleware/rayid"
	"content-sync/core/notify"
	"content-sync/core/storage"

	"content-sync/feature/content"
	"content-sync/feature/drafts"
	"content-sync/feature/editor"
	"content-sync/feature/structure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "content-sync/docs/swagger"
)

// @title Content Sync API
// @version 1.0
// @description API for multilingual content synchronization and draft reconciliation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the content sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to content database", zap.Error(err))
		}
		if missing := database.MissingTables(db, database.RequiredTables); len(missing) > 0 {
			logg.Warn("Content database is missing tables; affected features will degrade",
				zap.Strings("tables", missing))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Media Storage (Optional)
		// Without it the editor serves media rows with empty URLs.
		var mediaClient storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional media storage unavailable", zap.Error(err))
		} else {
			mediaClient = client
		}

		notifier := notify.New(logg, 100)

		fallback, err := content.BundledFallback()
		if err != nil {
			logg.Fatal("Failed to decode bundled fallback snapshot", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		store := content.NewGormStore(db)
		mgr := loader.NewManager()

		contentFeature := content.NewFeature(store, logg, notifier, cfg.Content, fallback)
		draftsFeature := drafts.NewFeature(drafts.NewGormStore(db), logg, cfg.Drafts)
		structureFeature, err := structure.NewFeature(store, logg, afero.NewOsFs(), cfg.Structure)
		if err != nil {
			logg.Fatal("Failed to load page manifest", zap.Error(err))
		}

		mgr.Register(contentFeature)
		mgr.Register(draftsFeature)
		mgr.Register(structureFeature)
		mgr.Register(editor.NewFeature(store, mediaClient, logg, cfg.Storage))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 8. Hydrate the tree from the remote store. The tree is already
		// seeded from the fallback, so a failed load degrades rather than
		// blocks startup.
		go func() {
			if err := contentFeature.Service().Load(ctx); err != nil {
				logg.Warn("Initial content load failed; serving fallback content", zap.Error(err))
			}
		}()

		// 9. Background drain of the pending-change queue
		var stopDrain func()
		if cfg.Content.DrainIntervalSeconds > 0 {
			interval := time.Duration(cfg.Content.DrainIntervalSeconds) * time.Second
			stopDrain = contentFeature.Service().StartDrain(ctx, interval)
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if stopDrain != nil {
			stopDrain()
		}
		draftsFeature.Service().Flush()
		draftsFeature.Service().Close()
		if result := contentFeature.Service().Save(context.Background()); !result.OK() {
			logg.Warn("Final save left pending changes",
				zap.Int("failed", len(result.Failed)))
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
