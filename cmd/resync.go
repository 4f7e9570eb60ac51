package cmd

import (
	"context"
	"fmt"

	"content-sync/core/config"
	"content-sync/core/database"
	"content-sync/core/logger"
	"content-sync/core/notify"
	"content-sync/feature/content"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resyncCmd rebuilds remote content from the bundled fallback snapshot.
// It deliberately bypasses any cached state: the fallback is the sole
// source, which makes it the recovery path for a corrupted remote store.
var resyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Force a full content resync from the bundled fallback",
	Long: `Rebuilds the remote content table from the fallback snapshot compiled
into the binary. Existing rows are overwritten per key; pages in the
fallback but not in the remote store are reported, not created
(run 'structure sync' first to create them).`,
	RunE: runResync,
}

func init() {
	RootCmd.AddCommand(resyncCmd)
}

func runResync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fallback, err := content.BundledFallback()
	if err != nil {
		return fmt.Errorf("failed to decode fallback snapshot: %w", err)
	}

	svc := content.NewService(content.NewGormStore(db), l, notify.New(l, 100), cfg.Content, fallback)

	l.Info("Starting full content resync from fallback")
	result, err := svc.Resync(ctx)
	if err != nil {
		return fmt.Errorf("resync failed: %w", err)
	}

	l.Info("Resync finished",
		zap.Int("rows", result.Rows),
		zap.Int("written", result.Written),
		zap.Strings("missing_pages", result.MissingPages),
		zap.Int("failed", len(result.Failed)),
	)
	for _, failure := range result.Failed {
		l.Warn("Row failed",
			zap.String("page", failure.Page),
			zap.String("content_key", failure.ContentKey),
			zap.String("reason", failure.Reason),
		)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("resync completed with %d failed rows", len(result.Failed))
	}
	return nil
}
