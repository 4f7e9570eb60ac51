package cmd

import (
	"context"
	"fmt"

	"content-sync/core/config"
	"content-sync/core/database"
	"content-sync/core/logger"
	"content-sync/feature/content"
	"content-sync/feature/structure"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var applyStructure bool

// structureCmd reconciles the declared page manifest against the remote
// pages table from the command line.
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Diff the page manifest against remote pages (optionally sync)",
	Long: `Compares the declared page manifest with the pages the remote store
actually has. By default only reports the difference; with --apply the
missing pages are created in one batched insert.

Reconciliation is one-way: remote pages absent from the manifest are
reported as extras and never deleted.`,
	RunE: runStructure,
}

func init() {
	structureCmd.Flags().BoolVar(&applyStructure, "apply", false, "Create missing pages instead of only reporting")
	RootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
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

	fs := afero.NewOsFs()
	manifest, err := structure.LoadManifest(fs, cfg.Structure.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	svc := structure.NewService(content.NewGormStore(db), l, fs, manifest, cfg.Structure)

	if applyStructure {
		if err := svc.Sync(ctx); err != nil {
			return fmt.Errorf("structure sync failed: %w", err)
		}
	} else if _, err := svc.Refresh(ctx); err != nil {
		return fmt.Errorf("structure refresh failed: %w", err)
	}

	state := svc.State()
	l.Info("Structure report",
		zap.Int("declared", state.Summary.Declared),
		zap.Int("remote", state.Summary.Remote),
		zap.Int("missing", state.Summary.Missing),
		zap.Int("extra", state.Summary.Extra),
		zap.Strings("missing_slugs", state.Missing),
	)
	if !applyStructure && state.Summary.Missing > 0 {
		l.Info("Run with --apply to create the missing pages")
	}
	return nil
}
