package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/colinp85/simpler-salesforce/internal/config"
	"github.com/colinp85/simpler-salesforce/internal/schema"
	"github.com/colinp85/simpler-salesforce/internal/sfdc"
	"github.com/colinp85/simpler-salesforce/internal/snapshot"
)

var (
	cfgPath string
	verbose bool

	cfg   *config.Config
	sugar *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "simpler-salesforce",
	Short: "Metadata-aware access to Salesforce objects",
	Long: `simpler-salesforce discovers Salesforce object field schemas, caches them
as YAML snapshots, builds SOQL queries from the cached schemas, and resolves
reference fields into embedded child records.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var logger *zap.Logger
		var err error
		if verbose {
			z := zap.NewDevelopmentConfig()
			z.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			logger, err = z.Build()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		sugar = logger.Sugar()

		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// connect establishes the Salesforce session. Failure here is fatal to the
// invoked command; nothing works without a session.
func connect(ctx context.Context) (*sfdc.Client, error) {
	client, err := sfdc.Connect(ctx, cfg.Auth, cfg.APIVersion, sugar)
	if err != nil {
		return nil, fmt.Errorf("connecting to Salesforce: %w", err)
	}
	return client, nil
}

// snapshotStore returns the store backing the configured cache directory.
func snapshotStore() *snapshot.Store {
	return snapshot.New(cfg.CacheDir, sugar)
}

// loadCatalog populates a catalog either from the snapshot cache or from
// the live API, optionally writing snapshots through.
func loadCatalog(ctx context.Context, names []string, fromCache, writeCache bool) (*schema.Catalog, error) {
	cat := schema.NewCatalog(sugar)

	if fromCache {
		cat.LoadSnapshots(snapshotStore(), names)
		return cat, nil
	}

	client, err := connect(ctx)
	if err != nil {
		return nil, err
	}
	var snap schema.SnapshotWriter
	if writeCache {
		snap = snapshotStore()
	}
	cat.LoadLive(ctx, client, names, snap)
	return cat, nil
}
