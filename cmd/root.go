package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/openmerch/shelfdex/internal/config"
	"github.com/openmerch/shelfdex/internal/snapshot"
)

var (
	configPath string
	dataDir    string
	backend    string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "shelfdex.hcl", "Path to HCL config file")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Snapshot data directory (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", "", `Snapshot backend: "json" or "sqlite" (overrides config)`)
}

var rootCmd = &cobra.Command{
	Use:   "shelfdex",
	Short: "Shelfdex: snapshot tooling for the product indexing engine",
}

// openStore resolves config file plus flag overrides into a snapshot
// store.
func openStore() (snapshot.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backend != "" {
		cfg.Backend = backend
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	switch cfg.Backend {
	case config.BackendJSON:
		return snapshot.NewFileStore(osfs.New(cfg.DataDir)), nil
	case config.BackendSQLite:
		return snapshot.NewSQLiteStore(filepath.Join(cfg.DataDir, "shelfdex.db"))
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
