package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Backend names accepted in config and on the command line.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config drives the shelfdex CLI: where snapshots live and which store
// backend holds them.
type Config struct {
	// DataDir holds the snapshot documents (or the SQLite database).
	DataDir string `hcl:"data_dir,optional"`
	// Backend selects the snapshot store: "json" or "sqlite".
	Backend string `hcl:"backend,optional"`
}

func Default() Config {
	return Config{DataDir: "data", Backend: BackendJSON}
}

// Load reads an HCL config file. A missing file yields the defaults;
// unset fields fall back to them too.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	if cfg.Backend != BackendJSON && cfg.Backend != BackendSQLite {
		return Config{}, fmt.Errorf("unknown backend %q in %s", cfg.Backend, path)
	}
	return cfg, nil
}
