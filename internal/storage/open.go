package storage

import (
	"fmt"

	"github.com/wellkit/wellkit/internal/config"
	"github.com/wellkit/wellkit/internal/storage/jsonfile"
	"github.com/wellkit/wellkit/internal/storage/sqlite"
)

// Open creates the storage backend named by the configuration.
func Open(cfg *config.Config) (Storage, error) {
	switch cfg.Storage {
	case config.BackendJSON:
		return jsonfile.Open(cfg.StorePath)
	case config.BackendSQLite:
		return sqlite.New(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}
