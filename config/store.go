package config

import (
	"fmt"
	"strings"

	"modern-hotel/storage"
	"modern-hotel/utils"
)

// NewStoreFromEnv picks the persistence backend. STORAGE_BACKEND=mysql uses
// GORM over MySQL; anything else (the default) uses the CSV files under
// DATA_DIR.
func NewStoreFromEnv() (storage.Store, error) {
	backend := strings.ToLower(utils.EnvOrDefault("STORAGE_BACKEND", "csv"))
	switch backend {
	case "mysql", "db":
		db, err := ConnectDatabase()
		if err != nil {
			return nil, fmt.Errorf("database connect failed: %w", err)
		}
		return storage.NewGormStore(db), nil
	case "csv", "file":
		return storage.NewCSVStore(utils.EnvOrDefault("DATA_DIR", "data")), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (expected csv or mysql)", backend)
	}
}
