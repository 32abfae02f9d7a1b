// internal/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override the file.
const (
	EnvVendorID  = "BADGE_VENDOR_ID"
	EnvProductID = "BADGE_PRODUCT_ID"
	EnvLogLevel  = "BADGE_LOG_LEVEL"
	EnvLogDir    = "BADGE_LOG_DIR"
)

// ApplyEnv overlays environment overrides onto cfg. Call before Validate.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, os.Getenv)
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvVendorID); v != "" {
		id, err := strconv.ParseUint(v, 0, 16)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVendorID, err)
		}
		cfg.Badge.Device.VendorID = uint16(id)
	}
	if v := getenv(EnvProductID); v != "" {
		id, err := strconv.ParseUint(v, 0, 16)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvProductID, err)
		}
		cfg.Badge.Device.ProductID = uint16(id)
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Badge.Log.Level = v
	}
	if v := getenv(EnvLogDir); v != "" {
		cfg.Badge.Log.Dir = v
	}
	return nil
}
