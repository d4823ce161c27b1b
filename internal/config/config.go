// Package config reads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath        string  // "" = default XDG path
	LogMode       string  // dev or prod
	LogFile       string  // "" = logging disabled
	LevelCurve    string  // flat or geometric
	LevelBase     int     // XP to leave level 1
	LevelFactor   float64 // growth per level for the geometric curve
	CatalogPath   string  // "" = built-in catalog
	PlaybackSpeed float64 // simulated seconds per real second
	UserID        string
	SnapshotKeep  int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	return Config{
		DBPath:        envOr("EDUSMART_DB", ""),
		LogMode:       envOr("EDUSMART_LOG_MODE", "dev"),
		LogFile:       envOr("EDUSMART_LOG_FILE", ""),
		LevelCurve:    envOr("EDUSMART_LEVEL_CURVE", "flat"),
		LevelBase:     envIntOr("EDUSMART_LEVEL_BASE", 100),
		LevelFactor:   envFloatOr("EDUSMART_LEVEL_FACTOR", 1.5),
		CatalogPath:   envOr("EDUSMART_CATALOG", ""),
		PlaybackSpeed: envFloatOr("EDUSMART_PLAYBACK_SPEED", 1),
		UserID:        envOr("EDUSMART_USER", defaultUser()),
		SnapshotKeep:  envIntOr("EDUSMART_SNAPSHOT_KEEP", 5),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	switch c.LevelCurve {
	case "flat", "geometric":
	default:
		errs = append(errs, fmt.Errorf("EDUSMART_LEVEL_CURVE must be flat or geometric, got %q", c.LevelCurve))
	}
	if c.LevelBase <= 0 {
		errs = append(errs, fmt.Errorf("EDUSMART_LEVEL_BASE must be positive, got %d", c.LevelBase))
	}
	if c.LevelFactor < 1 {
		errs = append(errs, fmt.Errorf("EDUSMART_LEVEL_FACTOR must be at least 1, got %v", c.LevelFactor))
	}
	if c.PlaybackSpeed <= 0 {
		errs = append(errs, fmt.Errorf("EDUSMART_PLAYBACK_SPEED must be positive, got %v", c.PlaybackSpeed))
	}
	if strings.TrimSpace(c.UserID) == "" {
		errs = append(errs, errors.New("EDUSMART_USER cannot be empty"))
	}
	if c.SnapshotKeep < 1 {
		errs = append(errs, fmt.Errorf("EDUSMART_SNAPSHOT_KEEP must be at least 1, got %d", c.SnapshotKeep))
	}
	return errors.Join(errs...)
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "learner"
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
