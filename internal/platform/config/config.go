package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

type Config struct {
	DataDir    string
	DBPath     string
	FilePath   string
	LogPath    string
	JournalDir string

	UnlockHour    int           `env:"GENIE_UNLOCK_HOUR"     envDefault:"5"`
	ProofSeedBase int           `env:"GENIE_PROOF_SEED_BASE" envDefault:"12000"`
	SealDuration  time.Duration `env:"GENIE_SEAL_DURATION"   envDefault:"1100ms"`
	Store         string        `env:"GENIE_STORE"           envDefault:"sqlite"`
	LogLevel      string        `env:"GENIE_LOG_LEVEL"       envDefault:"info"`
	DisplayName   string        `env:"GENIE_DISPLAY_NAME"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DataDir = dataDir
	cfg.DBPath = filepath.Join(dataDir, ".genie", "genie.db")
	cfg.FilePath = filepath.Join(dataDir, ".genie", "store.json")
	cfg.LogPath = filepath.Join(dataDir, ".genie", "logs", "genie.log")
	cfg.JournalDir = filepath.Join(dataDir, "journal")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.UnlockHour < 0 || c.UnlockHour > 23 {
		return fmt.Errorf("unlock hour must be within 0-23, got %d", c.UnlockHour)
	}
	if c.ProofSeedBase < 0 {
		return fmt.Errorf("proof seed base must be non-negative, got %d", c.ProofSeedBase)
	}
	if c.SealDuration < 0 {
		return fmt.Errorf("seal duration must be non-negative, got %s", c.SealDuration)
	}
	switch c.Store {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("unsupported store %q", c.Store)
	}
	return nil
}
