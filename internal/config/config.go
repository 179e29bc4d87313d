// Package config loads the application configuration from an optional
// yaml file with environment overrides.
package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DBPath             string        `yaml:"db_path" env:"DAILIES_DB_PATH"`
	BackupDir          string        `yaml:"backup_dir" env:"DAILIES_BACKUP_DIR"`
	MaxBackups         int           `yaml:"max_backups" env:"DAILIES_MAX_BACKUPS" env-default:"10"`
	ExpectedPerDay     int           `yaml:"expected_per_day" env:"DAILIES_EXPECTED_PER_DAY" env-default:"1"`
	AutoBackupInterval time.Duration `yaml:"auto_backup_interval" env:"DAILIES_AUTO_BACKUP_INTERVAL" env-default:"1h"`
}

// MustLoad reads configPath when given, falling back to environment-only
// configuration. Startup dies on a malformed file.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
