package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	_addrDefault     = ":8080"
	_logLevelDefault = "info"
	_dbFileName      = "agyal.db"
)

type Config struct {
	Addr     string
	DBPath   string // empty disables the selection log
	LogLevel string
}

// ConfigFromEnv reads AGYAL_* variables. PORT and RAILWAY_VOLUME_MOUNT_PATH
// are honoured as fallbacks for hosted deployments.
func ConfigFromEnv() Config {
	cfg := Config{
		Addr:     os.Getenv("AGYAL_ADDR"),
		DBPath:   os.Getenv("AGYAL_DB_PATH"),
		LogLevel: os.Getenv("AGYAL_LOG_LEVEL"),
	}
	if cfg.Addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	if cfg.DBPath == "" {
		if mountPath := os.Getenv("RAILWAY_VOLUME_MOUNT_PATH"); mountPath != "" {
			cfg.DBPath = filepath.Join(mountPath, _dbFileName)
		}
	}
	return cfg
}

func (c *Config) Setup() error {
	if c.Addr == "" {
		c.Addr = _addrDefault
	}
	if c.LogLevel == "" {
		c.LogLevel = _logLevelDefault
	}

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}
