package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validatePlayer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("storage.backend: unsupported value %q (want %s, %s, or %s)",
			c.Storage.Backend, BackendSQLite, BackendFile, BackendMemory)
	}
	key := strings.TrimSpace(c.Storage.Key)
	switch {
	case key == "":
		return errors.New("storage.key must be set")
	case key == "." || key == "..":
		return fmt.Errorf("storage.key must name a file, got %q", c.Storage.Key)
	case strings.ContainsAny(key, `/\`):
		return fmt.Errorf("storage.key must not contain path separators, got %q", c.Storage.Key)
	}
	return nil
}

func (c *Config) validatePlayer() error {
	if strings.ContainsAny(c.Player.EmbedHost, "/?# ") {
		return fmt.Errorf("player.embed_host must be a bare host name, got %q", c.Player.EmbedHost)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
