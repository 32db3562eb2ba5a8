package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"multitube/internal/channels"
	"multitube/internal/config"
	"multitube/internal/kvstore"
	"multitube/internal/logging"
	"multitube/internal/snapshot"
	"multitube/internal/youtube"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// session bundles what a command needs to read or change groups.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	kv       kvstore.Store
	store    *channels.Store
	embedder youtube.Embedder
}

// withSession loads the saved groups into a fresh store whose changes are
// persisted, runs fn, and releases the backend.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(context.Context, *session) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	kv, err := kvstore.Open(cfg)
	if err != nil {
		hint := "check storage.backend and that the state directory is writable"
		if errors.Is(err, kvstore.ErrSchemaMismatch) {
			hint = "move the sqlite file aside or point storage.sqlite_file elsewhere"
		}
		logging.ErrorWithContext(logger, "storage unavailable", "storage_open_failed",
			logging.String("backend", cfg.Storage.Backend),
			logging.String(logging.FieldErrorHint, hint),
			logging.Error(err))
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	groups := snapshot.Load(ctx, kv, cfg.Storage.Key, cfg.Storage.SeedDefaults, logger)
	store := channels.NewStore(groups,
		channels.WithLogger(logger),
		channels.WithListener(snapshot.NewPersister(kv, cfg.Storage.Key, logger)),
	)

	return fn(ctx, &session{
		cfg:      cfg,
		logger:   logger,
		kv:       kv,
		store:    store,
		embedder: newEmbedder(cfg),
	})
}

func newEmbedder(cfg *config.Config) youtube.Embedder {
	return youtube.NewEmbedder(cfg.Player.EmbedHost)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
