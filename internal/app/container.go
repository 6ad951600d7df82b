package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/dataset"
	"career-compass/internal/infrastructure/cache"
)

// Container wires the process-wide collaborators: the immutable dataset
// store, the optional redis cache and the optional dataset watcher.
type Container struct {
	Config  config.Config
	Logger  *log.Logger
	Store   *dataset.Store
	Cache   *cache.Redis
	watcher *dataset.Watcher
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	snap, err := dataset.Load(cfg.Dataset.Dir)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	store := dataset.NewStore(snap)
	logger.Printf("[Dataset] loaded: %d roles, %d skills", len(snap.Roles), len(snap.Skills))

	redisCache := cache.NewRedis(cfg.Redis, logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Cache:  redisCache,
	}

	if cfg.Dataset.Watch {
		onReload := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisCache.InvalidateRecommendations(ctx); err != nil {
				logger.Printf("[Dataset] cache invalidation after reload failed: %v", err)
			}
		}
		w := dataset.NewWatcher(cfg.Dataset.Dir, store, logger, onReload)
		if err := w.Start(); err != nil {
			return nil, fmt.Errorf("start dataset watcher: %w", err)
		}
		c.watcher = w
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.watcher != nil {
		c.watcher.Stop()
	}
	if c.Cache != nil {
		return c.Cache.Close()
	}
	return nil
}
