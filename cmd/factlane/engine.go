package main

import (
	"fmt"

	"github.com/factlane/factlane"
	"github.com/factlane/factlane/internal/config"
	"github.com/factlane/factlane/internal/logging"
	"github.com/factlane/factlane/pkg/adapters/file"
	redisadapter "github.com/factlane/factlane/pkg/adapters/redis"
	"github.com/factlane/factlane/pkg/domain"
	"github.com/factlane/factlane/pkg/observability"
	"github.com/factlane/factlane/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// buildEngine wires an Engine from the configuration file the command points
// at. The store backend, redis settings, and log level all come from there.
func buildEngine(cmd *cobra.Command) (*factlane.Engine, *config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(level)

	store, locker, err := buildStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	opts := []factlane.Option{
		factlane.WithLogger(logger),
		factlane.WithLifecycleHooks(metrics.Hooks(domain.LifecycleHooks{})),
	}
	if store != nil {
		opts = append(opts, factlane.WithStore(store))
	}
	if locker != nil {
		opts = append(opts, factlane.WithLocker(locker))
	}

	return factlane.New(opts...), cfg, nil
}

func buildStore(cfg *config.Config) (ports.SnapshotStore, ports.DistributedLocker, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		// Engine default; nil store keeps the in-memory one.
		return nil, nil, nil
	case config.BackendFile:
		return file.New(cfg.Store.Path), nil, nil
	case config.BackendRedis:
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		var storeOpts []redisadapter.Option
		if cfg.Redis.Prefix != "" {
			storeOpts = append(storeOpts, redisadapter.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL > 0 {
			storeOpts = append(storeOpts, redisadapter.WithTTL(cfg.Redis.TTL.Std()))
		}
		store := redisadapter.NewFromClient(client, storeOpts...)

		var locker ports.DistributedLocker
		if cfg.Redis.Lock {
			locker = redisadapter.NewLocker(client, "factlane:")
		}
		return store, locker, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
