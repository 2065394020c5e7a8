package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"slotbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		slog.Info("closing redis client")
		if err := rdb.Close(); err != nil {
			slog.Warn("error closing redis client", "error", err.Error())
		}
	}

	return rdb, cleanup, nil
}
