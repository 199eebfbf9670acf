package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Murugadoss7/dental-app/config"
)

// NewPostgresDB builds the connection pool and verifies connectivity,
// retrying with a fixed delay. Retry on connect is an infrastructure concern;
// the services above never retry.
func NewPostgresDB(cfg config.PostgresConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MaxIdleConnections)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	retries := cfg.ConnectRetries
	if retries < 1 {
		retries = 1
	}

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			return pool, nil
		}

		if attempt >= retries {
			pool.Close()
			return nil, fmt.Errorf("connect to database after %d attempts: %w", attempt, err)
		}

		logger.Warn("database not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Int("retries", retries),
			zap.Error(err))
		time.Sleep(cfg.ConnectRetryDelay)
	}
}
