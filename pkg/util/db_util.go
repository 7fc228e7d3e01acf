package util

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type PostgresDatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool"`
	// PingAttempts is the number of connection checks before giving up. Zero means 3.
	PingAttempts uint `yaml:"ping_attempts"`
}

func NewPostgresDBPool(config PostgresDatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&pool_max_conns=%d",
		url.PathEscape(config.User),
		url.PathEscape(config.Password),
		url.PathEscape(config.Host),
		config.Port,
		url.PathEscape(config.Database),
		url.QueryEscape(config.SSLMode),
		config.PoolSize,
	)

	dbPool, err := pgxpool.New(
		context.Background(),
		connString,
	)
	if err != nil {
		// The connection string carries the password, only the target is reported.
		return nil, fmt.Errorf("open connection to database %s/%s failed", config.Host, config.Database)
	}

	attempts := config.PingAttempts
	if attempts == 0 {
		attempts = 3
	}
	err = retry.Do(
		func() error { return dbPool.Ping(context.Background()) },
		retry.Attempts(attempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logrus.Warnf("ping database %s/%s (attempt %d): %v", config.Host, config.Database, n+1, err)
		}),
	)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ping database %s/%s: %w", config.Host, config.Database, err)
	}

	return dbPool, nil
}
