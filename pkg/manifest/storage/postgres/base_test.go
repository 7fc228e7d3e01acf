package postgres_test

import (
	"context"
	"os"
	"strconv"

	"github.com/go-testfixtures/testfixtures/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/util"
)

// BaseTestSuite connects to the database named by the DATABASE_* variables and reloads
// testdata/manifest before every test. Tests are skipped when DATABASE_HOST is not set.
type BaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	pgPool *pgxpool.Pool
}

func databaseConfig() (util.PostgresDatabaseConfig, bool) {
	host := os.Getenv("DATABASE_HOST")
	if host == "" {
		return util.PostgresDatabaseConfig{}, false
	}
	port, err := strconv.Atoi(os.Getenv("DATABASE_PORT"))
	if err != nil {
		port = 5432
	}
	return util.PostgresDatabaseConfig{
		Host:         host,
		Port:         port,
		Database:     os.Getenv("DATABASE_NAME"),
		User:         os.Getenv("DATABASE_USER"),
		Password:     os.Getenv("DATABASE_PASSWORD"),
		SSLMode:      "disable",
		PoolSize:     5,
		PingAttempts: 1,
	}, true
}

func (s *BaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	config, ok := databaseConfig()
	if !ok {
		s.T().Skip("DATABASE_HOST is not set")
	}

	pool, err := util.NewPostgresDBPool(config)
	s.Require().NoError(err)
	s.pgPool = pool

	// testfixtures empties every table that has a fixture file before loading it.
	fixtures, err := testfixtures.New(
		testfixtures.Database(stdlib.OpenDBFromPool(pool)),
		testfixtures.Dialect("postgres"),
		testfixtures.Directory("testdata/manifest"),
		testfixtures.DangerousSkipTestDatabaseCheck(),
	)
	s.Require().NoError(err)
	s.Require().NoError(fixtures.Load())
}

func (s *BaseTestSuite) TearDownTest() {
	if s.pgPool != nil {
		s.pgPool.Close()
	}
}
