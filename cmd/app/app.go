package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecohero-plus/ecohero-api/internal/api"
	"github.com/ecohero-plus/ecohero-api/internal/api/middleware"
	"github.com/ecohero-plus/ecohero-api/internal/config"
	"github.com/ecohero-plus/ecohero-api/internal/db"
	"github.com/ecohero-plus/ecohero-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// A missing or unreachable store must not abort startup. The health
	// endpoint reports the degraded state and data routes return 503.
	var postgresDB *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else if conf.Postgres != nil && conf.Postgres.Host != "" {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	} else {
		err = fmt.Errorf("no database configured")
	}
	if err != nil {
		zap.L().Warn("starting without a backing store", zap.Error(err))
		postgresDB = nil
	}

	middleware.InitPrometheus()

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
