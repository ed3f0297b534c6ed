package main

import (
	"context"
	"log"

	"evident/adapters/postgres"
	"evident/app"
	"evident/internal"
	"evident/internal/api"
	"evident/internal/config"
	"evident/internal/errors"
	"evident/internal/metrics"
	"evident/internal/migration"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
)

// initDatabase connects to PostgreSQL and applies the schema
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := postgres.Open(appConfig.Database.URL)
	if err != nil {
		return nil, err
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}
	return db, nil
}

func main() {
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, _ := internal.ParseLogLevel(appConfig.LogLevel)
	logger := internal.NewLogger(level).With("server")

	data, err := app.LoadDataset(appConfig.Data)
	if err != nil {
		log.Fatalf("Failed to load input data: %v", err)
	}
	logger.Info("loaded metadata for %d samples", data.Metadata.Len())

	opts := []app.ServiceOption{
		app.WithLogger(logger),
		app.WithMetrics(metrics.New(prometheus.DefaultRegisterer)),
	}
	if appConfig.Database.Enabled() {
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		opts = append(opts, app.WithRepository(postgres.NewResultsRepository(db)))
		logger.Info("persisting results to PostgreSQL")
	} else {
		logger.Warn("DATABASE_URL not set, results are not persisted")
	}

	service, err := app.NewPowerService(data, appConfig.Analysis, opts...)
	if err != nil {
		log.Fatalf("Failed to create power service: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)
	router := api.NewRouter(api.NewPowerHandler(service), prometheus.DefaultGatherer)

	logger.Info("starting evident server on port %s", appConfig.Server.Port)
	log.Fatal(router.Run(":" + appConfig.Server.Port))
}
