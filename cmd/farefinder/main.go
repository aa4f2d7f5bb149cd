package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"farefinder/cfg"
	"farefinder/internal/auth"
	"farefinder/internal/favorite"
	"farefinder/internal/search"
	"farefinder/internal/status"
	"farefinder/pkg/amadeus"
	"farefinder/pkg/db"
	"farefinder/pkg/idgen"
	"farefinder/pkg/logger"
	"farefinder/pkg/telemetry"

	_ "farefinder/cmd/farefinder/docs" // swagger docs

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Farefinder API
// @version         1.0
// @description     Flight search with live provider fallback, favorites, and accounts.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)
	zlogger.Info("environment check",
		logger.Field{Key: "amadeus_configured", Value: config.Amadeus.Configured()},
	)

	// ============
	// Otel
	// ============
	if config.Observability.OTLPEndpoint != "" {
		shutdownOtel, err := telemetry.Init(context.Background(),
			config.Observability.OTLPEndpoint,
			config.Observability.ServiceName,
			config.Observability.Environment,
		)
		if err != nil {
			zlogger.Warn("failed to initialize OpenTelemetry, continuing without tracing/metrics",
				logger.Field{Key: "err", Value: err},
			)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownOtel(ctx); err != nil {
					zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
				}
			}()
		}
	}

	// ============
	// Database
	// ============
	pg := config.Postgres
	pgDSN := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		pg.User,
		pg.Password,
		pg.Host,
		pg.Port,
		pg.DBName,
		pg.SSLMode,
	)

	sqlClient, err := db.NewSQLClient("postgres", pgDSN)
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.New("file://"+config.MigrationsDir, pgDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}

	// ============
	// ID generator
	// ============
	idGen, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	// No request timeout beyond the transport default; a hung provider call
	// hangs its request.
	httpClient := &http.Client{}

	var searchProvider search.ProviderClient
	var probeTarget status.Pinger
	if config.Amadeus.Configured() {
		client := amadeus.NewClient(httpClient, config.Amadeus.BaseURL,
			config.Amadeus.ClientID, config.Amadeus.ClientSecret, zlogger)
		searchProvider = client
		probeTarget = client
		zlogger.Info("live provider initialized", logger.Field{Key: "base_url", Value: config.Amadeus.BaseURL})
	} else {
		zlogger.Warn("no provider credentials, serving mock offers only")
	}

	apiState := status.NewState(config.Amadeus.Configured())
	go apiState.Probe(context.Background(), probeTarget, zlogger)

	// ============
	// Internal Service
	// ============
	searchSvc := search.NewService(searchProvider, zlogger)
	searchHandler := search.NewSearchHandler(searchSvc)

	authSvc := auth.NewService(auth.NewRepository(sqlClient), zlogger)
	authHandler := auth.NewAuthHandler(authSvc)

	favoriteSvc := favorite.NewService(favorite.NewRepository(sqlClient), idGen, zlogger)
	favoriteHandler := favorite.NewFavoriteHandler(favoriteSvc)

	statusHandler := status.NewStatusHandler(apiState)

	// ============
	// HTTP
	// ============
	r := gin.Default()
	r.Use(otelgin.Middleware(config.Observability.ServiceName))

	searchHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	favoriteHandler.RegisterRoutes(r)
	statusHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
