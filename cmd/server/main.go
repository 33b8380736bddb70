package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ardhian127/bike-rental-analyst/internal/delivery/http"
	"github.com/ardhian127/bike-rental-analyst/internal/logger"
	"github.com/ardhian127/bike-rental-analyst/internal/repository/csvfile"
	"github.com/ardhian127/bike-rental-analyst/internal/repository/memory"
	"github.com/ardhian127/bike-rental-analyst/internal/repository/postgres"
	"github.com/ardhian127/bike-rental-analyst/internal/service"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	// Configuration
	cfg := loadConfig()
	log := logger.New(cfg.Env)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Table source
	repo, closeRepo := openRepository(ctx, cfg, log)
	defer closeRepo()

	// Tables are loaded once and shared read-only by every request
	tables, err := service.LoadTables(ctx, repo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load rental tables")
	}
	log.Info().
		Int("days", len(tables.Days)).
		Int("hours", len(tables.Hours)).
		Msg("Rental tables loaded")

	// Dependency Injection: Services
	metrics := service.NewPipelineMetrics()
	dashboardSvc := service.NewDashboardService(tables, repo, metrics, log)
	chartSvc := service.NewChartService(cfg.ChartWidth, cfg.ChartHeight)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Bike Rental Dashboard v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, dashboardSvc, chartSvc, metrics.Registry())

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

// openRepository picks the table source. A postgres source that cannot be
// reached falls back to the CSV files.
func openRepository(ctx context.Context, cfg *Config, log zerolog.Logger) (service.TableRepository, func()) {
	noop := func() {}

	switch cfg.DataSource {
	case "demo":
		log.Warn().Msg("Running with built-in demo data")
		return memory.NewDemoRepository(), noop
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
			if err != nil {
				pool.Close()
			}
		}
		if err != nil {
			log.Warn().Err(err).Msg("Could not connect to database, falling back to CSV files")
			break
		}
		log.Info().Msg("Connected to PostgreSQL")
		return postgres.NewPostgresRepository(pool), pool.Close
	}

	log.Info().Str("days", cfg.DaysCSV).Str("hours", cfg.HoursCSV).Msg("Reading CSV tables")
	return csvfile.NewRepository(cfg.DaysCSV, cfg.HoursCSV), noop
}

type Config struct {
	DataSource  string
	DaysCSV     string
	HoursCSV    string
	DatabaseURL string
	ChartWidth  string
	ChartHeight string
	Port        string
	Env         string
}

func loadConfig() *Config {
	cfg := &Config{
		DataSource:  getEnv("DATA_SOURCE", "csv"),
		DaysCSV:     getEnv("DAYS_CSV", "dashboard/days_data.csv"),
		HoursCSV:    getEnv("HOURS_CSV", "dashboard/hours_data.csv"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		ChartWidth:  getEnv("CHART_WIDTH", "900px"),
		ChartHeight: getEnv("CHART_HEIGHT", "520px"),
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("GO_ENV", "development"),
	}
	if cfg.DataSource == "csv" && cfg.DatabaseURL != "" {
		cfg.DataSource = "postgres"
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
