package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_registry/internal/adapters/database/pgsql"
	"github.com/SscSPs/currency_registry/internal/cache"
	"github.com/SscSPs/currency_registry/internal/core/bundle"
	"github.com/SscSPs/currency_registry/internal/core/factory"
	"github.com/SscSPs/currency_registry/internal/core/resolution"
	"github.com/SscSPs/currency_registry/internal/core/services"
	"github.com/SscSPs/currency_registry/internal/handlers"
	"github.com/SscSPs/currency_registry/internal/middleware"
	"github.com/SscSPs/currency_registry/internal/platform/config"
	"github.com/SscSPs/currency_registry/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	set, err := loadDataset(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to load currency dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	chains := resolution.NewChains(set)
	currencyFactory := factory.New(chains, factory.NewCacheState(logger))
	if err := configureFactoryCache(currencyFactory, cfg); err != nil {
		logger.Error("Failed to configure factory cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, services.NewServiceContainer(set, chains, currencyFactory))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadDataset reads the reference dataset from Postgres when PGSQL_URL is set,
// falling back to the compiled-in dataset when the table is empty.
func loadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*bundle.Set, error) {
	if cfg.DatabaseURL == "" {
		return bundle.DefaultSet()
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return nil, err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}
	// The dataset is read once; the pool is not needed afterwards.
	defer database.ClosePgxPool(dbPool, logger)

	repos := pgsql.NewRepositoryProvider(dbPool)
	set, err := bundle.Load(ctx, repos.CurrencyRepo)
	if err != nil {
		return nil, err
	}
	if len(set.Classifications()) == 0 {
		logger.Warn("Currency table is empty. Serving the built-in currency dataset.")
		return bundle.DefaultSet()
	}
	logger.Info("Loaded currency dataset from database", slog.Any("classifications", set.Classifications()))
	return set, nil
}

func configureFactoryCache(f *factory.Factory, cfg *config.Config) error {
	if cfg.CacheDisabled {
		return f.DisableCache()
	}
	return f.ConfigureCache(func(c *cache.Config) error {
		if err := c.SetCapacity(cfg.CacheCapacity); err != nil {
			return err
		}
		if err := c.SetExpiration(cfg.CacheExpiration); err != nil {
			return err
		}
		c.SetUnit(cfg.CacheExpirationUnit)
		return nil
	})
}
