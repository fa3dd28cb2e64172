package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"foodndeliv/config"
	httpapi "foodndeliv/delivery-svc/internal/api/http"
	"foodndeliv/delivery-svc/internal/identity"
	"foodndeliv/delivery-svc/internal/service"
	"foodndeliv/delivery-svc/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.Postgres, logger)
	defer db.Close()

	if err := storage.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	var cache service.MenuCache
	if cfg.Redis.Addr != "" {
		client := config.MustInitRedis(cfg.Redis, logger)
		defer client.Close()
		cache = storage.NewRedisMenuCache(client, cfg.Redis.MenuTTL)
		logger.Info("menu cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.MenuTTL))
	}

	var provider identity.Provider
	if cfg.Keycloak.ServerURL != "" {
		provider = identity.NewKeycloakProvider(identity.KeycloakConfig{
			ServerURL:    cfg.Keycloak.ServerURL,
			AuthRealm:    cfg.Keycloak.AuthRealm,
			TargetRealm:  cfg.Keycloak.TargetRealm,
			ClientID:     cfg.Keycloak.ClientID,
			ClientSecret: cfg.Keycloak.ClientSecret,
		})
		logger.Info("identity provisioning enabled",
			zap.String("server", cfg.Keycloak.ServerURL), zap.String("realm", cfg.Keycloak.TargetRealm))
	}
	accounts := identity.NewBridge(provider, cfg.Keycloak.TempPassword, logger)

	router := buildRouter(db, cache, accounts, cfg.ReceiptBaseURL, logger)

	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, router, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// buildRouter wires the Postgres repository, the optional menu cache and the account bridge
// into the services and returns the HTTP handler serving all of them.
func buildRouter(db *sql.DB, cache service.MenuCache, accounts service.AccountBridge, receiptBaseURL string, logger *zap.Logger) http.Handler {
	repo := storage.NewPostgresRepository(db)

	customerSvc := service.NewCustomerService(repo, accounts, logger)
	restaurantSvc := service.NewRestaurantService(repo, cache, logger)
	menuSvc := service.NewMenuItemService(repo, repo, cache, logger)
	riderSvc := service.NewRiderService(repo, accounts, logger)
	orderSvc := service.NewOrderService(repo, repo, repo, repo,
		service.DefaultQRGenerator{BaseURL: receiptBaseURL}, logger)

	handler := httpapi.NewHandler(customerSvc, restaurantSvc, menuSvc, riderSvc, orderSvc, logger)
	return httpapi.NewRouter(handler, logger)
}
