package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"silva_storefront/internal/api"
	"silva_storefront/internal/cache"
	"silva_storefront/internal/catalog"
	"silva_storefront/internal/config"
	"silva_storefront/internal/handlers"
	"silva_storefront/internal/logger"
	"silva_storefront/internal/middleware"
	"silva_storefront/internal/routes"
	"silva_storefront/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	memoryCacheSize   = 1024
	janitorInterval   = time.Minute
	shutdownGraceTime = 10 * time.Second
)

func main() {
	cfg, envLoaded := config.Load("")

	log, err := logger.New(logger.Options{Service: "silva-storefront", Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if !envLoaded {
		log.Info("⚠️ Aucun fichier .env trouvé, lecture de l'environnement uniquement")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration invalide", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := connectStore(ctx, cfg, log)
	defer store.Close()

	client, err := api.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.UpstreamTimeout}, log.Named("api"))
	if err != nil {
		log.Fatal("❌ Client backend invalide", zap.Error(err))
	}
	log.Info("✅ Backend configuré", zap.String("api_url", cfg.APIURL))

	sessions := session.NewManager(cfg.SessionTTL, log.Named("session"))
	go sessions.Run(ctx, janitorInterval)

	cookies := middleware.NewCookieStore(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	h := handlers.New(handlers.Deps{
		API:            client,
		Catalog:        catalog.NewService(client, store, cfg.CatalogCacheTTL, log.Named("catalog")),
		Sessions:       sessions,
		Cookies:        cookies,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.CORSAllowOrigins,
		Logger:         log,
	})

	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, h, routes.Options{
		Cookies:        cookies,
		Sessions:       sessions,
		Store:          store,
		AllowedOrigins: cfg.CORSAllowOrigins,
		CartRateLimit:  cfg.CartRateLimit,
		Logger:         log.Named("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 Storefront lancé", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Serveur arrêté", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Arrêt en cours")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceTime)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("❌ Arrêt forcé", zap.Error(err))
	}
}

// connectStore utilise Redis si REDIS_HOST est défini, sinon un cache en mémoire
func connectStore(ctx context.Context, cfg config.Config, log *zap.Logger) cache.Store {
	maxTTL := max(cfg.CatalogCacheTTL, middleware.CartWindow)

	if cfg.RedisHost == "" {
		log.Info("⚠️ REDIS_HOST absent, cache en mémoire")
		return cache.NewMemoryStore(memoryCacheSize, maxTTL)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := cache.NewRedisStore(pingCtx, cfg.RedisHost, cfg.RedisPassword)
	if err != nil {
		log.Warn("⚠️ Redis injoignable, cache en mémoire", zap.String("addr", cfg.RedisHost), zap.Error(err))
		return cache.NewMemoryStore(memoryCacheSize, maxTTL)
	}
	log.Info("✅ Connecté à Redis", zap.String("addr", cfg.RedisHost))
	return store
}
