package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"net/url"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/placeshare/places-service/internal/application/places"
	"github.com/placeshare/places-service/internal/application/users"
	"github.com/placeshare/places-service/internal/config"
	cacheredis "github.com/placeshare/places-service/internal/infrastructure/caching/redis"
	"github.com/placeshare/places-service/internal/infrastructure/db/postgres"
	"github.com/placeshare/places-service/internal/infrastructure/geocoding"
	rabbitpub "github.com/placeshare/places-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/placeshare/places-service/internal/infrastructure/security"
	"github.com/placeshare/places-service/internal/infrastructure/storage"
	"github.com/placeshare/places-service/internal/logger"
	"github.com/placeshare/places-service/internal/transport/http/handlers"
	authmw "github.com/placeshare/places-service/internal/transport/http/middleware"
	"github.com/placeshare/places-service/internal/transport/http/router"
)

// sysClock implements places.Clock using system time.
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds all dependencies for the service.
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Cache     *cacheredis.Cache
	Publisher *rabbitpub.Publisher
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// reconfigure with the settings config actually carries
	logger.Apply(cfg.LogLevel, cfg.LogFormat)

	u, _ := url.Parse(cfg.DatabaseURL)
	zlog.Info().
		Str("db_user", u.User.Username()).
		Str("db_host", u.Host).
		Str("db_db", u.Path).
		Msg("db config loaded")

	db, err := postgres.NewDB(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			zlog.Fatal().Err(err).Msg("schema bootstrap failed")
		}
	}

	app := NewApp(cfg, db)
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
		if app.Cache != nil {
			_ = app.Cache.Close()
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	placeRepo := postgres.NewPlaceRepo(db)
	userRepo := postgres.NewUserRepo(db)

	var cache *cacheredis.Cache
	var placeCache places.Cache
	if cfg.RedisURL != "" {
		c, err := cacheredis.New(cfg.RedisURL)
		if err != nil {
			zlog.Fatal().Err(err).Msg("redis init failed")
		}
		cache = c
		placeCache = c
		zlog.Info().Msg("redis cache ready")
	} else {
		zlog.Warn().Msg("REDIS_URL empty: place reads are uncached")
	}

	var rabbit *rabbitpub.Publisher
	var pub places.EventPublisher = places.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	images, err := storage.NewS3Store(storage.S3Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Bucket:          cfg.S3Bucket,
		UsePathStyle:    cfg.S3UsePathStyle,
		CDNBaseURL:      cfg.CDNBaseURL,
	}, zlog.Logger)
	if err != nil {
		zlog.Fatal().Err(err).Msg("s3 store init failed")
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := images.EnsureBucket(ctx); err != nil {
			zlog.Warn().Err(err).Msg("bucket bootstrap failed")
		}
	}

	geo := geocoding.NewGoogle(cfg.GeocoderAPIKey, cfg.GeocoderBaseURL)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// 2) Application
	placeSvc := places.New(placeRepo, userRepo, geo, images, sysClock{}, pub, placeCache, cfg.CacheTTLPlace)
	userSvc := users.NewService(userRepo, hasher, signer, cfg.AccessTokenTTL)

	// 3) Transport
	ph := handlers.NewPlacesHandler(placeSvc, images, cfg.MaxUploadBytes)
	uh := handlers.NewUsersHandler(userSvc, images, cfg.MaxUploadBytes)
	auth := authmw.NewAuth(signer)
	z := handlers.NewHealthHandler()

	// 4) Router
	httpHandler := router.New(ph, uh, auth, z, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Cache:     cache,
		Publisher: rabbit,
	}
}
