package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mzw111/Streamix/internal/api/handler"
	"github.com/mzw111/Streamix/internal/api/middleware"
	"github.com/mzw111/Streamix/internal/auth"
	"github.com/mzw111/Streamix/internal/config"
	"github.com/mzw111/Streamix/internal/infrastructure/cache"
	"github.com/mzw111/Streamix/internal/infrastructure/postgres"
	"github.com/mzw111/Streamix/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	redisClient, err := cache.NewClient(ctx, cache.ClientConfig{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Repositories
	pool := db.Pool()
	accountRepo := postgres.NewAccountRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	watchlistRepo := postgres.NewWatchlistRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)

	// Services
	tokens := auth.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	ownership := usecase.NewOwnershipVerifier(profileRepo, subscriptionRepo, historyRepo)

	authSvc := usecase.NewAuthService(accountRepo, tokens, hasher)
	profileSvc := usecase.NewProfileService(profileRepo)
	activitySvc := usecase.NewActivityService(ownership, watchlistRepo, ratingRepo, historyRepo)
	billingSvc := usecase.NewBillingService(ownership, subscriptionRepo, paymentRepo)

	catalogCache := cache.NewRedisCatalogCache(redisClient)
	catalogSvc := usecase.NewCachedCatalogService(
		usecase.NewCatalogService(catalogRepo),
		catalogCache,
		usecase.CachedCatalogServiceConfig{CacheTTL: cfg.Redis.CacheTTL},
	)

	r := setupRouter(logger, tokens, routerDeps{
		auth:         handler.NewAuthHandler(authSvc),
		account:      handler.NewAccountHandler(authSvc),
		profile:      handler.NewProfileHandler(profileSvc),
		watchlist:    handler.NewWatchlistHandler(activitySvc),
		rating:       handler.NewRatingHandler(activitySvc),
		history:      handler.NewHistoryHandler(activitySvc),
		subscription: handler.NewSubscriptionHandler(billingSvc),
		payment:      handler.NewPaymentHandler(billingSvc),
		catalog:      handler.NewCatalogHandler(catalogSvc),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type routerDeps struct {
	auth         *handler.AuthHandler
	account      *handler.AccountHandler
	profile      *handler.ProfileHandler
	watchlist    *handler.WatchlistHandler
	rating       *handler.RatingHandler
	history      *handler.HistoryHandler
	subscription *handler.SubscriptionHandler
	payment      *handler.PaymentHandler
	catalog      *handler.CatalogHandler
}

func setupRouter(logger *slog.Logger, tokens middleware.TokenVerifier, deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/user/signup", deps.auth.Signup)
		r.Post("/user/login", deps.auth.Login)
		r.Post("/user/logout", deps.auth.Logout)

		r.Get("/movies", deps.catalog.ListMovies)
		r.Get("/movies/{id}", deps.catalog.GetMovie)
		r.Get("/movies/genre/{genreName}", deps.catalog.ListMoviesByGenre)
		r.Get("/tv-shows", deps.catalog.ListTVShows)
		r.Get("/tv-shows/{id}", deps.catalog.GetTVShow)
		r.Get("/tv-shows/genre/{genreName}", deps.catalog.ListTVShowsByGenre)
		r.Get("/genres", deps.catalog.ListGenres)
		r.Get("/genres/{id}", deps.catalog.GetGenre)
		r.Get("/home", deps.catalog.Home)

		r.Get("/ratings/{contentType}/{contentID}", deps.rating.ListByContent)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Get("/users/profile", deps.account.Get)
			r.Put("/users/update", deps.account.Update)
			r.Put("/users/change-password", deps.account.ChangePassword)

			r.Post("/profiles/create", deps.profile.Create)
			r.Get("/profiles/list", deps.profile.List)
			r.Delete("/profiles/delete/{id}", deps.profile.Delete)

			r.Post("/watchlist/add", deps.watchlist.Add)
			r.Delete("/watchlist/remove", deps.watchlist.Remove)
			r.Get("/watchlist/{profileID}", deps.watchlist.List)

			r.Post("/ratings/add", deps.rating.Add)
			r.Get("/ratings/profile/{profileID}", deps.rating.ListByProfile)

			r.Post("/history/log", deps.history.Log)
			r.Get("/history/{profileID}", deps.history.List)
			r.Delete("/history/delete/{historyID}", deps.history.Delete)

			r.Post("/subscriptions/create", deps.subscription.Create)
			r.Get("/subscriptions/list", deps.subscription.List)
			r.Get("/subscriptions/status", deps.subscription.Status)

			r.Post("/payments/create", deps.payment.Create)
			r.Get("/payments/subscription/{subscriptionID}", deps.payment.ListBySubscription)
			r.Get("/payments/history", deps.payment.History)
		})
	})

	return r
}
