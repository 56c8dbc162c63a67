package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/brivazz/ugc-sprint-2/docs" // swagger docs

	"github.com/brivazz/ugc-sprint-2/internal/cache"
	"github.com/brivazz/ugc-sprint-2/internal/config"
	"github.com/brivazz/ugc-sprint-2/internal/db"
	"github.com/brivazz/ugc-sprint-2/internal/handler"
	"github.com/brivazz/ugc-sprint-2/internal/repository"
	"github.com/brivazz/ugc-sprint-2/internal/service"
	"github.com/brivazz/ugc-sprint-2/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title UGC Films API
// @version 1.0
// @description Reseñas, puntuaciones y marcadores de films (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Debug); err != nil {
		log.Fatalf("[logger] error inicializando: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()

	// Mongo
	ctx := context.Background()
	client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zlog.Fatal("[mongo] error conectando", zap.Error(err))
	}
	defer db.Disconnect(context.Background(), client)
	zlog.Info("[mongo] conectado", zap.String("db", cfg.MongoDB))

	if err := db.EnsureIndexes(ctx, database); err != nil {
		zlog.Fatal("[mongo] error creando índices", zap.Error(err))
	}

	// Redis: si no está, el servicio arranca igual sin cache
	redisCache, err := cache.New(cfg.RedisAddr, cfg.RedisPass)
	if err != nil {
		zlog.Warn("[redis] no disponible, cache deshabilitado", zap.Error(err))
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// repositorio inyectado: nada de handles globales
	repo := repository.New(database, zlog)

	// services
	scoreSync := service.NewScoreSync(repo, redisCache, zlog)
	reviewSvc := service.NewReviewService(repo, scoreSync, zlog)
	scoreSvc := service.NewScoreService(repo, redisCache, time.Duration(cfg.AvgCacheTTL)*time.Second, zlog)
	bookmarkSvc := service.NewBookmarkService(repo, zlog)

	// handlers
	reviewH := handler.NewReviewHandler(reviewSvc)
	scoreH := handler.NewScoreHandler(scoreSvc)
	bookmarkH := handler.NewBookmarkHandler(bookmarkSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	authMw := handler.Auth(cfg.AuthURL)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/film_reviews", func(r chi.Router) {
			// lectura pública
			r.Get("/{film_id}", reviewH.GetFilmReviews)

			r.Group(func(r chi.Router) {
				r.Use(authMw)
				r.Post("/{film_id}", reviewH.AddReview)
				r.Patch("/{review_id}", reviewH.EditReview)
				r.Delete("/{review_id}", reviewH.DeleteReview)
			})
		})

		r.Route("/film_score", func(r chi.Router) {
			// lectura pública
			r.Get("/{film_id}", scoreH.GetAverage)

			r.Group(func(r chi.Router) {
				r.Use(authMw)
				r.Post("/", scoreH.AddScore)
				r.Delete("/{film_id}", scoreH.DeleteScore)
			})
		})

		r.Route("/film_bookmarks", func(r chi.Router) {
			r.Use(authMw)
			r.Get("/", bookmarkH.List)
			r.Post("/{film_id}", bookmarkH.Add)
			r.Delete("/{film_id}", bookmarkH.Remove)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	zlog.Info("HTTP escuchando", zap.String("port", cfg.HTTPPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, r); err != nil {
		zlog.Fatal("servidor http", zap.Error(err))
	}
}
