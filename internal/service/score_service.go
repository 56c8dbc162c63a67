package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/brivazz/ugc-sprint-2/internal/cache"
	"github.com/brivazz/ugc-sprint-2/internal/models"
	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

// ScoreService maneja las puntuaciones sueltas y el promedio por film.
type ScoreService struct {
	store  DocumentStore
	cache  *cache.Cache
	avgTTL time.Duration
	log    *zap.Logger
}

func NewScoreService(store DocumentStore, c *cache.Cache, avgTTL time.Duration, log *zap.Logger) *ScoreService {
	return &ScoreService{store: store, cache: c, avgTTL: avgTTL, log: log}
}

// GetAverage calcula la puntuación promedio del film sobre todos los
// documentos de film_score. Sin puntuaciones devuelve ErrNotFound
// (nadie puntuó todavía), nunca 0. El resultado se cachea con TTL.
func (s *ScoreService) GetAverage(ctx context.Context, filmID string) (float64, error) {
	key := averageKey(filmID)

	var cached float64
	if ok, err := s.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	docs := s.store.FindAll(ctx, scoresCollection, bson.M{"film_id": filmID}, nil)
	if len(docs) == 0 {
		return 0, ErrNotFound
	}

	var total float64
	for _, doc := range docs {
		total += models.ScoreValue(doc)
	}
	avg := total / float64(len(docs))

	if err := s.cache.SetJSON(ctx, key, avg, s.avgTTL); err != nil {
		s.log.Warn("no se pudo cachear el promedio",
			zap.String("film_id", filmID),
			zap.Error(err))
	}
	return avg, nil
}

// Add registra la puntuación del usuario para el film. El par
// (film, user) es único: si ya puntuó devuelve ErrAlreadyExists.
func (s *ScoreService) Add(ctx context.Context, filmID, userID string, filmScore float64) error {
	if existing := s.store.FindOne(ctx, scoresCollection, pairQuery(filmID, userID)); existing != nil {
		return ErrAlreadyExists
	}

	doc := bson.M{
		"film_id":    filmID,
		"user_id":    userID,
		"film_score": filmScore,
	}
	if _, err := s.store.InsertOne(ctx, scoresCollection, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return err
	}

	s.invalidate(ctx, filmID)
	return nil
}

// Delete saca la puntuación del usuario para el film.
func (s *ScoreService) Delete(ctx context.Context, filmID, userID string) error {
	if n := s.store.DeleteOne(ctx, scoresCollection, pairQuery(filmID, userID)); n == 0 {
		return ErrNotFound
	}
	s.invalidate(ctx, filmID)
	return nil
}

func (s *ScoreService) invalidate(ctx context.Context, filmID string) {
	if err := s.cache.Del(ctx, averageKey(filmID)); err != nil {
		s.log.Warn("no se pudo invalidar el promedio cacheado",
			zap.String("film_id", filmID),
			zap.Error(err))
	}
}
