package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/brivazz/ugc-sprint-2/internal/cache"
)

// ScoreSync mantiene la colección film_score consistente con el
// film_score embebido en las reseñas. Las dos escrituras (reseña y
// puntuación) no son atómicas: si la segunda falla solo queda el log,
// la consistencia entre colecciones es eventual.
//
// Al borrar una reseña la puntuación asociada NO se borra: las
// puntuaciones sobreviven a sus reseñas.
type ScoreSync struct {
	store DocumentStore
	cache *cache.Cache
	log   *zap.Logger
}

func NewScoreSync(store DocumentStore, c *cache.Cache, log *zap.Logger) *ScoreSync {
	return &ScoreSync{store: store, cache: c, log: log}
}

// Sync alinea la entrada de film_score del par (film, user) con el
// valor embebido en la reseña: actualiza si ya existe, inserta si no.
func (s *ScoreSync) Sync(ctx context.Context, filmID, userID string, score float64) {
	query := pairQuery(filmID, userID)

	if existing := s.store.FindOne(ctx, scoresCollection, query); existing != nil {
		if updated := s.store.UpdateOne(ctx, scoresCollection, query, bson.M{"film_score": score}); updated == nil {
			s.log.Warn("no se pudo actualizar la puntuación espejo",
				zap.String("film_id", filmID),
				zap.String("user_id", userID))
		}
	} else {
		doc := bson.M{"film_id": filmID, "user_id": userID, "film_score": score}
		if _, err := s.store.InsertOne(ctx, scoresCollection, doc); err != nil {
			s.log.Warn("no se pudo insertar la puntuación espejo",
				zap.String("film_id", filmID),
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	s.InvalidateAverage(ctx, filmID)
}

// InvalidateAverage tira el promedio cacheado del film.
func (s *ScoreSync) InvalidateAverage(ctx context.Context, filmID string) {
	if err := s.cache.Del(ctx, averageKey(filmID)); err != nil {
		s.log.Warn("no se pudo invalidar el promedio cacheado",
			zap.String("film_id", filmID),
			zap.Error(err))
	}
}

func averageKey(filmID string) string {
	return fmt.Sprintf("film_score:avg:%s", filmID)
}
