package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/brivazz/ugc-sprint-2/internal/models"
	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

// ReviewService maneja las reseñas de films y delega en ScoreSync
// cada vez que se toca el film_score embebido.
type ReviewService struct {
	store DocumentStore
	sync  *ScoreSync
	log   *zap.Logger
}

func NewReviewService(store DocumentStore, sync *ScoreSync, log *zap.Logger) *ReviewService {
	return &ReviewService{store: store, sync: sync, log: log}
}

// Add inserta una reseña con su puntuación embebida y sincroniza la
// entrada espejo en film_score. Devuelve el id de la reseña creada.
func (s *ReviewService) Add(ctx context.Context, filmID, userID, reviewText string, filmScore float64, createdAt time.Time) (string, error) {
	doc := bson.M{
		"film_id":     filmID,
		"user_id":     userID,
		"review_text": reviewText,
		"film_score":  filmScore,
		"created_at":  createdAt.UTC(),
		"updated_at":  time.Now().UTC(),
	}

	id, err := s.store.InsertOne(ctx, reviewsCollection, doc)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrAlreadyExists
		}
		return "", err
	}

	s.sync.Sync(ctx, filmID, userID, filmScore)
	return id, nil
}

// Get devuelve una página de reseñas del film, en el orden natural
// del store. Sin reseñas devuelve ErrNotFound.
func (s *ReviewService) Get(ctx context.Context, filmID string, page repository.Page) ([]models.Review, error) {
	docs := s.store.FindAll(ctx, reviewsCollection, bson.M{"film_id": filmID}, &page)
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	out := make([]models.Review, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.ReviewFromDoc(doc))
	}
	return out, nil
}

// Update aplica solo los campos provistos sobre la reseña del usuario.
// updated_at se toca únicamente si algo cambió; con ambos campos en
// nil la reseña vuelve intacta. Si vino puntuación nueva se sincroniza
// la entrada espejo en film_score.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID string, newText *string, newScore *float64) (*models.Review, error) {
	oid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return nil, ErrNotFound
	}
	query := bson.M{"_id": oid, "user_id": userID}

	existing := s.store.FindOne(ctx, reviewsCollection, query)
	if existing == nil {
		return nil, ErrNotFound
	}

	fields := bson.M{}
	if newText != nil {
		fields["review_text"] = *newText
	}
	if newScore != nil {
		fields["film_score"] = *newScore
	}
	if len(fields) == 0 {
		review := models.ReviewFromDoc(existing)
		return &review, nil
	}
	fields["updated_at"] = time.Now().UTC()

	updated := s.store.UpdateOne(ctx, reviewsCollection, query, fields)
	if updated == nil {
		return nil, ErrNotFound
	}

	if newScore != nil {
		review := models.ReviewFromDoc(existing)
		s.sync.Sync(ctx, review.FilmID, review.UserID, *newScore)
	}

	review := models.ReviewFromDoc(updated)
	return &review, nil
}

// Delete borra la reseña por id y dueño y devuelve cuántas borró.
// La entrada espejo en film_score se conserva.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return 0, ErrNotFound
	}

	n := s.store.DeleteOne(ctx, reviewsCollection, bson.M{"_id": oid, "user_id": userID})
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}
