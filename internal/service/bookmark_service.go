package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/brivazz/ugc-sprint-2/internal/models"
	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

// BookmarkService maneja los marcadores de films por usuario.
type BookmarkService struct {
	store DocumentStore
	log   *zap.Logger
}

func NewBookmarkService(store DocumentStore, log *zap.Logger) *BookmarkService {
	return &BookmarkService{store: store, log: log}
}

// Add agrega un film a los marcadores del usuario. El par
// (film, user) es único: si ya existe devuelve ErrAlreadyExists.
func (s *BookmarkService) Add(ctx context.Context, filmID, userID string) error {
	if existing := s.store.FindOne(ctx, bookmarksCollection, pairQuery(filmID, userID)); existing != nil {
		return ErrAlreadyExists
	}

	doc := bson.M{
		"film_id":    filmID,
		"user_id":    userID,
		"created_at": time.Now().UTC(),
	}
	if _, err := s.store.InsertOne(ctx, bookmarksCollection, doc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

// List devuelve los ids de films marcados por el usuario.
// Sin marcadores devuelve ErrNotFound.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]models.Bookmark, error) {
	docs := s.store.FindAll(ctx, bookmarksCollection, bson.M{"user_id": userID}, nil)
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	out := make([]models.Bookmark, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.BookmarkFromDoc(doc))
	}
	return out, nil
}

// Remove saca el film de los marcadores del usuario.
func (s *BookmarkService) Remove(ctx context.Context, filmID, userID string) error {
	if n := s.store.DeleteOne(ctx, bookmarksCollection, pairQuery(filmID, userID)); n == 0 {
		return ErrNotFound
	}
	return nil
}
