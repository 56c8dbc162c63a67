package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

// Nombres de las colecciones que usan los servicios.
const (
	reviewsCollection   = "film_reviews"
	scoresCollection    = "film_score"
	bookmarksCollection = "film_bookmarks"
)

var (
	// ErrNotFound: la operación no matcheó ninguna entrada.
	ErrNotFound = errors.New("entry not found")
	// ErrAlreadyExists: ya hay una entrada para ese par (film, user).
	ErrAlreadyExists = errors.New("entry already exists")
)

// DocumentStore es el conjunto de capacidades que los servicios
// necesitan del repositorio. Ningún servicio toca el cliente de
// Mongo directamente.
type DocumentStore interface {
	InsertOne(ctx context.Context, collection string, doc bson.M) (string, error)
	FindOne(ctx context.Context, collection string, query bson.M) bson.M
	FindAll(ctx context.Context, collection string, query bson.M, page *repository.Page) []bson.M
	UpdateOne(ctx context.Context, collection string, query, fields bson.M) bson.M
	DeleteOne(ctx context.Context, collection string, query bson.M) int64
}

func pairQuery(filmID, userID string) bson.M {
	return bson.M{"film_id": filmID, "user_id": userID}
}
