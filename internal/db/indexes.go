package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes crea el índice (film_id, user_id) en cada colección.
// Los índices NO son únicos: la unicidad por par la chequean los
// servicios con una búsqueda previa al insert.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	collections := []string{"film_bookmarks", "film_reviews", "film_score"}

	for _, name := range collections {
		idx := mongo.IndexModel{
			Keys: bson.D{{Key: "film_id", Value: 1}, {Key: "user_id", Value: 1}},
		}
		if _, err := database.Collection(name).Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("error creando índice en %s: %w", name, err)
		}
	}
	return nil
}
