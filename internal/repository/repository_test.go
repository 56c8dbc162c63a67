package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap/zaptest"

	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

func scoreDoc() bson.M {
	return bson.M{"film_id": "f1", "user_id": "u1", "film_score": 7.0}
}

func TestInsertOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok devuelve id", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.InsertOne(context.Background(), "film_score", scoreDoc())
		require.NoError(mt.T, err)
		assert.NotEmpty(mt.T, id)
	})

	mt.Run("clave duplicada", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.InsertOne(context.Background(), "film_score", scoreDoc())
		assert.ErrorIs(mt.T, err, repository.ErrDuplicate)
	})

	mt.Run("otra falla se etiqueta como store", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "se rompió",
			Name:    "BadValue",
		}))

		_, err := repo.InsertOne(context.Background(), "film_score", scoreDoc())
		assert.ErrorIs(mt.T, err, repository.ErrStore)
		assert.NotErrorIs(mt.T, err, repository.ErrDuplicate)
	})
}

func TestFindOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("encontrado", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		ns := mt.DB.Name() + ".film_score"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "film_id", Value: "f1"},
			{Key: "user_id", Value: "u1"},
			{Key: "film_score", Value: 7.0},
		}))

		doc := repo.FindOne(context.Background(), "film_score", bson.M{"film_id": "f1", "user_id": "u1"})
		require.NotNil(mt.T, doc)
		assert.Equal(mt.T, "f1", doc["film_id"])
		assert.Equal(mt.T, 7.0, doc["film_score"])
	})

	mt.Run("sin match devuelve nil", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		ns := mt.DB.Name() + ".film_score"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		doc := repo.FindOne(context.Background(), "film_score", bson.M{"film_id": "nope"})
		assert.Nil(mt.T, doc)
	})

	mt.Run("falla degradada a nil", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "se rompió",
			Name:    "BadValue",
		}))

		doc := repo.FindOne(context.Background(), "film_score", bson.M{"film_id": "f1"})
		assert.Nil(mt.T, doc)
	})
}

func TestFindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("devuelve todos los matches", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		ns := mt.DB.Name() + ".film_reviews"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "film_id", Value: "f1"}, {Key: "user_id", Value: "u1"}},
			bson.D{{Key: "film_id", Value: "f1"}, {Key: "user_id", Value: "u2"}},
		))

		docs := repo.FindAll(context.Background(), "film_reviews", bson.M{"film_id": "f1"}, nil)
		assert.Len(mt.T, docs, 2)
	})

	mt.Run("falla degradada a vacío, nunca nil", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "se rompió",
			Name:    "BadValue",
		}))

		docs := repo.FindAll(context.Background(), "film_reviews", bson.M{"film_id": "f1"}, nil)
		require.NotNil(mt.T, docs)
		assert.Empty(mt.T, docs)
	})
}

func TestUpdateOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("devuelve el documento posterior", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value",
			Value: bson.D{
				{Key: "film_id", Value: "f1"},
				{Key: "user_id", Value: "u1"},
				{Key: "film_score", Value: 3.0},
			},
		}))

		doc := repo.UpdateOne(context.Background(), "film_score",
			bson.M{"film_id": "f1", "user_id": "u1"},
			bson.M{"film_score": 3.0})
		require.NotNil(mt.T, doc)
		assert.Equal(mt.T, 3.0, doc["film_score"])
	})

	mt.Run("sin match devuelve nil", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		doc := repo.UpdateOne(context.Background(), "film_score",
			bson.M{"film_id": "nope"}, bson.M{"film_score": 1.0})
		assert.Nil(mt.T, doc)
	})
}

func TestDeleteOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("cuenta los borrados", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		n := repo.DeleteOne(context.Background(), "film_bookmarks", bson.M{"film_id": "f1"})
		assert.Equal(mt.T, int64(1), n)
	})

	mt.Run("sin match cuenta cero", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		n := repo.DeleteOne(context.Background(), "film_bookmarks", bson.M{"film_id": "nope"})
		assert.Equal(mt.T, int64(0), n)
	})

	mt.Run("falla cuenta cero", func(mt *mtest.T) {
		repo := repository.New(mt.DB, zaptest.NewLogger(mt.T))
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "se rompió",
			Name:    "BadValue",
		}))

		n := repo.DeleteOne(context.Background(), "film_bookmarks", bson.M{"film_id": "f1"})
		assert.Equal(mt.T, int64(0), n)
	})
}

func TestPageSkip(t *testing.T) {
	assert.Equal(t, int64(0), repository.Page{Number: 1, Size: 50}.Skip())
	assert.Equal(t, int64(50), repository.Page{Number: 2, Size: 50}.Skip())
	assert.Equal(t, int64(6), repository.Page{Number: 3, Size: 3}.Skip())
	assert.Equal(t, int64(3), repository.Page{Number: 2, Size: 3}.Limit())
}
