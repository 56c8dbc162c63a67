package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap/zaptest"

	"github.com/brivazz/ugc-sprint-2/internal/repository"
	"github.com/brivazz/ugc-sprint-2/internal/service"
)

// MockStore es un mock de service.DocumentStore para los caminos de
// error que el memStore no simula.
type MockStore struct {
	mock.Mock
}

var _ service.DocumentStore = (*MockStore)(nil)

func (m *MockStore) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) FindOne(ctx context.Context, collection string, query bson.M) bson.M {
	args := m.Called(ctx, collection, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(bson.M)
}

func (m *MockStore) FindAll(ctx context.Context, collection string, query bson.M, page *repository.Page) []bson.M {
	args := m.Called(ctx, collection, query, page)
	return args.Get(0).([]bson.M)
}

func (m *MockStore) UpdateOne(ctx context.Context, collection string, query, fields bson.M) bson.M {
	args := m.Called(ctx, collection, query, fields)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(bson.M)
}

func (m *MockStore) DeleteOne(ctx context.Context, collection string, query bson.M) int64 {
	args := m.Called(ctx, collection, query)
	return args.Get(0).(int64)
}

// Un índice único en la base también produce el resultado "ya existe",
// aunque la búsqueda previa no haya visto nada (carrera entre requests).
func TestBookmarkDuplicadoPorIndice(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	log := zaptest.NewLogger(t)

	store.On("FindOne", mock.Anything, "film_bookmarks", mock.Anything).Return(nil)
	store.On("InsertOne", mock.Anything, "film_bookmarks", mock.Anything).
		Return("", repository.ErrDuplicate)

	bookmarks := service.NewBookmarkService(store, log)
	assert.ErrorIs(t, bookmarks.Add(ctx, filmF1, userU1), service.ErrAlreadyExists)
	store.AssertExpectations(t)
}

func TestReviewAddFallaDelStore(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	log := zaptest.NewLogger(t)

	store.On("InsertOne", mock.Anything, "film_reviews", mock.Anything).
		Return("", repository.ErrStore)

	reviews := service.NewReviewService(store, service.NewScoreSync(store, nil, log), log)
	_, err := reviews.Add(ctx, filmF1, userU1, "texto", 5, time.Now())
	assert.ErrorIs(t, err, repository.ErrStore)

	// con el insert caído no se intenta sincronizar la puntuación
	store.AssertNotCalled(t, "FindOne", mock.Anything, "film_score", mock.Anything)
}

// La falla en la segunda escritura (film_score) no voltea la operación:
// la reseña ya quedó, la consistencia entre colecciones es eventual.
func TestSyncSegundaEscrituraFalla(t *testing.T) {
	ctx := context.Background()
	store := new(MockStore)
	log := zaptest.NewLogger(t)

	store.On("InsertOne", mock.Anything, "film_reviews", mock.Anything).
		Return("66f0c2a1b3e4d5a6f7081920", nil)
	store.On("FindOne", mock.Anything, "film_score", mock.Anything).Return(nil)
	store.On("InsertOne", mock.Anything, "film_score", mock.Anything).
		Return("", repository.ErrStore)

	reviews := service.NewReviewService(store, service.NewScoreSync(store, nil, log), log)
	id, err := reviews.Add(ctx, filmF1, userU1, "texto", 5, time.Now())
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	store.AssertExpectations(t)
}
