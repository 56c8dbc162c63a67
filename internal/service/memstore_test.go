package service_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/brivazz/ugc-sprint-2/internal/repository"
)

// memStore implementa service.DocumentStore en memoria, con la misma
// semántica de paginación y de queries por igualdad que el repositorio
// real. Sirve para correr los escenarios completos sin Mongo.
type memStore struct {
	collections map[string][]bson.M
}

func newMemStore() *memStore {
	return &memStore{collections: make(map[string][]bson.M)}
}

func (m *memStore) InsertOne(_ context.Context, collection string, doc bson.M) (string, error) {
	d := cloneDoc(doc)
	oid := primitive.NewObjectID()
	d["_id"] = oid
	m.collections[collection] = append(m.collections[collection], d)
	return oid.Hex(), nil
}

func (m *memStore) FindOne(_ context.Context, collection string, query bson.M) bson.M {
	for _, doc := range m.collections[collection] {
		if matches(doc, query) {
			return cloneDoc(doc)
		}
	}
	return nil
}

func (m *memStore) FindAll(_ context.Context, collection string, query bson.M, page *repository.Page) []bson.M {
	matched := make([]bson.M, 0)
	for _, doc := range m.collections[collection] {
		if matches(doc, query) {
			matched = append(matched, cloneDoc(doc))
		}
	}

	if page == nil {
		return matched
	}

	skip := int(page.Skip())
	if skip >= len(matched) {
		return []bson.M{}
	}
	end := skip + page.Size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end]
}

func (m *memStore) UpdateOne(_ context.Context, collection string, query, fields bson.M) bson.M {
	for _, doc := range m.collections[collection] {
		if matches(doc, query) {
			for k, v := range fields {
				doc[k] = v
			}
			return cloneDoc(doc)
		}
	}
	return nil
}

func (m *memStore) DeleteOne(_ context.Context, collection string, query bson.M) int64 {
	docs := m.collections[collection]
	for i, doc := range docs {
		if matches(doc, query) {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1
		}
	}
	return 0
}

// count es un helper de aserción: cuántos documentos matchean.
func (m *memStore) count(collection string, query bson.M) int {
	n := 0
	for _, doc := range m.collections[collection] {
		if matches(doc, query) {
			n++
		}
	}
	return n
}

func matches(doc, query bson.M) bool {
	for k, v := range query {
		if doc[k] != v {
			return false
		}
	}
	return true
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
