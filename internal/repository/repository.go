package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	// ErrDuplicate: la base reportó conflicto de unicidad en un insert.
	ErrDuplicate = errors.New("duplicate entry")
	// ErrStore: cualquier otra falla de la base (red, serialización, etc).
	ErrStore = errors.New("store fault")
)

// Page describe una ventana de paginación: skip = (Number-1)*Size.
type Page struct {
	Number int
	Size   int
}

func (p Page) Skip() int64  { return int64((p.Number - 1) * p.Size) }
func (p Page) Limit() int64 { return int64(p.Size) }

// Repository expone CRUD genérico sobre colecciones por nombre.
// Los documentos son bson.M sin esquema; las queries son mapas de
// igualdad campo->valor. Salvo el insert, ninguna operación propaga
// errores de la base: las fallas se loguean y degradan a nil/vacío
// para que el path del request nunca se caiga por un problema
// transitorio del store.
type Repository struct {
	db  *mongo.Database
	log *zap.Logger
}

func New(database *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{db: database, log: log}
}

// InsertOne agrega un documento y devuelve su id generado.
// Es la única operación con resultado de error etiquetado:
// ErrDuplicate en conflicto de unicidad, ErrStore en el resto.
func (r *Repository) InsertOne(ctx context.Context, collection string, doc bson.M) (string, error) {
	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warn("documento duplicado",
				zap.String("collection", collection),
				zap.String("op", "insert_one"))
			return "", ErrDuplicate
		}
		r.log.Error("error insertando documento",
			zap.String("collection", collection),
			zap.String("op", "insert_one"),
			zap.Error(err))
		return "", fmt.Errorf("%w: insert_one en %s: %v", ErrStore, collection, err)
	}

	id := ""
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	r.log.Info("documento insertado",
		zap.String("collection", collection),
		zap.String("id", id))
	return id, nil
}

// FindOne devuelve el primer documento que matchea la query, o nil si
// no hay match. Una falla de la base también devuelve nil (logueada).
func (r *Repository) FindOne(ctx context.Context, collection string, query bson.M) bson.M {
	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, query).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		r.log.Error("error buscando documento",
			zap.String("collection", collection),
			zap.String("op", "find_one"),
			zap.Error(err))
		return nil
	}
	return doc
}

// FindAll devuelve todos los documentos que matchean la query, en el
// orden natural del store. Con page != nil aplica skip/limit. Nunca
// devuelve nil: sin matches o con falla devuelve slice vacío.
func (r *Repository) FindAll(ctx context.Context, collection string, query bson.M, page *Page) []bson.M {
	opts := options.Find()
	if page != nil {
		opts.SetSkip(page.Skip()).SetLimit(page.Limit())
	}

	cur, err := r.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		r.log.Error("error buscando documentos",
			zap.String("collection", collection),
			zap.String("op", "find_all"),
			zap.Error(err))
		return []bson.M{}
	}
	defer cur.Close(ctx)

	out := make([]bson.M, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			r.log.Error("error decodificando documento",
				zap.String("collection", collection),
				zap.String("op", "find_all"),
				zap.Error(err))
			return []bson.M{}
		}
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		r.log.Error("error iterando cursor",
			zap.String("collection", collection),
			zap.String("op", "find_all"),
			zap.Error(err))
		return []bson.M{}
	}

	r.log.Info("documentos encontrados",
		zap.String("collection", collection),
		zap.Int("count", len(out)))
	return out
}

// UpdateOne mergea `fields` ($set) en el primer documento que matchea
// y devuelve el documento posterior al update, o nil si no hubo match
// o si la base falló.
func (r *Repository) UpdateOne(ctx context.Context, collection string, query, fields bson.M) bson.M {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc bson.M
	err := r.db.Collection(collection).
		FindOneAndUpdate(ctx, query, bson.M{"$set": fields}, opts).
		Decode(&doc)
	if err == mongo.ErrNoDocuments {
		r.log.Warn("ningún documento matchea la query",
			zap.String("collection", collection),
			zap.String("op", "update_one"))
		return nil
	}
	if err != nil {
		r.log.Error("error actualizando documento",
			zap.String("collection", collection),
			zap.String("op", "update_one"),
			zap.Error(err))
		return nil
	}

	r.log.Info("documento actualizado", zap.String("collection", collection))
	return doc
}

// DeleteOne borra a lo sumo un documento y devuelve cuántos borró
// (0 o 1). Una falla de la base cuenta como 0.
func (r *Repository) DeleteOne(ctx context.Context, collection string, query bson.M) int64 {
	res, err := r.db.Collection(collection).DeleteOne(ctx, query)
	if err != nil {
		r.log.Error("error borrando documento",
			zap.String("collection", collection),
			zap.String("op", "delete_one"),
			zap.Error(err))
		return 0
	}
	if res.DeletedCount > 0 {
		r.log.Info("documento borrado", zap.String("collection", collection))
	}
	return res.DeletedCount
}
