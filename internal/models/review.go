package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lo que está en Mongo (colección film_reviews)
// más el _id expuesto como review_id.
type Review struct {
	ReviewID   string    `json:"review_id"`
	FilmID     string    `json:"film_id"`
	UserID     string    `json:"user_id"`
	ReviewText string    `json:"review_text"`
	FilmScore  float64   `json:"film_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewFromDoc arma una Review desde el documento crudo.
func ReviewFromDoc(doc bson.M) Review {
	return Review{
		ReviewID:   asObjectIDHex(doc["_id"]),
		FilmID:     asString(doc["film_id"]),
		UserID:     asString(doc["user_id"]),
		ReviewText: asString(doc["review_text"]),
		FilmScore:  asFloat64(doc["film_score"]),
		CreatedAt:  asTime(doc["created_at"]),
		UpdatedAt:  asTime(doc["updated_at"]),
	}
}

// helpers de casteo seguro
func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asObjectIDHex(v any) string {
	switch x := v.(type) {
	case primitive.ObjectID:
		return x.Hex()
	case string:
		return x
	default:
		return ""
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func asTime(v any) time.Time {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time().UTC()
	case time.Time:
		return x.UTC()
	default:
		return time.Time{}
	}
}
