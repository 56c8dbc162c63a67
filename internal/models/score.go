package models

import "go.mongodb.org/mongo-driver/bson"

// Puntuación suelta de un film (colección film_score); espejo del
// film_score embebido en la reseña del mismo par (film, user).
type Score struct {
	FilmID    string  `json:"film_id"`
	UserID    string  `json:"user_id"`
	FilmScore float64 `json:"film_score"`
}

func ScoreFromDoc(doc bson.M) Score {
	return Score{
		FilmID:    asString(doc["film_id"]),
		UserID:    asString(doc["user_id"]),
		FilmScore: asFloat64(doc["film_score"]),
	}
}

// ScoreValue lee solo el valor numérico del documento.
func ScoreValue(doc bson.M) float64 {
	return asFloat64(doc["film_score"])
}
