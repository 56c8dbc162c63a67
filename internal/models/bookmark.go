package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Marcador de un film para un usuario (colección film_bookmarks).
type Bookmark struct {
	FilmID    string    `json:"film_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func BookmarkFromDoc(doc bson.M) Bookmark {
	return Bookmark{
		FilmID:    asString(doc["film_id"]),
		UserID:    asString(doc["user_id"]),
		CreatedAt: asTime(doc["created_at"]),
	}
}
