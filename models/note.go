package models

import "time"

// Note is a stored text artifact (raw text or PDF-extracted), keyed by filename.
type Note struct {
	Filename  string    `bson:"filename" json:"filename"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NoteMatch is a single similarity-search hit.
type NoteMatch struct {
	Filename  string    `json:"filename"`
	Content   string    `json:"content"`
	Score     float64   `json:"similarity"` // in [0,1]
	CreatedAt time.Time `json:"created_at"`
}
