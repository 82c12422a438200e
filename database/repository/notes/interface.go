package notes

import (
	"context"

	"concierge/models"
)

// Repository is a content store for meeting notes keyed by filename.
// Filenames are unique; Add never overwrites.
type Repository interface {
	// Add inserts a note. Returns ErrDuplicateNote if the filename is taken.
	Add(ctx context.Context, note *models.Note) error

	// Get returns the note with the given filename, or ErrNoteNotFound.
	Get(ctx context.Context, filename string) (*models.Note, error)

	// All returns every stored note, sorted by filename.
	All(ctx context.Context) ([]models.Note, error)

	// Truncate deletes all notes and reports how many were removed.
	Truncate(ctx context.Context) (int, error)
}
