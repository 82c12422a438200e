package notes

import "errors"

var (
	// ErrDuplicateNote indicates the filename is already stored.
	ErrDuplicateNote = errors.New("note already exists")

	// ErrNoteNotFound indicates no note is stored under the filename.
	ErrNoteNotFound = errors.New("note not found")
)
