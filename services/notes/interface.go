package notes

import (
	"context"

	notesRepo "concierge/database/repository/notes"
	"concierge/models"
	ai "concierge/services/intelligence"

	"go.uber.org/zap"
)

// Failure kinds carried in note results so callers can tell a missing note
// from a duplicate or a broken backing store.
const (
	KindDuplicate    = "duplicate"
	KindNotFound     = "not_found"
	KindStorage      = "storage"
	KindInvalidInput = "invalid_input"
)

// Service is the meeting-note tool surface: add, similarity search, retrieve,
// truncate, and PDF ingestion.
type Service interface {
	Add(ctx context.Context, filename, content string) (*models.NoteAddResult, error)
	Search(ctx context.Context, query string, topK int) (*models.NoteSearchResult, error)
	Retrieve(ctx context.Context, filename string) (*models.NoteRetrieveResult, error)
	Truncate(ctx context.Context) (*models.NoteTruncateResult, error)
	IngestPDF(ctx context.Context, path string) (*models.NoteAddResult, error)
}

// DefaultService implements Service on a note repository and an embedder.
type DefaultService struct {
	Repo     notesRepo.Repository
	Embedder ai.Embedder
	Logger   *zap.Logger
}
