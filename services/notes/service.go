package notes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	notesRepo "concierge/database/repository/notes"
	"concierge/models"
)

const defaultTopK = 5

func (s *DefaultService) log() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// Add stores a new note. Duplicate filenames are rejected without overwriting.
func (s *DefaultService) Add(ctx context.Context, filename, content string) (*models.NoteAddResult, error) {
	s.log().Info("Adding meeting note", zap.String("filename", filename))

	if strings.TrimSpace(filename) == "" {
		return &models.NoteAddResult{
			Success:  false,
			Filename: filename,
			Error:    "filename is required",
			Kind:     KindInvalidInput,
		}, nil
	}

	note := &models.Note{
		Filename:  filename,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	err := s.Repo.Add(ctx, note)
	if errors.Is(err, notesRepo.ErrDuplicateNote) {
		return &models.NoteAddResult{
			Success:  false,
			Filename: filename,
			Error:    fmt.Sprintf("note '%s' already exists", filename),
			Kind:     KindDuplicate,
		}, nil
	}
	if err != nil {
		return &models.NoteAddResult{
			Success:  false,
			Filename: filename,
			Error:    err.Error(),
			Kind:     KindStorage,
		}, nil
	}
	return &models.NoteAddResult{Success: true, Filename: filename}, nil
}

// Search ranks stored notes against the query by embedding cosine similarity,
// descending, ties broken by filename. Results below the relevance floor are
// dropped.
func (s *DefaultService) Search(ctx context.Context, query string, topK int) (*models.NoteSearchResult, error) {
	s.log().Info("Searching meeting notes", zap.String("query", query), zap.Int("top_k", topK))

	if topK <= 0 {
		topK = defaultTopK
	}

	all, err := s.Repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	if len(all) == 0 {
		return &models.NoteSearchResult{Success: true, Query: query, Results: []models.NoteMatch{}}, nil
	}

	queryVec, err := s.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	matches := make([]models.NoteMatch, 0, len(all))
	for _, note := range all {
		noteVec, err := s.Embedder.Embed(ctx, note.Content)
		if err != nil {
			return nil, fmt.Errorf("embed note %s: %w", note.Filename, err)
		}
		score := cosine(queryVec, noteVec)
		if score < relevanceFloor {
			continue
		}
		matches = append(matches, models.NoteMatch{
			Filename:  note.Filename,
			Content:   note.Content,
			Score:     score,
			CreatedAt: note.CreatedAt,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Filename < matches[j].Filename
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}

	return &models.NoteSearchResult{Success: true, Query: query, Results: matches}, nil
}

// Retrieve returns the stored content of one note.
func (s *DefaultService) Retrieve(ctx context.Context, filename string) (*models.NoteRetrieveResult, error) {
	s.log().Info("Retrieving meeting note", zap.String("filename", filename))

	note, err := s.Repo.Get(ctx, filename)
	if errors.Is(err, notesRepo.ErrNoteNotFound) {
		return &models.NoteRetrieveResult{
			Success:  false,
			Filename: filename,
			Error:    fmt.Sprintf("note '%s' not found", filename),
			Kind:     KindNotFound,
		}, nil
	}
	if err != nil {
		return &models.NoteRetrieveResult{
			Success:  false,
			Filename: filename,
			Error:    err.Error(),
			Kind:     KindStorage,
		}, nil
	}
	return &models.NoteRetrieveResult{
		Success:  true,
		Filename: note.Filename,
		Content:  note.Content,
	}, nil
}

// Truncate deletes every stored note.
func (s *DefaultService) Truncate(ctx context.Context) (*models.NoteTruncateResult, error) {
	s.log().Info("Truncating meeting notes")

	removed, err := s.Repo.Truncate(ctx)
	if err != nil {
		return nil, fmt.Errorf("truncate notes: %w", err)
	}
	return &models.NoteTruncateResult{Success: true, Removed: removed}, nil
}

// IngestPDF extracts the text of a PDF and stores it as a note keyed by the
// file's base name. A missing file, an unreadable PDF, and a filename
// collision are distinct failure kinds.
func (s *DefaultService) IngestPDF(ctx context.Context, path string) (*models.NoteAddResult, error) {
	filename := filepath.Base(path)
	s.log().Info("Ingesting PDF", zap.String("path", path))

	if _, err := os.Stat(path); err != nil {
		kind := KindStorage
		msg := fmt.Sprintf("cannot access '%s': %v", path, err)
		if os.IsNotExist(err) {
			kind = KindNotFound
			msg = fmt.Sprintf("file '%s' not found", path)
		}
		return &models.NoteAddResult{Success: false, Filename: filename, Error: msg, Kind: kind}, nil
	}

	content, err := extractPDFText(path)
	if err != nil {
		return &models.NoteAddResult{
			Success:  false,
			Filename: filename,
			Error:    fmt.Sprintf("cannot read PDF '%s': %v", path, err),
			Kind:     KindStorage,
		}, nil
	}

	return s.Add(ctx, filename, content)
}
