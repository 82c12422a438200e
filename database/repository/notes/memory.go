package notes

import (
	"context"
	"sort"
	"sync"

	"concierge/models"
)

// MemoryRepo is an in-process note store used by tests and ephemeral runs.
type MemoryRepo struct {
	mu    sync.Mutex
	index map[string]models.Note
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{index: make(map[string]models.Note)}
}

func (repo *MemoryRepo) Add(ctx context.Context, note *models.Note) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.index[note.Filename]; exists {
		return ErrDuplicateNote
	}
	repo.index[note.Filename] = *note
	return nil
}

func (repo *MemoryRepo) Get(ctx context.Context, filename string) (*models.Note, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	note, ok := repo.index[filename]
	if !ok {
		return nil, ErrNoteNotFound
	}
	return &note, nil
}

func (repo *MemoryRepo) All(ctx context.Context) ([]models.Note, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all := make([]models.Note, 0, len(repo.index))
	for _, note := range repo.index {
		all = append(all, note)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Filename < all[j].Filename })
	return all, nil
}

func (repo *MemoryRepo) Truncate(ctx context.Context) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := len(repo.index)
	repo.index = make(map[string]models.Note)
	return removed, nil
}
