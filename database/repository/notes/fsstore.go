package notes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"concierge/models"
)

// FSRepo persists each note as one text file under dir, with an in-memory
// index rebuilt on open. Filenames are flattened to their base name so a note
// can never escape the store directory.
type FSRepo struct {
	dir   string
	mu    sync.Mutex
	index map[string]models.Note
}

// NewFSRepo opens (creating if needed) a filesystem note store rooted at dir.
func NewFSRepo(dir string) (*FSRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating notes dir: %w", err)
	}
	repo := &FSRepo{dir: dir, index: make(map[string]models.Note)}
	if err := repo.reload(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *FSRepo) reload() error {
	entries, err := os.ReadDir(repo.dir)
	if err != nil {
		return fmt.Errorf("error reading notes dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(repo.dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading note %s: %w", entry.Name(), err)
		}
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("error reading note metadata %s: %w", entry.Name(), err)
		}
		repo.index[entry.Name()] = models.Note{
			Filename:  entry.Name(),
			Content:   string(content),
			CreatedAt: info.ModTime(),
		}
	}
	return nil
}

func (repo *FSRepo) Add(ctx context.Context, note *models.Note) error {
	name := filepath.Base(strings.TrimSpace(note.Filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid note filename %q", note.Filename)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.index[name]; exists {
		return ErrDuplicateNote
	}

	// Write to a temp file first and rename, so a crash mid-write never
	// leaves a partial note behind.
	tmp, err := os.CreateTemp(repo.dir, ".note-*")
	if err != nil {
		return fmt.Errorf("error creating note file: %w", err)
	}
	if _, err := tmp.WriteString(note.Content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("error writing note file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error closing note file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(repo.dir, name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("error storing note file: %w", err)
	}

	stored := *note
	stored.Filename = name
	repo.index[name] = stored
	return nil
}

func (repo *FSRepo) Get(ctx context.Context, filename string) (*models.Note, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	note, ok := repo.index[filepath.Base(filename)]
	if !ok {
		return nil, ErrNoteNotFound
	}
	return &note, nil
}

func (repo *FSRepo) All(ctx context.Context) ([]models.Note, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	all := make([]models.Note, 0, len(repo.index))
	for _, note := range repo.index {
		all = append(all, note)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Filename < all[j].Filename })
	return all, nil
}

func (repo *FSRepo) Truncate(ctx context.Context) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	removed := 0
	for name := range repo.index {
		if err := os.Remove(filepath.Join(repo.dir, name)); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("error removing note %s: %w", name, err)
		}
		delete(repo.index, name)
		removed++
	}
	return removed, nil
}
