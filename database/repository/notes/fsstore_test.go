package notes

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"concierge/models"
)

func newTestFSRepo(t *testing.T) *FSRepo {
	t.Helper()
	repo, err := NewFSRepo(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return repo
}

func TestFSRepoAddGetRoundTrip(t *testing.T) {
	repo := newTestFSRepo(t)
	ctx := context.Background()

	note := &models.Note{Filename: "minutes.txt", Content: "hello", CreatedAt: time.Now()}
	if err := repo.Add(ctx, note); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := repo.Get(ctx, "minutes.txt")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Content != "hello" {
		t.Fatalf("unexpected content: %q", got.Content)
	}
}

func TestFSRepoDuplicateAdd(t *testing.T) {
	repo := newTestFSRepo(t)
	ctx := context.Background()

	if err := repo.Add(ctx, &models.Note{Filename: "x.txt", Content: "a"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	err := repo.Add(ctx, &models.Note{Filename: "x.txt", Content: "b"})
	if !errors.Is(err, ErrDuplicateNote) {
		t.Fatalf("expected ErrDuplicateNote, got %v", err)
	}

	got, err := repo.Get(ctx, "x.txt")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Content != "a" {
		t.Fatalf("duplicate add overwrote content: %q", got.Content)
	}
}

func TestFSRepoFlattensPathTraversal(t *testing.T) {
	repo := newTestFSRepo(t)
	ctx := context.Background()

	if err := repo.Add(ctx, &models.Note{Filename: "../../etc/evil.txt", Content: "x"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := repo.Get(ctx, "evil.txt"); err != nil {
		t.Fatalf("expected note stored under base name: %v", err)
	}
}

func TestFSRepoSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFSRepo(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := repo.Add(ctx, &models.Note{Filename: "persist.txt", Content: "kept"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	reopened, err := NewFSRepo(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	got, err := reopened.Get(ctx, "persist.txt")
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if got.Content != "kept" {
		t.Fatalf("unexpected content after reopen: %q", got.Content)
	}
}

func TestFSRepoTruncate(t *testing.T) {
	repo := newTestFSRepo(t)
	ctx := context.Background()

	repo.Add(ctx, &models.Note{Filename: "a.txt", Content: "1"})
	repo.Add(ctx, &models.Note{Filename: "b.txt", Content: "2"})

	removed, err := repo.Truncate(ctx)
	if err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("store not empty after truncate: %+v", all)
	}
	if _, err := repo.Get(ctx, "a.txt"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestConcurrentAddSameFilename(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = repo.Add(ctx, &models.Note{Filename: "same.txt", Content: "c"})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		switch {
		case err == nil:
			winners++
		case errors.Is(err, ErrDuplicateNote):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one successful add, got %d", winners)
	}
}
