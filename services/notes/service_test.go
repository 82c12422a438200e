package notes

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"

	notesRepo "concierge/database/repository/notes"
	ai "concierge/services/intelligence"
)

func testService() *DefaultService {
	return &DefaultService{
		Repo:     notesRepo.NewMemoryRepo(),
		Embedder: ai.NewLexicalEmbedder(),
		Logger:   zap.NewNop(),
	}
}

func TestAddRejectsDuplicateWithoutOverwrite(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	first, err := svc.Add(ctx, "x.txt", "a")
	if err != nil || !first.Success {
		t.Fatalf("first add failed: %v %+v", err, first)
	}

	second, err := svc.Add(ctx, "x.txt", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Success {
		t.Fatal("duplicate add must fail")
	}
	if second.Kind != KindDuplicate {
		t.Fatalf("expected duplicate kind, got %q", second.Kind)
	}

	got, err := svc.Retrieve(ctx, "x.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Content != "a" {
		t.Fatalf("original content overwritten: %q", got.Content)
	}
}

func TestAddRequiresFilename(t *testing.T) {
	svc := testService()

	result, err := svc.Add(context.Background(), "  ", "content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Kind != KindInvalidInput {
		t.Fatalf("expected invalid_input failure, got %+v", result)
	}
}

func TestRetrieveNotFound(t *testing.T) {
	svc := testService()

	result, err := svc.Retrieve(context.Background(), "missing.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success || result.Kind != KindNotFound {
		t.Fatalf("expected not_found failure, got %+v", result)
	}
}

func TestSearchRanksByRelevance(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	svc.Add(ctx, "budget.txt", "quarterly budget planning meeting notes")
	svc.Add(ctx, "kitchen.txt", "kitchen renovation supplies checklist")
	svc.Add(ctx, "standup.txt", "daily standup quick sync")

	result, err := svc.Search(ctx, "budget planning meeting", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || len(result.Results) == 0 {
		t.Fatalf("expected results, got %+v", result)
	}
	if result.Results[0].Filename != "budget.txt" {
		t.Fatalf("expected budget.txt first, got %q", result.Results[0].Filename)
	}
	for _, match := range result.Results {
		if match.Score < 0 || match.Score > 1 {
			t.Fatalf("score out of range: %+v", match)
		}
	}
	for i := 1; i < len(result.Results); i++ {
		if result.Results[i-1].Score < result.Results[i].Score {
			t.Fatalf("results not sorted descending: %+v", result.Results)
		}
	}
}

func TestSearchDeterministic(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	svc.Add(ctx, "a.txt", "alpha bravo charlie")
	svc.Add(ctx, "b.txt", "alpha bravo delta")

	first, err := svc.Search(ctx, "alpha bravo", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Search(ctx, "alpha bravo", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Fatalf("same store and query gave different results:\n%+v\n%+v", first.Results, second.Results)
	}
}

func TestSearchHonorsTopK(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	svc.Add(ctx, "one.txt", "shared topic keyword")
	svc.Add(ctx, "two.txt", "shared topic keyword again")
	svc.Add(ctx, "three.txt", "shared topic keyword also")

	result, err := svc.Search(ctx, "shared topic keyword", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
}

func TestTruncateEmptiesStore(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	svc.Add(ctx, "a.txt", "first note")
	svc.Add(ctx, "b.txt", "second note")

	truncated, err := svc.Truncate(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !truncated.Success || truncated.Removed != 2 {
		t.Fatalf("unexpected truncate result: %+v", truncated)
	}

	search, err := svc.Search(ctx, "anything", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(search.Results) != 0 {
		t.Fatalf("expected empty results after truncate, got %+v", search.Results)
	}

	retrieve, err := svc.Retrieve(ctx, "a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retrieve.Success {
		t.Fatal("note survived truncate")
	}
}

func TestIngestPDFMissingFile(t *testing.T) {
	svc := testService()

	result, err := svc.IngestPDF(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure for missing file")
	}
	if result.Kind != KindNotFound {
		t.Fatalf("expected not_found kind, got %q", result.Kind)
	}
}

func TestIngestPDFUnreadableFile(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	// A text file with a .pdf name is not a parseable PDF.
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	result, err := svc.IngestPDF(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected failure for unreadable PDF")
	}
	if result.Kind != KindStorage {
		t.Fatalf("expected storage kind, got %q", result.Kind)
	}
}
