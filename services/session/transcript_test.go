package session

import (
	"context"
	"os"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeAIClient struct {
	lastPrompt string
}

func (f *fakeAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return "summary", nil
}

func (f *fakeAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1}, nil
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr, err := NewManager(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	return mgr
}

func TestStartAssignsUniqueIDs(t *testing.T) {
	mgr := newTestManager(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		s := mgr.Start()
		if s.ID == "" {
			t.Fatal("empty session id")
		}
		if seen[s.ID] {
			t.Fatalf("duplicate session id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestGetReturnsStartedSession(t *testing.T) {
	mgr := newTestManager(t)

	s := mgr.Start()
	if got := mgr.Get(s.ID); got != s {
		t.Fatal("Get did not return the started session")
	}
	if got := mgr.Get("nope"); got != nil {
		t.Fatal("Get returned a session for an unknown id")
	}
}

func TestAppendFinalWritesTimestampedLines(t *testing.T) {
	mgr := newTestManager(t)
	s := mgr.Start()

	if err := s.AppendFinal("I would like a suite"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := s.AppendFinal("for two nights"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	content, err := s.ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "I would like a suite") || !strings.HasPrefix(lines[0], "[") {
		t.Fatalf("unexpected line format: %q", lines[0])
	}
}

func TestConvertToPDFProducesFile(t *testing.T) {
	mgr := newTestManager(t)
	s := mgr.Start()

	if err := s.AppendFinal("transcript body"); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	path, err := s.ConvertToPDF()
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("pdf not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("pdf file is empty")
	}
}

func TestSummarizeFeedsTranscriptToClient(t *testing.T) {
	mgr := newTestManager(t)
	s := mgr.Start()

	if err := s.AppendFinal("decided to launch friday"); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	client := &fakeAIClient{}
	summary, err := s.Summarize(context.Background(), client)
	if err != nil {
		t.Fatalf("summarize failed: %v", err)
	}
	if summary != "summary" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if !strings.Contains(client.lastPrompt, "decided to launch friday") {
		t.Fatal("prompt missing transcript text")
	}
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	mgr := newTestManager(t)
	s := mgr.Start()

	if _, err := s.Summarize(context.Background(), &fakeAIClient{}); err == nil {
		t.Fatal("expected error for empty transcript")
	}
}
