package session

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	ai "concierge/services/intelligence"
)

// Manager owns the per-session transcript artifacts. Every voice session gets
// a fresh correlation id, so transcripts from concurrent sessions can never
// collide on a shared file.
type Manager struct {
	Dir    string
	Logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// Session is one voice session's transcript log.
type Session struct {
	ID string

	dir string
	mu  sync.Mutex
}

func NewManager(dir string, logger *zap.Logger) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating transcripts dir: %w", err)
	}
	return &Manager{
		Dir:      dir,
		Logger:   logger,
		sessions: make(map[string]*Session),
	}, nil
}

// Start opens a new session with a unique id.
func (m *Manager) Start() *Session {
	s := &Session{
		ID:  uuid.New().String(),
		dir: m.Dir,
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	if m.Logger != nil {
		m.Logger.Info("Started transcript session", zap.String("session_id", s.ID))
	}
	return s
}

// Get returns a previously started session, or nil.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// TranscriptPath is the session's append-only text log.
func (s *Session) TranscriptPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("transcript_%s.txt", s.ID))
}

// PDFPath is where ConvertToPDF writes its output.
func (s *Session) PDFPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("transcript_%s.pdf", s.ID))
}

// AppendFinal appends one finalized utterance to the transcript log with a
// timestamp, matching the log line format read back by ConvertToPDF.
func (s *Session) AppendFinal(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.TranscriptPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening transcript: %w", err)
	}
	defer f.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	if _, err := fmt.Fprintf(f, "[%s] %s\n", timestamp, text); err != nil {
		return fmt.Errorf("error appending transcript: %w", err)
	}
	return nil
}

// ReadAll returns the full transcript text.
func (s *Session) ReadAll() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.TranscriptPath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading transcript: %w", err)
	}
	return string(data), nil
}

// ConvertToPDF renders the transcript log into a PDF and returns its path.
// The caller typically hands the PDF to the note store for ingestion.
func (s *Session) ConvertToPDF() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.TranscriptPath())
	if err != nil {
		return "", fmt.Errorf("error opening transcript: %w", err)
	}
	defer f.Close()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		pdf.MultiCell(0, 10, scanner.Text(), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading transcript: %w", err)
	}

	out := s.PDFPath()
	if err := pdf.OutputFileAndClose(out); err != nil {
		return "", fmt.Errorf("error writing transcript PDF: %w", err)
	}
	return out, nil
}

// Summarize feeds the transcript to the intelligence client and returns the
// meeting summary.
func (s *Session) Summarize(ctx context.Context, client ai.Client) (string, error) {
	transcript, err := s.ReadAll()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("transcript for session %s is empty", s.ID)
	}

	prompt := "Summarize the following meeting transcript, focusing on key decisions, " +
		"action items, and important discussions:\n\n" + transcript
	return client.GenerateContent(ctx, prompt)
}
