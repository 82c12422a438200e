package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ai "concierge/services/intelligence"
	"concierge/services/notes"
	"concierge/services/session"
	"concierge/utils"
)

// SessionHandler manages per-session transcript logs: the agent runtime posts
// finalized utterances here, then finalizes the session to archive it as a
// searchable PDF note.
type SessionHandler struct {
	Mgr    *session.Manager
	Notes  notes.Service
	AI     ai.Client // nil when no Gemini key is configured
	Logger *zap.Logger
}

func NewSessionHandler(mgr *session.Manager, notesSvc notes.Service, client ai.Client, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{Mgr: mgr, Notes: notesSvc, AI: client, Logger: logger}
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	s := h.Mgr.Start()
	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": s.ID})
}

func (h *SessionHandler) AppendTranscript(c *gin.Context) {
	s := h.Mgr.Get(c.Param("sessionID"))
	if s == nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", c.Param("sessionID"))
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := s.AppendFinal(input.Text); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to append transcript", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": s.ID})
}

// FinalizeSession converts the transcript to PDF, ingests it into the note
// store, and optionally produces a meeting summary.
func (h *SessionHandler) FinalizeSession(c *gin.Context) {
	s := h.Mgr.Get(c.Param("sessionID"))
	if s == nil {
		utils.JSONError(c, http.StatusNotFound, "session not found", c.Param("sessionID"))
		return
	}

	var input struct {
		Summarize bool `json:"summarize"`
	}
	if err := bindOptional(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	pdfPath, err := s.ConvertToPDF()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to convert transcript", err.Error())
		return
	}

	ingest, err := h.Notes.IngestPDF(c.Request.Context(), pdfPath)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to ingest transcript", err.Error())
		return
	}

	resp := gin.H{
		"success":    true,
		"session_id": s.ID,
		"pdf_path":   pdfPath,
		"ingest":     ingest,
	}

	if input.Summarize {
		if h.AI == nil {
			resp["summary_error"] = "no intelligence backend configured"
		} else if summary, err := s.Summarize(c.Request.Context(), h.AI); err != nil {
			if h.Logger != nil {
				h.Logger.Warn("Transcript summary failed", zap.Error(err))
			}
			resp["summary_error"] = err.Error()
		} else {
			resp["summary"] = summary
		}
	}

	c.JSON(http.StatusOK, resp)
}
