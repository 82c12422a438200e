package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"concierge/services/notes"
	"concierge/utils"
)

// NotesHandler exposes the meeting-note tool operations over HTTP.
type NotesHandler struct {
	Svc    notes.Service
	Logger *zap.Logger
}

func NewNotesHandler(svc notes.Service, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{Svc: svc, Logger: logger}
}

func (h *NotesHandler) respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *NotesHandler) AddMeetingFile(c *gin.Context) {
	var input struct {
		Filename string `json:"filename" binding:"required"`
		Content  string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.Add(c.Request.Context(), input.Filename, input.Content)
	h.respond(c, result, err)
}

func (h *NotesHandler) SearchMeetingFiles(c *gin.Context) {
	var input struct {
		Query string `json:"query" binding:"required"`
		TopK  int    `json:"top_k"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.Search(c.Request.Context(), input.Query, input.TopK)
	h.respond(c, result, err)
}

func (h *NotesHandler) RetrieveMeetingFile(c *gin.Context) {
	var input struct {
		Filename string `json:"filename" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.Retrieve(c.Request.Context(), input.Filename)
	h.respond(c, result, err)
}

func (h *NotesHandler) TruncateMeetingFiles(c *gin.Context) {
	result, err := h.Svc.Truncate(c.Request.Context())
	h.respond(c, result, err)
}

func (h *NotesHandler) IngestMeetingPDF(c *gin.Context) {
	var input struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.IngestPDF(c.Request.Context(), input.Path)
	h.respond(c, result, err)
}
