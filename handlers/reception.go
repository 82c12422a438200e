package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"concierge/models"
	"concierge/services/reception"
	"concierge/utils"
)

const summaryCacheKey = "booking_summary"
const summaryCacheTTL = 30 * time.Second

// ReceptionHandler exposes the reception tool operations over HTTP. The agent
// runtime is the only intended client; every response is a structured tool
// result with its own success flag, so the HTTP status is 200 unless the
// request itself is malformed or the backing store fails.
type ReceptionHandler struct {
	Svc    reception.Service
	Cache  *redis.Client
	Logger *zap.Logger
}

func NewReceptionHandler(svc reception.Service, cache *redis.Client, logger *zap.Logger) *ReceptionHandler {
	return &ReceptionHandler{Svc: svc, Cache: cache, Logger: logger}
}

// bindOptional decodes the JSON body, tolerating an empty one.
func bindOptional(c *gin.Context, out interface{}) error {
	if err := c.ShouldBindJSON(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *ReceptionHandler) respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReceptionHandler) SearchAvailableRooms(c *gin.Context) {
	var input struct {
		RoomType string `json:"room_type"`
	}
	if err := bindOptional(c, &input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.SearchAvailableRooms(c.Request.Context(), input.RoomType)
	h.respond(c, result, err)
}

func (h *ReceptionHandler) CheckRoomAvailability(c *gin.Context) {
	var input struct {
		RoomType string `json:"room_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.CheckRoomAvailability(c.Request.Context(), input.RoomType)
	h.respond(c, result, err)
}

func (h *ReceptionHandler) GetRoomPricing(c *gin.Context) {
	var input struct {
		RoomType string `json:"room_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.GetRoomPricing(c.Request.Context(), input.RoomType)
	h.respond(c, result, err)
}

func (h *ReceptionHandler) BookRoom(c *gin.Context) {
	var input reception.BookRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.BookRoom(c.Request.Context(), input)
	if err == nil && result.Success {
		// A new booking changes the summary; drop the cached copy.
		h.invalidateSummary(c.Request.Context())
	}
	h.respond(c, result, err)
}

func (h *ReceptionHandler) GetRoomDetails(c *gin.Context) {
	var input struct {
		RoomID int `json:"room_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.GetRoomDetails(c.Request.Context(), input.RoomID)
	h.respond(c, result, err)
}

func (h *ReceptionHandler) SuggestRoomForOccasion(c *gin.Context) {
	var input struct {
		Occasion string   `json:"occasion" binding:"required"`
		Budget   *float64 `json:"budget"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.SuggestRoomForOccasion(c.Request.Context(), input.Occasion, input.Budget)
	h.respond(c, result, err)
}

func (h *ReceptionHandler) CalculateDiscount(c *gin.Context) {
	var input struct {
		RoomType string `json:"room_type" binding:"required"`
		Occasion string `json:"occasion" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	result, err := h.Svc.CalculateDiscount(c.Request.Context(), input.RoomType, input.Occasion)
	h.respond(c, result, err)
}

func (h *ReceptionHandler) GetBookingSummary(c *gin.Context) {
	ctx := c.Request.Context()

	if cached := h.cachedSummary(ctx); cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := h.Svc.GetBookingSummary(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "operation failed", err.Error())
		return
	}
	h.cacheSummary(ctx, result)
	c.JSON(http.StatusOK, result)
}

func (h *ReceptionHandler) cachedSummary(ctx context.Context) *models.SummaryResult {
	if h.Cache == nil {
		return nil
	}
	data, err := h.Cache.Get(ctx, summaryCacheKey).Result()
	if err != nil {
		return nil
	}
	var result models.SummaryResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil
	}
	return &result
}

func (h *ReceptionHandler) cacheSummary(ctx context.Context, result *models.SummaryResult) {
	if h.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := h.Cache.Set(ctx, summaryCacheKey, data, summaryCacheTTL).Err(); err != nil && h.Logger != nil {
		h.Logger.Warn("Failed to cache booking summary", zap.Error(err))
	}
}

func (h *ReceptionHandler) invalidateSummary(ctx context.Context) {
	if h.Cache == nil {
		return
	}
	h.Cache.Del(ctx, summaryCacheKey)
}
