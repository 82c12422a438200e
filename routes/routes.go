package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"concierge/handlers"
	"concierge/middleware"
)

// RegisterToolRoutes registers the reception and meeting-note tool endpoints
// called by the agent runtime.
func RegisterToolRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tools")
	api.Use(middleware.RateLimitMiddleware())
	{
		api.POST("/search-available-rooms", hb.SearchAvailableRooms)
		api.POST("/check-room-availability", hb.CheckRoomAvailability)
		api.POST("/room-pricing", hb.GetRoomPricing)
		api.POST("/book-room", hb.BookRoom)
		api.POST("/room-details", hb.GetRoomDetails)
		api.POST("/suggest-room", hb.SuggestRoomForOccasion)
		api.POST("/calculate-discount", hb.CalculateDiscount)
		api.GET("/booking-summary", hb.GetBookingSummary)

		api.POST("/notes/add", hb.AddMeetingFile)
		api.POST("/notes/search", hb.SearchMeetingFiles)
		api.POST("/notes/retrieve", hb.RetrieveMeetingFile)
		api.POST("/notes/truncate", hb.TruncateMeetingFiles)
		api.POST("/notes/ingest-pdf", hb.IngestMeetingPDF)
	}
}

// RegisterSessionRoutes registers the transcript session endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.POST("/start", hb.StartSession)
		api.POST("/:sessionID/transcript", hb.AppendTranscript)
		api.POST("/:sessionID/finalize", hb.FinalizeSession)
	}
}

// RegisterHealthRoutes registers liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// CORSConfig returns the CORS policy for the tool surface.
func CORSConfig() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
