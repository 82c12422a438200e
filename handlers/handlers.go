package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Reception tool endpoints.
	SearchAvailableRooms   gin.HandlerFunc
	CheckRoomAvailability  gin.HandlerFunc
	GetRoomPricing         gin.HandlerFunc
	BookRoom               gin.HandlerFunc
	GetRoomDetails         gin.HandlerFunc
	SuggestRoomForOccasion gin.HandlerFunc
	CalculateDiscount      gin.HandlerFunc
	GetBookingSummary      gin.HandlerFunc

	// Meeting-note tool endpoints.
	AddMeetingFile       gin.HandlerFunc
	SearchMeetingFiles   gin.HandlerFunc
	RetrieveMeetingFile  gin.HandlerFunc
	TruncateMeetingFiles gin.HandlerFunc
	IngestMeetingPDF     gin.HandlerFunc

	// Session transcript endpoints.
	StartSession     gin.HandlerFunc
	AppendTranscript gin.HandlerFunc
	FinalizeSession  gin.HandlerFunc

	Health gin.HandlerFunc
}
