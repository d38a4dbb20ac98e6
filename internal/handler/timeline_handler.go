package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
	"linkboard-api/internal/ws"
)

// TimelineHandler handles board timeline endpoints, including the
// websocket stream for live timeline updates.
type TimelineHandler struct {
	timelineService service.TimelineService
	hub             *ws.Hub
	logger          *zap.Logger
}

// NewTimelineHandler creates a new TimelineHandler
func NewTimelineHandler(timelineService service.TimelineService, hub *ws.Hub, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService, hub: hub, logger: logger}
}

// GetTimeline godoc
// @Summary      Get board timeline
// @Description  Returns timeline entries for a board, newest first
// @Tags         timeline
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        limit query int false "Maximum entries to return" default(100)
// @Success      200 {object} response.SuccessResponse{data=[]dto.TimelineEntryResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /boards/{boardId}/timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid limit")
			return
		}
	}

	entries, err := h.timelineService.GetTimeline(c.Request.Context(), boardID, auth.UserID, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, entries)
}

// AddComment godoc
// @Summary      Add a timeline comment
// @Description  Appends a comment entry to the board timeline and broadcasts it to websocket subscribers
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateTimelineEntryRequest true "Comment to add"
// @Success      201 {object} response.SuccessResponse{data=dto.TimelineEntryResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /boards/{boardId}/timeline [post]
func (h *TimelineHandler) AddComment(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	var req dto.CreateTimelineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	entry, err := h.timelineService.AddComment(c.Request.Context(), boardID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, entry)
}

// StreamTimeline godoc
// @Summary      Subscribe to live timeline updates
// @Description  Upgrades the connection to a websocket and streams timeline entries for the board. Authenticate with a token query parameter.
// @Tags         timeline
// @Param        boardId path string true "Board ID (UUID)"
// @Param        token query string true "Session JWT"
// @Success      101 {string} string "Switching Protocols"
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /boards/{boardId}/timeline/ws [get]
func (h *TimelineHandler) StreamTimeline(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	allowed, err := h.timelineService.CanAccessBoard(c.Request.Context(), boardID, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !allowed {
		response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "You do not have access to this board")
		return
	}

	if err := h.hub.Subscribe(c.Writer, c.Request, boardID, auth.UserID); err != nil {
		h.logger.Warn("websocket upgrade failed",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
	}
}
