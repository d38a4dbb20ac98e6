package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
	"linkboard-api/internal/service"
)

// CardHandler handles card endpoints
type CardHandler struct {
	cardService service.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCard godoc
// @Summary      Create a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateCardRequest true "Card to create"
// @Success      201 {object} response.SuccessResponse{data=dto.CardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /boards/{boardId}/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), boardID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// UpdateCard godoc
// @Summary      Update a card
// @Description  Updates card fields. A status change is recorded on the board timeline.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.UpdateCardRequest true "Fields to update"
// @Success      200 {object} response.SuccessResponse{data=dto.CardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /cards/{cardId} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid card ID")
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), cardID, &req, auth.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// DeleteCard godoc
// @Summary      Delete a card
// @Tags         cards
// @Produce      json
// @Param        cardId path string true "Card ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=map[string]string}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /cards/{cardId} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid card ID")
		return
	}

	auth, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), cardID, auth.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Card deleted"})
}
