package v1

import (
	"errors"
	"net/http"

	"go-firesafety-backend/internal/delivery/http/response"
	"go-firesafety-backend/internal/domain"
	"go-firesafety-backend/internal/metrics"
	"go-firesafety-backend/pkg/apperror"
	"go-firesafety-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	contactUC domain.ContactUsecase
}

// NewMessageHandler registers the moderation routes. The group is
// expected to carry the ModerationAuth middleware.
func NewMessageHandler(protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &MessageHandler{
		contactUC: contactUC,
	}

	protected.GET("/messages", handler.ListMessages)
	protected.PATCH("/messages", handler.UpdateStatus)
}

// updateMessageRequest is the PATCH /messages body. The id is bound as a
// float64 because JSON numbers are untyped; the usecase applies the
// finite-positive rule.
type updateMessageRequest struct {
	ID     float64 `json:"id"`
	Status string  `json:"status"`
}

// ListMessages godoc
// @Summary      List Contact Messages
// @Description  Returns the 200 most recent inquiries, newest first.
// @Tags         messages
// @Produce      json
// @Param        secret  query     string  false  "Operator secret"
// @Success      200     {array}   domain.ContactMessage
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactUC.ListMessages(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	// The admin frontend iterates the response directly: [] not null.
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// UpdateStatus godoc
// @Summary      Update Message Status
// @Description  Moves an inquiry to a new moderation status. Replies null when no row matches the id.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        secret  query     string                false  "Operator secret"
// @Param        update  body      updateMessageRequest  true   "Target id and status"
// @Success      200     {object}  domain.ContactMessage
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /messages [patch]
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ModerationError(c, apperror.BadRequest(domain.ErrInvalidID.Error()))
		return
	}

	msg, err := h.contactUC.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}

	// No matching row is reported as success with a null body: the
	// endpoint cannot tell "already deleted" from "never existed".
	if msg == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	metrics.StatusUpdatesTotal.WithLabelValues(msg.Status).Inc()
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID), errors.Is(err, domain.ErrInvalidStatus):
		response.ModerationError(c, apperror.BadRequest(err.Error()))
	case errors.Is(err, domain.ErrNotConfigured):
		response.ModerationError(c, apperror.Config(err.Error()))
	default:
		// Moderation callers are authenticated operators; the underlying
		// failure description is part of the contract for diagnosis.
		logger.Log.Error("moderation request failed",
			"error", err, "request_id", c.GetString("RequestID"))
		response.ModerationError(c, apperror.Database(err.Error(), err))
	}
}
