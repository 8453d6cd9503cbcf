package v1

import (
	"errors"

	"go-firesafety-backend/internal/delivery/http/response"
	"go-firesafety-backend/internal/domain"
	"go-firesafety-backend/internal/metrics"
	"go-firesafety-backend/pkg/apperror"
	"go-firesafety-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Record a new inquiry from the public site. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.SubmitContactRequest  true  "Contact Form Data"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unparsable body cannot carry the required fields either.
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		response.IngestError(c, apperror.BadRequest(domain.ErrMissingFields.Error()))
		return
	}

	if err := h.contactUC.Submit(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
			response.IngestError(c, apperror.BadRequest(err.Error()))
		case errors.Is(err, domain.ErrNotConfigured):
			response.IngestError(c, apperror.Config(err.Error()))
		default:
			// Public endpoint: log the cause, surface a generic failure.
			logger.Log.Error("contact submission failed",
				"error", err, "request_id", c.GetString("RequestID"))
			metrics.SubmissionsTotal.WithLabelValues("error").Inc()
			response.IngestError(c, apperror.Database("Internal Server Error", err))
		}
		return
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	response.Ack(c)
}
