package response

import (
	"go-firesafety-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The two endpoints speak different error envelopes and the admin
// frontend matches on them literally, so each has its own writer here
// instead of one shared shape.

// Ack acknowledges a successful contact submission. No row data is
// echoed back to the public caller.
func Ack(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// IngestError writes an ingestion-endpoint failure: {"error": "..."}.
func IngestError(c *gin.Context, err *apperror.AppError) {
	c.JSON(err.Code, gin.H{"error": err.Message})
}

// ModerationError writes a moderation-endpoint failure:
// {"success": false, "error": "..."}.
func ModerationError(c *gin.Context, err *apperror.AppError) {
	c.JSON(err.Code, gin.H{"success": false, "error": err.Message})
}
