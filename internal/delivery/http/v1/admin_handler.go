package v1

import (
	"net/http"
	"time"

	"go-firesafety-backend/internal/delivery/http/response"
	"go-firesafety-backend/pkg/apperror"
	"go-firesafety-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cred *auth.Credential
}

// NewAdminHandler registers the operator login route.
func NewAdminHandler(rg *gin.RouterGroup, cred *auth.Credential) {
	handler := &AdminHandler{
		cred: cred,
	}

	rg.POST("/admin/login", handler.Login)
}

type loginRequest struct {
	Secret string `json:"secret"`
}

// Login godoc
// @Summary      Operator Login
// @Description  Exchanges the shared operator secret for a short-lived session token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        login  body      loginRequest  true  "Operator secret"
// @Success      200    {object}  map[string]interface{}
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	if !h.cred.Configured() {
		response.ModerationError(c, apperror.Config("Server Configuration Error: ADMIN_SECRET is missing."))
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || !h.cred.Match(req.Secret) {
		response.ModerationError(c, apperror.Unauthorized("Unauthorized"))
		return
	}

	token, expiresAt, err := h.cred.IssueToken(time.Now())
	if err != nil {
		response.ModerationError(c, apperror.New(http.StatusInternalServerError,
			"Failed to issue session token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      token,
		"expires_at": expiresAt.UTC(),
	})
}
