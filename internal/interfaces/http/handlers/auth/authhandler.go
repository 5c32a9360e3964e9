package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickethub/internal/application/auth/usecases"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/utils"
)

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{loginUC: loginUC, logger: logger}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
