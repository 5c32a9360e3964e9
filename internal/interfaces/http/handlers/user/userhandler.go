package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickethub/internal/application/user/usecases"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/utils"
)

type UserHandler struct {
	createUserUC usecases.CreateUserExecutor
	listUsersUC  usecases.ListUsersExecutor
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		logger:       logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
