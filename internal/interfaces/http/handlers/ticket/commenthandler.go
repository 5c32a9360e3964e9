package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickethub/internal/application/ticket/usecases"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/errors"
	"tickethub/internal/shared/logger"
	"tickethub/internal/shared/utils"
)

// CommentHandler serves the standalone comment endpoints. Ownership
// checks live in the use cases, not here.
type CommentHandler struct {
	editCommentUC   usecases.EditCommentExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
	logger          logger.Interface
}

func NewCommentHandler(
	editCommentUC usecases.EditCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		editCommentUC:   editCommentUC,
		deleteCommentUC: deleteCommentUC,
		logger:          logger,
	}
}

// EditComment handles PATCH /comments/:id
func (h *CommentHandler) EditComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	actor, _ := authorization.ActorFromContext(c)
	result, err := h.editCommentUC.Execute(c.Request.Context(), usecases.EditCommentCommand{
		CommentID: commentID,
		Text:      req.Comment,
		Actor:     actor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseIDParam(c, "id", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := authorization.ActorFromContext(c)
	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CommentID: commentID,
		Actor:     actor,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
