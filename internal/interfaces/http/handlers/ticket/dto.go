package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"tickethub/internal/application/ticket/usecases"
	"tickethub/internal/shared/authorization"
	"tickethub/internal/shared/constants"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,min=5,max=255"`
	Description string `json:"description" binding:"required,min=10"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Actor:       actor,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=5000"`
}

type EditCommentRequest struct {
	Comment string `json:"comment" binding:"required,max=5000"`
}

type ListTicketsRequest struct {
	Page     int
	PageSize int
	Status   string
	Priority string
}

func (r *ListTicketsRequest) ToQuery(actor authorization.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:    actor,
		Status:   r.Status,
		Priority: r.Priority,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return &ListTicketsRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}
}
