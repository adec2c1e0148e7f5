package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/comment/model"
	"deadparty-backend/internal/domains/comment/service"
	"deadparty-backend/internal/shared/middleware"
	"deadparty-backend/internal/shared/response"
)

type CommentHandler struct {
	service service.ServiceInterface
}

func NewCommentHandler(svc service.ServiceInterface) *CommentHandler {
	return &CommentHandler{service: svc}
}

// List handles GET /v1/comments?article=&limit=&offset=. Approved comments
// only, oldest first.
func (h *CommentHandler) List(c *gin.Context) {
	var filter model.CommentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comments, total, err := h.service.ListPublic(c.Request.Context(), filter)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, commentResponses(comments), &response.Meta{
		Limit: filter.Limit,
		Total: total,
	})
}

// Create handles POST /v1/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment.ToResponse())
}

// AdminList handles GET /v1/admin/comments. Includes unapproved comments,
// staff only.
func (h *CommentHandler) AdminList(c *gin.Context) {
	var filter model.CommentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comments, total, err := h.service.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, commentResponses(comments), &response.Meta{
		Limit: filter.Limit,
		Total: total,
	})
}

// Moderate handles PATCH /v1/admin/comments/:id/moderate
func (h *CommentHandler) Moderate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req model.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	comment, err := h.service.Moderate(c.Request.Context(), id, *req.Approved)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comment.ToResponse())
}

func commentResponses(comments []model.Comment) []model.CommentResponse {
	out := make([]model.CommentResponse, len(comments))
	for i := range comments {
		out[i] = *comments[i].ToResponse()
	}
	return out
}

func respondCommentError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationError(c, err)
		return
	}
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, err.Error())
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
