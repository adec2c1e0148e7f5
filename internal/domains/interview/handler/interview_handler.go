package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/interview/model"
	"deadparty-backend/internal/domains/interview/service"
	"deadparty-backend/internal/shared/middleware"
	"deadparty-backend/internal/shared/response"
)

type InterviewHandler struct {
	service service.ServiceInterface
}

func NewInterviewHandler(svc service.ServiceInterface) *InterviewHandler {
	return &InterviewHandler{service: svc}
}

// Create handles POST /v1/interview-requests
func (h *InterviewHandler) Create(c *gin.Context) {
	userID, isStaff, ok := caller(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ir, err := h.service.Create(c.Request.Context(), userID, isStaff, req)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ir.ToResponse())
}

// List handles GET /v1/interview-requests, scoped to the caller.
func (h *InterviewHandler) List(c *gin.Context) {
	userID, isStaff, ok := caller(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	requests, total, err := h.service.List(c.Request.Context(), userID, isStaff, limit, offset)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	out := make([]model.InterviewRequestResponse, len(requests))
	for i := range requests {
		out[i] = *requests[i].ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{
		Limit: limit,
		Total: total,
	})
}

// GetByID handles GET /v1/interview-requests/:id. Requests outside the
// caller's scope read as not found.
func (h *InterviewHandler) GetByID(c *gin.Context) {
	userID, isStaff, ok := caller(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	ir, err := h.service.GetByID(c.Request.Context(), userID, isStaff, id)
	if err != nil {
		respondInterviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ir.ToResponse())
}

func caller(c *gin.Context) (uuid.UUID, bool, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false, false
	}
	role, _ := c.Get(middleware.ContextRoleKey)
	return userID, role == "staff", true
}

func respondInterviewError(c *gin.Context, err error) {
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
