package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/author/model"
	"deadparty-backend/internal/domains/author/service"
	"deadparty-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List handles GET /v1/authors?category=&search=&limit=&offset=
func (h *AuthorHandler) List(c *gin.Context) {
	var filter model.AuthorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	authors, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCategory) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	out := make([]model.AuthorResponse, len(authors))
	for i := range authors {
		out[i] = *authors[i].ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{
		Limit: filter.Limit,
		Total: total,
	})
}

// GetByID handles GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	author, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, author.ToResponse())
}
