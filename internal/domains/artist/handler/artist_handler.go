package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/artist/model"
	"deadparty-backend/internal/domains/artist/service"
	"deadparty-backend/internal/shared/response"
)

type ArtistHandler struct {
	service service.ServiceInterface
}

func NewArtistHandler(svc service.ServiceInterface) *ArtistHandler {
	return &ArtistHandler{service: svc}
}

// List handles GET /v1/artists?genre=&location=&search=&limit=&offset=
func (h *ArtistHandler) List(c *gin.Context) {
	var filter model.ArtistFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	artists, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, model.ErrInvalidGenre) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	out := make([]model.ArtistResponse, len(artists))
	for i := range artists {
		out[i] = *artists[i].ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{
		Limit: filter.Limit,
		Total: total,
	})
}

// GetByID handles GET /v1/artists/:id
func (h *ArtistHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	artist, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtistNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, artist.ToResponse())
}
