package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/event/model"
	"deadparty-backend/internal/domains/event/service"
	"deadparty-backend/internal/shared/response"
)

type EventHandler struct {
	service service.ServiceInterface
}

func NewEventHandler(svc service.ServiceInterface) *EventHandler {
	return &EventHandler{service: svc}
}

// List handles GET /v1/events?genre=&date=&search=&limit=&offset=
func (h *EventHandler) List(c *gin.Context) {
	var filter model.EventFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	events, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondEventError(c, err)
		return
	}

	respondEventPage(c, events, filter.Limit, total)
}

// GetByID handles GET /v1/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, event.ToResponse(time.Now()))
}

// ListUpcoming handles GET /v1/events/upcoming
func (h *EventHandler) ListUpcoming(c *gin.Context) {
	limit, offset := pageParams(c)
	events, total, err := h.service.ListUpcoming(c.Request.Context(), limit, offset)
	if err != nil {
		respondEventError(c, err)
		return
	}
	respondEventPage(c, events, limit, total)
}

// ListPast handles GET /v1/events/past
func (h *EventHandler) ListPast(c *gin.Context) {
	limit, offset := pageParams(c)
	events, total, err := h.service.ListPast(c.Request.Context(), limit, offset)
	if err != nil {
		respondEventError(c, err)
		return
	}
	respondEventPage(c, events, limit, total)
}

func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func respondEventPage(c *gin.Context, events []model.Event, limit int, total int64) {
	today := time.Now()
	out := make([]model.EventResponse, len(events))
	for i := range events {
		out[i] = *events[i].ToResponse(today)
	}
	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{
		Limit: limit,
		Total: total,
	})
}

func respondEventError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c, err.Error())
		return
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
