package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/article/model"
	"deadparty-backend/internal/domains/article/service"
	"deadparty-backend/internal/shared/response"
)

type ArticleHandler struct {
	service service.ServiceInterface
}

func NewArticleHandler(svc service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: svc}
}

// List handles GET /v1/articles?category=&is_featured=&author=&artist=&search=&limit=&offset=
func (h *ArticleHandler) List(c *gin.Context) {
	var filter model.ArticleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	articles, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	out := make([]model.ArticleResponse, len(articles))
	for i := range articles {
		out[i] = *articles[i].ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, out, &response.Meta{
		Limit: filter.Limit,
		Total: total,
	})
}

// GetByID handles GET /v1/articles/:id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	article, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article.ToResponse())
}

// GetFeatured handles GET /v1/articles/featured. 404 when nothing is featured.
func (h *ArticleHandler) GetFeatured(c *gin.Context) {
	article, err := h.service.GetFeatured(c.Request.Context())
	if err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article.ToResponse())
}

func respondArticleError(c *gin.Context, err error) {
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
