package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deadparty-backend/internal/domains/article/model"
	"deadparty-backend/internal/domains/article/service"
	"deadparty-backend/internal/shared/middleware"
	"deadparty-backend/internal/shared/response"
)

const maxImageSize = 10 << 20 // 10 MiB

// AdminArticleHandler carries the write surface. Reads on the admin group
// reuse ArticleHandler.
type AdminArticleHandler struct {
	service service.ServiceInterface
}

func NewAdminArticleHandler(svc service.ServiceInterface) *AdminArticleHandler {
	return &AdminArticleHandler{service: svc}
}

// Create handles POST /v1/admin/articles
func (h *AdminArticleHandler) Create(c *gin.Context) {
	var req model.WriteArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	callerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	article, err := h.service.Create(c.Request.Context(), callerID, req)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, article.ToResponse())
}

// Update handles PUT /v1/admin/articles/:id
func (h *AdminArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req model.WriteArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	article, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article.ToResponse())
}

// Delete handles DELETE /v1/admin/articles/:id
func (h *AdminArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ToggleFeatured handles POST /v1/admin/articles/:id/toggle-featured
func (h *AdminArticleHandler) ToggleFeatured(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	featured, err := h.service.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.ToggleFeaturedResponse{IsFeatured: featured})
}

// UploadImage handles POST /v1/admin/articles/:id/image (multipart, field "image")
func (h *AdminArticleHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	if fileHeader.Size > maxImageSize {
		response.BadRequest(c, "image exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url, err := h.service.UploadImage(c.Request.Context(), id, fileHeader.Filename, data, contentType)
	if err != nil {
		respondArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image": url})
}
