package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deadparty-backend/internal/domains/user/model"
	"deadparty-backend/internal/domains/user/service"
	"deadparty-backend/internal/shared/middleware"
	"deadparty-backend/internal/shared/response"
)

const refreshCookieName = "refresh_token"

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(svc service.ServiceInterface) *UserHandler {
	return &UserHandler{service: svc}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register handles POST /v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	summary, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	c.Header("Location", "/api/v1/users/"+summary.ID.String())
	response.Success(c, http.StatusCreated, summary)
}

// Login handles POST /v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	h.setRefreshCookie(c, res)
	response.Success(c, http.StatusOK, res)
}

// RefreshToken handles POST /v1/auth/refresh
// The refresh token comes from the http-only cookie, not the body.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil {
		response.Unauthorized(c, "missing refresh token")
		return
	}

	res, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	h.setRefreshCookie(c, res)
	response.Success(c, http.StatusOK, res)
}

// Me handles GET /v1/users/me (auth required)
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, model.ToHTTPStatus(err), model.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// setRefreshCookie moves the refresh token into an http-only cookie and
// strips it from the response body.
func (h *UserHandler) setRefreshCookie(c *gin.Context, res *model.LoginResponse) {
	c.SetCookie(
		refreshCookieName,
		res.RefreshToken,
		7*24*3600,
		"/",
		"",
		true,
		true,
	)
	res.RefreshToken = ""
}
