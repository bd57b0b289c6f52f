package public

import (
	"net/http"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 买家注册请求
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest 买家登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 买家注册并自动登录
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	user, err := h.UserAuthService.Register(c.Request.Context(), service.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	token, _, err := h.UserAuthService.GenerateUserJWT(user, 0)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	h.setUserCookie(c, token)
	response.Created(c, user)
}

// Login 买家登录，token 通过 HttpOnly Cookie 下发
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	user, token, _, err := h.UserAuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	h.setUserCookie(c, token)
	response.OK(c, user)
}

// Logout 买家登出
func (h *Handler) Logout(c *gin.Context) {
	if uid, exists := c.Get(handlershared.ContextKeyUserID); exists {
		if id, ok := uid.(uint); ok {
			h.UserAuthService.Logout(c.Request.Context(), id)
		}
	}
	h.clearUserCookie(c)
	response.Message(c, http.StatusOK, "Logged out")
}

// CheckAuth 返回当前登录买家
func (h *Handler) CheckAuth(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserRepo.FindByID(uid)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	response.OK(c, user)
}

func (h *Handler) setUserCookie(c *gin.Context, token string) {
	cfg := h.Config.UserJWT
	maxAge := cfg.ExpireHours * 3600
	if maxAge <= 0 {
		maxAge = 72 * 3600
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, maxAge, "/", "", cfg.CookieSecure, true)
}

func (h *Handler) clearUserCookie(c *gin.Context) {
	cfg := h.Config.UserJWT
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.CookieSecure, true)
}
