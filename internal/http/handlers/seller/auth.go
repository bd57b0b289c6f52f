package seller

import (
	"net/http"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// LoginRequest 卖家登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 卖家登录，token 通过 HttpOnly Cookie 下发
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	seller, token, _, err := h.SellerAuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	h.setSellerCookie(c, token)
	response.OK(c, seller)
}

// Logout 卖家登出
func (h *Handler) Logout(c *gin.Context) {
	if sid, exists := c.Get(handlershared.ContextKeySellerID); exists {
		if id, ok := sid.(uint); ok {
			h.SellerAuthService.Logout(c.Request.Context(), id)
		}
	}
	h.clearSellerCookie(c)
	response.Message(c, http.StatusOK, "Logged out")
}

// CheckAuth 返回当前登录卖家
func (h *Handler) CheckAuth(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	seller, err := h.SellerRepo.FindByID(sid)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	response.OK(c, seller)
}

func (h *Handler) setSellerCookie(c *gin.Context, token string) {
	cfg := h.Config.SellerJWT
	maxAge := cfg.ExpireHours * 3600
	if maxAge <= 0 {
		maxAge = 72 * 3600
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, token, maxAge, "/", "", cfg.CookieSecure, true)
}

func (h *Handler) clearSellerCookie(c *gin.Context) {
	cfg := h.Config.SellerJWT
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.CookieSecure, true)
}
