package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/packzo/ishop/internal/authz"
	"github.com/packzo/ishop/internal/cache"
	"github.com/packzo/ishop/internal/config"
	"github.com/packzo/ishop/internal/constants"
	"github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/repository"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Cache-Control",
			"X-Requested-With",
			"X-CSRF-Token",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			entry.Errorw("request", "errors", c.Errors.String())
			return
		}
		entry.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// UserAuthMiddleware 买家登录态中间件（HttpOnly Cookie + JWT）
func UserAuthMiddleware(cfg *config.Config, authService *service.UserAuthService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil || userRepo == nil {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		tokenString, err := c.Cookie(cfg.UserJWT.CookieName)
		if err != nil || strings.TrimSpace(tokenString) == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := authService.ParseUserJWT(tokenString)
		if err != nil || claims.UserID == 0 {
			response.Error(c, http.StatusUnauthorized, "Session expired, please log in again")
			return
		}

		if cached, hit, cacheErr := cache.GetUserAuthState(c.Request.Context(), claims.UserID); cacheErr == nil && hit && cached != nil {
			if !isActiveAccountStatus(cached.Status) {
				response.Error(c, http.StatusUnauthorized, "Account is disabled")
				return
			}
			c.Set(shared.ContextKeyUserID, claims.UserID)
			c.Next()
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil || user == nil {
			response.Error(c, http.StatusUnauthorized, "Session expired, please log in again")
			return
		}
		if !isActiveAccountStatus(user.Status) {
			response.Error(c, http.StatusUnauthorized, "Account is disabled")
			return
		}
		_ = cache.SetUserAuthState(c.Request.Context(), cache.BuildUserAuthState(user))

		c.Set(shared.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// SellerAuthMiddleware 卖家登录态中间件
func SellerAuthMiddleware(cfg *config.Config, authService *service.SellerAuthService, sellerRepo repository.SellerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService == nil || sellerRepo == nil {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		tokenString, err := c.Cookie(cfg.SellerJWT.CookieName)
		if err != nil || strings.TrimSpace(tokenString) == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := authService.ParseSellerJWT(tokenString)
		if err != nil || claims.SellerID == 0 {
			response.Error(c, http.StatusUnauthorized, "Session expired, please log in again")
			return
		}

		if cached, hit, cacheErr := cache.GetSellerAuthState(c.Request.Context(), claims.SellerID); cacheErr == nil && hit && cached != nil {
			if !isActiveAccountStatus(cached.Status) {
				response.Error(c, http.StatusUnauthorized, "Account is disabled")
				return
			}
			c.Set(shared.ContextKeySellerID, claims.SellerID)
			c.Next()
			return
		}

		seller, err := sellerRepo.FindByID(claims.SellerID)
		if err != nil || seller == nil {
			response.Error(c, http.StatusUnauthorized, "Session expired, please log in again")
			return
		}
		if !isActiveAccountStatus(seller.Status) {
			response.Error(c, http.StatusUnauthorized, "Account is disabled")
			return
		}
		_ = cache.SetSellerAuthState(c.Request.Context(), cache.BuildSellerAuthState(seller))

		c.Set(shared.ContextKeySellerID, claims.SellerID)
		c.Next()
	}
}

// UserRBACMiddleware 买家侧 RBAC 鉴权中间件
func UserRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authzService == nil {
			logger.Errorw("user_rbac_service_unavailable")
			response.Error(c, http.StatusForbidden, "Permission denied")
			return
		}
		allowed, err := authzService.EnforceUser(enforceObject(c), c.Request.Method)
		if err != nil {
			logger.Errorw("user_rbac_enforce_failed", "error", err, "path", c.Request.URL.Path)
			response.Error(c, http.StatusForbidden, "Permission denied")
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "Permission denied")
			return
		}
		c.Next()
	}
}

// SellerRBACMiddleware 卖家侧 RBAC 鉴权中间件
func SellerRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authzService == nil {
			logger.Errorw("seller_rbac_service_unavailable")
			response.Error(c, http.StatusForbidden, "Permission denied")
			return
		}
		allowed, err := authzService.EnforceSeller(enforceObject(c), c.Request.Method)
		if err != nil {
			logger.Errorw("seller_rbac_enforce_failed", "error", err, "path", c.Request.URL.Path)
			response.Error(c, http.StatusForbidden, "Permission denied")
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, "Permission denied")
			return
		}
		c.Next()
	}
}

func enforceObject(c *gin.Context) string {
	obj := c.FullPath()
	if obj == "" {
		obj = c.Request.URL.Path
	}
	return obj
}

func isActiveAccountStatus(status string) bool {
	return strings.ToLower(strings.TrimSpace(status)) == constants.AccountStatusActive
}
