package service

import (
	"context"
	"errors"
	"time"

	"github.com/packzo/ishop/internal/cache"
	"github.com/packzo/ishop/internal/config"
	"github.com/packzo/ishop/internal/logger"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SellerAuthService 卖家认证服务
type SellerAuthService struct {
	cfg        *config.Config
	sellerRepo repository.SellerRepository
}

// NewSellerAuthService 创建卖家认证服务
func NewSellerAuthService(cfg *config.Config, sellerRepo repository.SellerRepository) *SellerAuthService {
	return &SellerAuthService{
		cfg:        cfg,
		sellerRepo: sellerRepo,
	}
}

// SellerJWTClaims 卖家 JWT 声明
type SellerJWTClaims struct {
	SellerID uint   `json:"sellerId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Login 卖家登录
func (s *SellerAuthService) Login(ctx context.Context, email, password string) (*models.Seller, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	seller, err := s.sellerRepo.FindByEmail(normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if seller.Status != "active" {
		return nil, "", time.Time{}, ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(password)) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateSellerJWT(seller, 0)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	_ = s.sellerRepo.TouchLastLogin(seller.ID)
	_ = cache.SetSellerAuthState(ctx, cache.BuildSellerAuthState(seller))
	logger.Infow("seller_login", "seller_id", seller.ID)
	return seller, token, expiresAt, nil
}

// GenerateSellerJWT 生成卖家 JWT Token
func (s *SellerAuthService) GenerateSellerJWT(seller *models.Seller, expireHours int) (string, time.Time, error) {
	if expireHours <= 0 {
		expireHours = s.cfg.SellerJWT.ExpireHours
	}
	if expireHours <= 0 {
		expireHours = 72
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := SellerJWTClaims{
		SellerID: seller.ID,
		Email:    seller.Email,
		Role:     "seller",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.SellerJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseSellerJWT 解析卖家 JWT Token
func (s *SellerAuthService) ParseSellerJWT(tokenString string) (*SellerJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &SellerJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SellerJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*SellerJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Logout 清理服务端鉴权快照
func (s *SellerAuthService) Logout(ctx context.Context, sellerID uint) {
	_ = cache.DelSellerAuthState(ctx, sellerID)
}
