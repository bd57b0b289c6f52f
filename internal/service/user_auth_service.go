package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
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

// UserAuthService 买家认证服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService 创建买家认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// UserJWTClaims 买家 JWT 声明
type UserJWTClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterUserInput 买家注册输入
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// Register 买家注册
func (s *UserAuthService) Register(ctx context.Context, input RegisterUserInput) (*models.User, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if len(input.Password) < 6 {
		return nil, ErrInvalidInput
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Status:       "active",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	_ = cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user))
	logger.Infow("user_registered", "user_id", user.ID)
	return user, nil
}

// Login 买家登录，返回用户与签发的 token
func (s *UserAuthService) Login(ctx context.Context, email, password string) (*models.User, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByEmail(normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user.Status != "active" {
		return nil, "", time.Time{}, ErrAccountDisabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateUserJWT(user, 0)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	_ = s.userRepo.TouchLastLogin(user.ID)
	_ = cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user))
	logger.Infow("user_login", "user_id", user.ID)
	return user, token, expiresAt, nil
}

// GenerateUserJWT 生成买家 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User, expireHours int) (string, time.Time, error) {
	if expireHours <= 0 {
		expireHours = s.cfg.UserJWT.ExpireHours
	}
	if expireHours <= 0 {
		expireHours = 72
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析买家 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Logout 清理服务端鉴权快照
func (s *UserAuthService) Logout(ctx context.Context, userID uint) {
	_ = cache.DelUserAuthState(ctx, userID)
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
