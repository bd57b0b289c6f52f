package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/packzo/ishop/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState 买家鉴权快照（仅存 Redis，避免每次请求查库）
type UserAuthState struct {
	UserID    uint   `json:"userId"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updatedAt"`
}

// SellerAuthState 卖家鉴权快照
type SellerAuthState struct {
	SellerID  uint   `json:"sellerId"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updatedAt"`
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func sellerAuthStateKey(sellerID uint) string {
	return fmt.Sprintf("auth:seller:%d", sellerID)
}

// BuildUserAuthState 从买家模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:    user.ID,
		Status:    user.Status,
		UpdatedAt: time.Now().Unix(),
	}
}

// BuildSellerAuthState 从卖家模型构建鉴权快照
func BuildSellerAuthState(seller *models.Seller) *SellerAuthState {
	if seller == nil {
		return nil
	}
	return &SellerAuthState{
		SellerID:  seller.ID,
		Status:    seller.Status,
		UpdatedAt: time.Now().Unix(),
	}
}

// GetUserAuthState 获取买家鉴权快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState 写入买家鉴权快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// DelUserAuthState 删除买家鉴权快照
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, userAuthStateKey(userID))
}

// GetSellerAuthState 获取卖家鉴权快照
func GetSellerAuthState(ctx context.Context, sellerID uint) (*SellerAuthState, bool, error) {
	if sellerID == 0 {
		return nil, false, nil
	}
	var state SellerAuthState
	hit, err := GetJSON(ctx, sellerAuthStateKey(sellerID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetSellerAuthState 写入卖家鉴权快照
func SetSellerAuthState(ctx context.Context, state *SellerAuthState) error {
	if state == nil || state.SellerID == 0 {
		return nil
	}
	return SetJSON(ctx, sellerAuthStateKey(state.SellerID), state, authStateCacheTTL)
}

// DelSellerAuthState 删除卖家鉴权快照
func DelSellerAuthState(ctx context.Context, sellerID uint) error {
	if sellerID == 0 {
		return nil
	}
	return Del(ctx, sellerAuthStateKey(sellerID))
}
