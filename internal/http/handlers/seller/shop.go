package seller

import (
	"net/http"
	"strconv"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// ShopRequest 开店请求
type ShopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Address     string `json:"address"`
}

// ShopStatusRequest 营业状态请求
type ShopStatusRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// GetShop 卖家名下店铺
func (h *Handler) GetShop(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	shop, err := h.ShopService.GetBySeller(sid)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, shop)
}

// CreateShop 卖家开店
func (h *Handler) CreateShop(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	shop, err := h.ShopService.Create(sid, service.ShopInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Address:     req.Address,
	})
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, shop)
}

// SetShopStatus 切换营业状态
func (h *Handler) SetShopStatus(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	var req ShopStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Open == nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	shop, err := h.ShopService.SetOpen(sid, *req.Open)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, shop)
}

// Revenue 店铺营收汇总
func (h *Handler) Revenue(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	shopID, ok := parseUintParam(c, "shopId")
	if !ok {
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	summary, err := h.RevenueService.ShopSummary(sid, shopID, days)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, summary)
}
