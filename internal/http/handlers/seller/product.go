package seller

import (
	"net/http"
	"strconv"

	handlershared "github.com/packzo/ishop/internal/http/handlers/shared"
	"github.com/packzo/ishop/internal/http/response"
	"github.com/packzo/ishop/internal/models"
	"github.com/packzo/ishop/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRequest 商品创建/编辑请求
type ProductRequest struct {
	ShopID      uint         `json:"shopId"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	MRP         models.Money `json:"mrp"`
	Price       models.Money `json:"price"`
	Image       string       `json:"image"`
	InStock     *bool        `json:"inStock"`
	Published   *bool        `json:"isPublished"`
}

// StockRequest 库存状态请求
type StockRequest struct {
	InStock *bool `json:"inStock" binding:"required"`
}

// ListProducts 卖家店铺商品列表（含未上架）
func (h *Handler) ListProducts(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	shopID, ok := parseUintParam(c, "shopId")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	products, total, err := h.ProductService.ListForSeller(sid, shopID, page, pageSize)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	if pageSize > 0 {
		response.OK(c, gin.H{"products": products, "total": total})
		return
	}
	response.OK(c, products)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	product, err := h.ProductService.Create(sid, req.ShopID, toProductInput(req))
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 编辑商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	product, err := h.ProductService.Update(sid, productID, toProductInput(req))
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(sid, productID); err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Product deleted")
}

// SetProductStock 更新库存状态
func (h *Handler) SetProductStock(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.InStock == nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	product, err := h.ProductService.SetInStock(sid, productID, *req.InStock)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

// TogglePublish 切换上架状态
func (h *Handler) TogglePublish(c *gin.Context) {
	sid, ok := getSellerID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.TogglePublish(sid, productID)
	if err != nil {
		handlershared.RespondServiceError(c, err)
		return
	}
	response.OK(c, product)
}

func toProductInput(req ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MRP:         req.MRP,
		Price:       req.Price,
		Image:       req.Image,
		InStock:     req.InStock,
		Published:   req.Published,
	}
}
