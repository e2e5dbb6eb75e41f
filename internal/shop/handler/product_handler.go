package handler

import (
	"errors"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// ProductHandler 商品与售出记录处理器
type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.svc.Create(req, GetUserID(c))
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Created(c, product)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}

func (h *ProductHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.ProductListParams{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		Size:     size,
	}

	products, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, "Failed to list products: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: products, Pagination: NewPagination(page, size, total)})
}

// RecordSale 登记售出的序列号单品
func (h *ProductHandler) RecordSale(c *gin.Context) {
	var req service.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sp, err := h.svc.RecordSale(req, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, sp)
}

// GetSoldProduct 按序列号精确查询售出记录
func (h *ProductHandler) GetSoldProduct(c *gin.Context) {
	sp, err := h.svc.GetSoldProductBySerial(c.Param("serial"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Sold product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, sp)
}
