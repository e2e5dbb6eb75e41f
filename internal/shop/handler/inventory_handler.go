package handler

import (
	"errors"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// InventoryHandler 库存处理器
type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.InventoryListParams{
		ProductID: c.Query("product_id"),
		Keyword:   c.Query("keyword"),
		LowStock:  c.Query("low_stock") == "true",
		Page:      page,
		Size:      size,
	}

	items, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, "Failed to list inventory: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: items, Pagination: NewPagination(page, size, total)})
}

func (h *InventoryHandler) GetByProduct(c *gin.Context) {
	inv, err := h.svc.GetByProduct(c.Param("productId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "No inventory record for product")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, inv)
}

// movementRequest 入库/出库请求，type 区分交易类型
type movementRequest struct {
	service.MovementRequest
	Type string `json:"type"`
}

// Inbound 入库
func (h *InventoryHandler) Inbound(c *gin.Context) {
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Type == "" {
		req.Type = entity.TxTypePurchaseIn
	}

	inv, err := h.svc.Inbound(req.MovementRequest, req.Type, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, inv)
}

// Outbound 出库
func (h *InventoryHandler) Outbound(c *gin.Context) {
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Type == "" {
		req.Type = entity.TxTypeSalesOut
	}

	inv, err := h.svc.Outbound(req.MovementRequest, req.Type, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, inv)
}

// Adjust 盘点调整
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req service.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inv, err := h.svc.Adjust(req, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Success(c, inv)
}

// ListTransactions 库存交易流水
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	page, size := GetPagination(c)
	txs, total, err := h.svc.ListTransactions(c.Query("product_id"), page, size)
	if err != nil {
		InternalError(c, "Failed to list transactions: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: txs, Pagination: NewPagination(page, size, total)})
}

// GetAlerts 低库存告警列表
func (h *InventoryHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.svc.GetAlerts()
	if err != nil {
		InternalError(c, "Failed to get alerts: "+err.Error())
		return
	}
	Success(c, gin.H{"items": alerts})
}
