package handler

import (
	"errors"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// RepairHandler 维修工单处理器
type RepairHandler struct {
	svc *service.RepairService
}

func NewRepairHandler(svc *service.RepairService) *RepairHandler {
	return &RepairHandler{svc: svc}
}

// Create 创建维修工单。字段校验失败返回 422 与逐字段错误映射。
func (h *RepairHandler) Create(c *gin.Context) {
	var req service.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, fieldErrs, err := h.svc.Create(req, GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			ValidationFailed(c, fieldErrs)
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Created(c, order)
}

func (h *RepairHandler) Get(c *gin.Context) {
	order, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Repair order not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, order)
}

func (h *RepairHandler) Update(c *gin.Context) {
	var req service.CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, fieldErrs, err := h.svc.Update(c.Param("id"), req, GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			ValidationFailed(c, fieldErrs)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Repair order not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, order)
}

func (h *RepairHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}

func (h *RepairHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.RepairListParams{
		Status:       c.Query("status"),
		TechnicianID: c.Query("technician_id"),
		CustomerID:   c.Query("customer_id"),
		Keyword:      c.Query("keyword"),
		Page:         page,
		Size:         size,
	}

	orders, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, "Failed to list repair orders: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: orders, Pagination: NewPagination(page, size, total)})
}

// ChangeStatusRequest 状态推进请求
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus 推进工单状态，仅允许按固定顺序前进
func (h *RepairHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.svc.ChangeStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Repair order not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, order)
}

// NextStatuses 当前工单允许的下一个状态列表
func (h *RepairHandler) NextStatuses(c *gin.Context) {
	statuses, err := h.svc.NextStatuses(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Repair order not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"items": statuses})
}
