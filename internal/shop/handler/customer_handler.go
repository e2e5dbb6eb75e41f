package handler

import (
	"errors"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// CustomerHandler 客户处理器
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Create(req, GetUserID(c))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Customer not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Customer not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.CustomerListParams{
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    size,
	}

	customers, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, "Failed to list customers: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: customers, Pagination: NewPagination(page, size, total)})
}
