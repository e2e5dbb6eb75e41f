package handler

import (
	"errors"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// UserHandler 用户管理处理器
type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Create(req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "User not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "User not found")
			return
		}
		BadRequest(c, err.Error())
		return
	}
	Success(c, user)
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.ChangePassword(c.Param("id"), req.NewPassword); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "User not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, nil)
}

func (h *UserHandler) List(c *gin.Context) {
	page, size := GetPagination(c)
	params := repository.UserListParams{
		Role:    c.Query("role"),
		Status:  c.Query("status"),
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    size,
	}

	users, total, err := h.svc.List(params)
	if err != nil {
		InternalError(c, "Failed to list users: "+err.Error())
		return
	}
	Success(c, ListResponse{Items: users, Pagination: NewPagination(page, size, total)})
}

// ListTechnicians 技术员下拉选项
func (h *UserHandler) ListTechnicians(c *gin.Context) {
	techs, err := h.svc.ListTechnicians(c.Request.Context())
	if err != nil {
		InternalError(c, "Failed to list technicians: "+err.Error())
		return
	}
	Success(c, gin.H{"items": techs})
}
