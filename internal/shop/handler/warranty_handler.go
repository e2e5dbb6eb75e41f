package handler

import (
	"errors"
	"strconv"

	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/bitfantasy/fixera/internal/shop/service"
	"github.com/gin-gonic/gin"
)

// WarrantyHandler 保修查询处理器
type WarrantyHandler struct {
	svc *service.WarrantyService
}

func NewWarrantyHandler(svc *service.WarrantyService) *WarrantyHandler {
	return &WarrantyHandler{svc: svc}
}

// Resolve 精确序列号解析保修与归属客户
// GET /warranty/:serial
func (h *WarrantyHandler) Resolve(c *gin.Context) {
	res, err := h.svc.ResolveBySerial(c.Param("serial"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "No sold product with this serial")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, res)
}

// echoSeq 读取客户端联想请求序号，响应原样回显，
// 客户端据此丢弃迟到的旧结果。
func echoSeq(c *gin.Context) uint64 {
	seq, _ := strconv.ParseUint(c.Query("seq"), 10, 64)
	return seq
}

// SearchSerials 序列号子串联想
// GET /warranty/search/serials?q=xx&seq=n
func (h *WarrantyHandler) SearchSerials(c *gin.Context) {
	matches, err := h.svc.SearchBySerialFragment(c.Query("q"))
	if err != nil {
		InternalError(c, "Failed to search serials: "+err.Error())
		return
	}
	Success(c, gin.H{"items": matches, "seq": echoSeq(c)})
}

// SearchPhones 电话子串联想
// GET /warranty/search/phones?q=xxx&seq=n
func (h *WarrantyHandler) SearchPhones(c *gin.Context) {
	customers, err := h.svc.SearchByPhoneFragment(c.Query("q"))
	if err != nil {
		InternalError(c, "Failed to search phones: "+err.Error())
		return
	}
	Success(c, gin.H{"items": customers, "seq": echoSeq(c)})
}
