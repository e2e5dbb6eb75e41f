package service

import (
	"strings"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
)

// 碎片搜索的最小输入长度：低于阈值直接短路返回空结果，不触发查询
const (
	MinSerialFragmentLen = 2
	MinPhoneFragmentLen  = 3
)

// WarrantyService 保修查询与身份解析服务
type WarrantyService struct {
	productRepo  *repository.ProductRepository
	customerRepo *repository.CustomerRepository
}

func NewWarrantyService(productRepo *repository.ProductRepository, customerRepo *repository.CustomerRepository) *WarrantyService {
	return &WarrantyService{productRepo: productRepo, customerRepo: customerRepo}
}

// SerialMatch 序列号碎片搜索的单条结果
type SerialMatch struct {
	SerialNo              string `json:"serial_no"`
	ProductName           string `json:"product_name"`
	IsUnderWarranty       bool   `json:"is_under_warranty"`
	WarrantyRemainingDays int    `json:"warranty_remaining_days"`
}

// SearchBySerialFragment 序列号子串搜索，输入不足两个字符时短路
func (s *WarrantyService) SearchBySerialFragment(fragment string) ([]SerialMatch, error) {
	fragment = strings.TrimSpace(fragment)
	if len(fragment) < MinSerialFragmentLen {
		return []SerialMatch{}, nil
	}

	items, err := s.productRepo.SearchSoldProductsBySerialFragment(fragment, 10)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	matches := make([]SerialMatch, 0, len(items))
	for i := range items {
		info := entity.ComputeWarranty(&items[i], now)
		matches = append(matches, SerialMatch{
			SerialNo:              info.SerialNo,
			ProductName:           info.ProductName,
			IsUnderWarranty:       info.IsUnderWarranty,
			WarrantyRemainingDays: info.RemainingDays,
		})
	}
	return matches, nil
}

// SearchByPhoneFragment 电话子串搜索，输入不足三个字符时短路
func (s *WarrantyService) SearchByPhoneFragment(fragment string) ([]entity.Customer, error) {
	fragment = strings.TrimSpace(fragment)
	if len(fragment) < MinPhoneFragmentLen {
		return []entity.Customer{}, nil
	}
	return s.customerRepo.SearchByPhoneFragment(fragment, 10)
}

// Resolution 一次序列号解析的完整结果
type Resolution struct {
	Warranty entity.WarrantyInfo `json:"warranty"`
	Customer *entity.Customer    `json:"customer,omitempty"`
}

// ResolveBySerial 精确序列号解析。
// 未命中返回 repository.ErrNotFound，调用方据此走"保留现值"分支；
// 其余错误原样上抛并中止操作。
func (s *WarrantyService) ResolveBySerial(serial string) (*Resolution, error) {
	sp, err := s.productRepo.GetSoldProductBySerial(strings.TrimSpace(serial))
	if err != nil {
		return nil, err
	}

	res := &Resolution{
		Warranty: entity.ComputeWarranty(sp, time.Now()),
		Customer: sp.Customer,
	}
	return res, nil
}
