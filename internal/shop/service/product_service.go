package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/google/uuid"
)

// ProductService 商品与售出记录服务
type ProductService struct {
	repo          *repository.ProductRepository
	customerRepo  *repository.CustomerRepository
	inventoryRepo *repository.InventoryRepository
}

func NewProductService(repo *repository.ProductRepository, customerRepo *repository.CustomerRepository, inventoryRepo *repository.InventoryRepository) *ProductService {
	return &ProductService{repo: repo, customerRepo: customerRepo, inventoryRepo: inventoryRepo}
}

type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	Price          float64 `json:"price" binding:"gte=0"`
	WarrantyMonths int     `json:"warranty_months" binding:"gte=0"`
	Notes          string  `json:"notes"`
}

func (s *ProductService) Create(req CreateProductRequest, userID string) (*entity.Product, error) {
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		ProductCode:    fmt.Sprintf("PRD-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		Name:           strings.TrimSpace(req.Name),
		Category:       req.Category,
		Brand:          req.Brand,
		Price:          req.Price,
		WarrantyMonths: req.WarrantyMonths,
		Status:         entity.ProductStatusActive,
		Notes:          req.Notes,
		CreatedBy:      userID,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("创建商品失败: %w", err)
	}
	return product, nil
}

func (s *ProductService) GetByID(id string) (*entity.Product, error) {
	return s.repo.GetByID(id)
}

type UpdateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	Price          float64 `json:"price" binding:"gte=0"`
	WarrantyMonths int     `json:"warranty_months" binding:"gte=0"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
}

func (s *ProductService) Update(id string, req UpdateProductRequest) (*entity.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Category = req.Category
	product.Brand = req.Brand
	product.Price = req.Price
	product.WarrantyMonths = req.WarrantyMonths
	if req.Status != "" {
		product.Status = req.Status
	}
	product.Notes = req.Notes

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("更新商品失败: %w", err)
	}
	return product, nil
}

func (s *ProductService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *ProductService) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	return s.repo.List(params)
}

// --- SoldProduct ---

type RecordSaleRequest struct {
	ProductID    string `json:"product_id" binding:"required"`
	SerialNo     string `json:"serial_no" binding:"required"`
	CustomerID   string `json:"customer_id"`
	PurchaseDate string `json:"purchase_date"` // YYYY-MM-DD，缺省为当天
}

// RecordSale 登记一台序列号单品的售出，并同步扣减库存
func (s *ProductService) RecordSale(req RecordSaleRequest, userID string) (*entity.SoldProduct, error) {
	product, err := s.repo.GetByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("商品不存在: %w", err)
	}

	if req.CustomerID != "" {
		if _, err := s.customerRepo.GetByID(req.CustomerID); err != nil {
			return nil, fmt.Errorf("客户不存在: %w", err)
		}
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		purchaseDate, err = time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("购买日期格式错误: %w", err)
		}
	}

	sp := &entity.SoldProduct{
		ID:           uuid.New().String(),
		SerialNo:     strings.TrimSpace(req.SerialNo),
		ProductID:    product.ID,
		PurchaseDate: purchaseDate,
		SoldBy:       userID,
	}
	if req.CustomerID != "" {
		sp.CustomerID = &req.CustomerID
	}
	if err := s.repo.CreateSoldProduct(sp); err != nil {
		return nil, fmt.Errorf("登记售出记录失败: %w", err)
	}

	// 库存存在则出库一件；没有库存记录的商品（如代售）跳过
	if inv, err := s.inventoryRepo.GetByProduct(product.ID); err == nil {
		now := time.Now()
		inv.Quantity -= 1
		inv.LastMovedAt = &now
		if err := s.inventoryRepo.Update(inv); err != nil {
			return nil, fmt.Errorf("扣减库存失败: %w", err)
		}
		tx := &entity.InventoryTransaction{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			ProductName:     product.Name,
			TransactionType: entity.TxTypeSalesOut,
			Quantity:        -1,
			ReferenceType:   "SALE",
			ReferenceID:     sp.ID,
			CreatedBy:       userID,
		}
		if err := s.inventoryRepo.CreateTransaction(tx); err != nil {
			return nil, fmt.Errorf("记录库存交易失败: %w", err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("库存查找失败: %w", err)
	}

	return sp, nil
}

func (s *ProductService) GetSoldProductBySerial(serial string) (*entity.SoldProduct, error) {
	return s.repo.GetSoldProductBySerial(serial)
}
