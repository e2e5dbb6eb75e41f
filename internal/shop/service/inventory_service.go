package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/google/uuid"
)

// InventoryService 库存服务
type InventoryService struct {
	repo        *repository.InventoryRepository
	productRepo *repository.ProductRepository
}

func NewInventoryService(repo *repository.InventoryRepository, productRepo *repository.ProductRepository) *InventoryService {
	return &InventoryService{repo: repo, productRepo: productRepo}
}

type MovementRequest struct {
	ProductID     string  `json:"product_id" binding:"required"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	ReferenceType string  `json:"reference_type"`
	ReferenceID   string  `json:"reference_id"`
	Notes         string  `json:"notes"`
}

// Inbound 入库。商品首次入库时自动建立库存记录
func (s *InventoryService) Inbound(req MovementRequest, txType, userID string) (*entity.Inventory, error) {
	if txType != entity.TxTypePurchaseIn && txType != entity.TxTypeReturnIn {
		return nil, fmt.Errorf("无效的入库类型: %s", txType)
	}

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("商品不存在: %w", err)
	}

	now := time.Now()
	inv, err := s.repo.GetByProduct(product.ID)
	if errors.Is(err, repository.ErrNotFound) {
		inv = &entity.Inventory{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    req.Quantity,
			LastMovedAt: &now,
		}
		if err := s.repo.Create(inv); err != nil {
			return nil, fmt.Errorf("创建库存记录失败: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("库存查找失败: %w", err)
	} else {
		inv.Quantity += req.Quantity
		inv.LastMovedAt = &now
		if err := s.repo.Update(inv); err != nil {
			return nil, fmt.Errorf("更新库存失败: %w", err)
		}
	}

	if err := s.recordTransaction(product, txType, req.Quantity, req, userID); err != nil {
		return nil, err
	}
	return inv, nil
}

// Outbound 出库。数量不足时拒绝
func (s *InventoryService) Outbound(req MovementRequest, txType, userID string) (*entity.Inventory, error) {
	if txType != entity.TxTypeSalesOut && txType != entity.TxTypeRepairOut {
		return nil, fmt.Errorf("无效的出库类型: %s", txType)
	}

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("商品不存在: %w", err)
	}

	inv, err := s.repo.GetByProduct(product.ID)
	if err != nil {
		return nil, fmt.Errorf("库存查找失败: %w", err)
	}
	if inv.Quantity < req.Quantity {
		return nil, fmt.Errorf("库存不足: 现有 %.2f, 需要 %.2f", inv.Quantity, req.Quantity)
	}

	now := time.Now()
	inv.Quantity -= req.Quantity
	inv.LastMovedAt = &now
	if err := s.repo.Update(inv); err != nil {
		return nil, fmt.Errorf("更新库存失败: %w", err)
	}

	if err := s.recordTransaction(product, txType, -req.Quantity, req, userID); err != nil {
		return nil, err
	}
	return inv, nil
}

type AdjustRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	NewQuantity float64 `json:"new_quantity" binding:"gte=0"`
	SafetyStock float64 `json:"safety_stock" binding:"gte=0"`
	Notes       string  `json:"notes"`
}

// Adjust 盘点调整，将库存数量直接设为实际值
func (s *InventoryService) Adjust(req AdjustRequest, userID string) (*entity.Inventory, error) {
	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("商品不存在: %w", err)
	}

	now := time.Now()
	inv, err := s.repo.GetByProduct(product.ID)
	if errors.Is(err, repository.ErrNotFound) {
		inv = &entity.Inventory{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			LastMovedAt: &now,
		}
		if err := s.repo.Create(inv); err != nil {
			return nil, fmt.Errorf("创建库存记录失败: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("库存查找失败: %w", err)
	}

	delta := req.NewQuantity - inv.Quantity
	inv.Quantity = req.NewQuantity
	inv.SafetyStock = req.SafetyStock
	inv.LastMovedAt = &now
	if err := s.repo.Update(inv); err != nil {
		return nil, fmt.Errorf("更新库存失败: %w", err)
	}

	if delta != 0 {
		tx := &entity.InventoryTransaction{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			ProductName:     product.Name,
			TransactionType: entity.TxTypeAdjust,
			Quantity:        delta,
			Notes:           req.Notes,
			CreatedBy:       userID,
		}
		if err := s.repo.CreateTransaction(tx); err != nil {
			return nil, fmt.Errorf("记录库存交易失败: %w", err)
		}
	}
	return inv, nil
}

func (s *InventoryService) recordTransaction(product *entity.Product, txType string, qty float64, req MovementRequest, userID string) error {
	tx := &entity.InventoryTransaction{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		TransactionType: txType,
		Quantity:        qty,
		ReferenceType:   req.ReferenceType,
		ReferenceID:     req.ReferenceID,
		Notes:           req.Notes,
		CreatedBy:       userID,
	}
	if err := s.repo.CreateTransaction(tx); err != nil {
		return fmt.Errorf("记录库存交易失败: %w", err)
	}
	return nil
}

func (s *InventoryService) GetByProduct(productID string) (*entity.Inventory, error) {
	return s.repo.GetByProduct(productID)
}

func (s *InventoryService) List(params repository.InventoryListParams) ([]entity.Inventory, int64, error) {
	return s.repo.List(params)
}

func (s *InventoryService) ListTransactions(productID string, page, size int) ([]entity.InventoryTransaction, int64, error) {
	return s.repo.ListTransactions(productID, page, size)
}

func (s *InventoryService) GetAlerts() ([]entity.Inventory, error) {
	return s.repo.GetAlerts()
}
