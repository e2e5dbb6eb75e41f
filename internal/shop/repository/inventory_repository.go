package repository

import (
	"github.com/bitfantasy/fixera/internal/shop/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetByProduct 获取指定商品的库存记录
func (r *InventoryRepository) GetByProduct(productID string) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.db.Where("product_id = ? AND deleted_at IS NULL", productID).First(&inv).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *InventoryRepository) Create(inv *entity.Inventory) error {
	return r.db.Create(inv).Error
}

func (r *InventoryRepository) Update(inv *entity.Inventory) error {
	return r.db.Save(inv).Error
}

func (r *InventoryRepository) CreateTransaction(tx *entity.InventoryTransaction) error {
	return r.db.Create(tx).Error
}

type InventoryListParams struct {
	ProductID string
	Keyword   string
	LowStock  bool
	Page      int
	Size      int
}

func (r *InventoryRepository) List(params InventoryListParams) ([]entity.Inventory, int64, error) {
	query := r.db.Model(&entity.Inventory{}).Where("deleted_at IS NULL")
	if params.ProductID != "" {
		query = query.Where("product_id = ?", params.ProductID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("product_name ILIKE ?", kw)
	}
	if params.LowStock {
		query = query.Where("quantity < safety_stock AND safety_stock > 0")
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var items []entity.Inventory
	err := query.Preload("Product").Order("updated_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&items).Error
	return items, total, err
}

func (r *InventoryRepository) ListTransactions(productID string, page, size int) ([]entity.InventoryTransaction, int64, error) {
	query := r.db.Model(&entity.InventoryTransaction{})
	if productID != "" {
		query = query.Where("product_id = ?", productID)
	}
	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	var txs []entity.InventoryTransaction
	err := query.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&txs).Error
	return txs, total, err
}

// GetAlerts 获取低于安全库存的商品列表
func (r *InventoryRepository) GetAlerts() ([]entity.Inventory, error) {
	var alerts []entity.Inventory
	err := r.db.Preload("Product").
		Where("quantity < safety_stock AND safety_stock > 0 AND deleted_at IS NULL").
		Find(&alerts).Error
	return alerts, err
}
