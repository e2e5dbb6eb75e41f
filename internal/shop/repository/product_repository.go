package repository

import (
	"github.com/bitfantasy/fixera/internal/shop/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// --- Product ---

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.Product{}).Error
}

type ProductListParams struct {
	Category string
	Status   string
	Keyword  string
	Page     int
	Size     int
}

func (r *ProductRepository) List(params ProductListParams) ([]entity.Product, int64, error) {
	query := r.db.Model(&entity.Product{}).Where("deleted_at IS NULL")
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR product_code ILIKE ? OR brand ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var products []entity.Product
	err := query.Order("created_at DESC").Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&products).Error
	return products, total, err
}

// --- SoldProduct ---

func (r *ProductRepository) CreateSoldProduct(sp *entity.SoldProduct) error {
	return r.db.Create(sp).Error
}

// GetSoldProductBySerial 精确序列号查找，保修解析的入口
func (r *ProductRepository) GetSoldProductBySerial(serial string) (*entity.SoldProduct, error) {
	var sp entity.SoldProduct
	err := r.db.Preload("Product").Preload("Customer").
		Where("serial_no = ? AND deleted_at IS NULL", serial).First(&sp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

// SearchSoldProductsBySerialFragment 序列号子串模糊匹配，搜索即输入用
func (r *ProductRepository) SearchSoldProductsBySerialFragment(fragment string, limit int) ([]entity.SoldProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	var items []entity.SoldProduct
	err := r.db.Preload("Product").
		Where("serial_no ILIKE ? AND deleted_at IS NULL", "%"+fragment+"%").
		Order("serial_no ASC").Limit(limit).Find(&items).Error
	return items, err
}
