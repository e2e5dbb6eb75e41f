package repository

import (
	"github.com/bitfantasy/fixera/internal/shop/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// GetByPhone 精确电话查找，客户去重的入口
func (r *CustomerRepository) GetByPhone(phone string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("phone = ? AND deleted_at IS NULL", phone).First(&c).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// SearchByPhoneFragment 电话号码子串模糊匹配，搜索即输入用
func (r *CustomerRepository) SearchByPhoneFragment(fragment string, limit int) ([]entity.Customer, error) {
	if limit <= 0 {
		limit = 10
	}
	var customers []entity.Customer
	err := r.db.Where("phone ILIKE ? AND deleted_at IS NULL", "%"+fragment+"%").
		Order("phone ASC").Limit(limit).Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.Customer{}).Error
}

type CustomerListParams struct {
	Keyword string
	Page    int
	Size    int
}

func (r *CustomerRepository) List(params CustomerListParams) ([]entity.Customer, int64, error) {
	query := r.db.Model(&entity.Customer{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var customers []entity.Customer
	err := query.Order("created_at DESC").Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&customers).Error
	return customers, total, err
}
