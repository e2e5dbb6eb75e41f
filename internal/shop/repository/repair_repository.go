package repository

import (
	"github.com/bitfantasy/fixera/internal/shop/entity"
	"gorm.io/gorm"
)

type RepairRepository struct {
	db *gorm.DB
}

func NewRepairRepository(db *gorm.DB) *RepairRepository {
	return &RepairRepository{db: db}
}

func (r *RepairRepository) Create(ro *entity.RepairOrder) error {
	return r.db.Create(ro).Error
}

func (r *RepairRepository) GetByID(id string) (*entity.RepairOrder, error) {
	var ro entity.RepairOrder
	err := r.db.Preload("Customer").Preload("Technician").
		Where("id = ? AND deleted_at IS NULL", id).First(&ro).Error
	if err != nil {
		return nil, translate(err)
	}
	return &ro, nil
}

func (r *RepairRepository) Update(ro *entity.RepairOrder) error {
	return r.db.Save(ro).Error
}

// UpdateStatus 仅更新工作流字段
func (r *RepairRepository) UpdateStatus(id string, status entity.RepairStatus) error {
	return r.db.Model(&entity.RepairOrder{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *RepairRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.RepairOrder{}).Error
}

type RepairListParams struct {
	Status       string
	TechnicianID string
	CustomerID   string
	Keyword      string
	Page         int
	Size         int
}

func (r *RepairRepository) List(params RepairListParams) ([]entity.RepairOrder, int64, error) {
	query := r.db.Model(&entity.RepairOrder{}).Where("deleted_at IS NULL")
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.TechnicianID != "" {
		query = query.Where("technician_id = ?", params.TechnicianID)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("repair_code ILIKE ? OR customer_name ILIKE ? OR customer_phone ILIKE ? OR serial_no ILIKE ?", kw, kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var orders []entity.RepairOrder
	err := query.Preload("Technician").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&orders).Error
	return orders, total, err
}

// ListAll 全量导出用，不分页
func (r *RepairRepository) ListAll() ([]entity.RepairOrder, error) {
	var orders []entity.RepairOrder
	err := r.db.Where("deleted_at IS NULL").Order("created_at DESC").Find(&orders).Error
	return orders, err
}
