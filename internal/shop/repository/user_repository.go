package repository

import (
	"github.com/bitfantasy/fixera/internal/shop/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("username = ? AND deleted_at IS NULL", username).First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) Update(u *entity.User) error {
	return r.db.Save(u).Error
}

func (r *UserRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entity.User{}).Error
}

type UserListParams struct {
	Role    string
	Status  string
	Keyword string
	Page    int
	Size    int
}

func (r *UserRepository) List(params UserListParams) ([]entity.User, int64, error) {
	query := r.db.Model(&entity.User{}).Where("deleted_at IS NULL")
	if params.Role != "" {
		query = query.Where("role = ?", params.Role)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var users []entity.User
	err := query.Order("created_at DESC").Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&users).Error
	return users, total, err
}

// ListTechnicians 返回全部在职技术员，维修工单指派用
func (r *UserRepository) ListTechnicians() ([]entity.User, error) {
	var users []entity.User
	err := r.db.Where("role = ? AND status = ? AND deleted_at IS NULL", entity.RoleTechnician, entity.UserStatusActive).
		Order("first_name ASC").Find(&users).Error
	return users, err
}
