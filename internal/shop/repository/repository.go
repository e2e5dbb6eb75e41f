package repository

import (
	"errors"

	"gorm.io/gorm"
)

// 错误定义
var (
	ErrNotFound = errors.New("record not found")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Repositories 仓库集合
type Repositories struct {
	User      *UserRepository
	Customer  *CustomerRepository
	Product   *ProductRepository
	Inventory *InventoryRepository
	Repair    *RepairRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Customer:  NewCustomerRepository(db),
		Product:   NewProductRepository(db),
		Inventory: NewInventoryRepository(db),
		Repair:    NewRepairRepository(db),
	}
}
