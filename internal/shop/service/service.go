package service

import (
	"github.com/bitfantasy/fixera/internal/config"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/redis/go-redis/v9"
)

// Services 服务集合
type Services struct {
	Auth      *AuthService
	User      *UserService
	Customer  *CustomerService
	Product   *ProductService
	Inventory *InventoryService
	Repair    *RepairService
	Warranty  *WarrantyService
	Report    *ReportService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	warranty := NewWarrantyService(repos.Product, repos.Customer)
	return &Services{
		Auth:      NewAuthService(repos.User, rdb, cfg),
		User:      NewUserService(repos.User, rdb),
		Customer:  NewCustomerService(repos.Customer),
		Product:   NewProductService(repos.Product, repos.Customer, repos.Inventory),
		Inventory: NewInventoryService(repos.Inventory, repos.Product),
		Repair:    NewRepairService(repos.Repair, repos.Customer, repos.User),
		Warranty:  warranty,
		Report:    NewReportService(repos.Repair, repos.Inventory),
	}
}
