package entity

import "gorm.io/gorm"

// AutoMigrate 自动迁移所有表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// 基础数据
		&User{},
		&Customer{},
		&Product{},
		&SoldProduct{},

		// 库存
		&Inventory{},
		&InventoryTransaction{},

		// 维修
		&RepairOrder{},
	)
}
