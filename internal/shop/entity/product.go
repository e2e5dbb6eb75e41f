package entity

import (
	"time"
)

// ProductStatus 商品状态
const (
	ProductStatusActive       = "ACTIVE"
	ProductStatusDiscontinued = "DISCONTINUED"
)

// Product 商品实体（目录条目）
type Product struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductCode    string     `json:"product_code" gorm:"size:50;not null;uniqueIndex"`
	Name           string     `json:"name" gorm:"size:200;not null"`
	Category       string     `json:"category" gorm:"size:100"`
	Brand          string     `json:"brand" gorm:"size:100"`
	Price          float64    `json:"price" gorm:"type:decimal(12,2);default:0"`
	WarrantyMonths int        `json:"warranty_months" gorm:"not null;default:0"`
	Status         string     `json:"status" gorm:"size:20;not null;default:ACTIVE"`
	Notes          string     `json:"notes" gorm:"type:text"`
	CreatedBy      string     `json:"created_by" gorm:"size:64"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at" gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}

// SoldProduct 已售出的序列号单品，保修查询的数据来源
type SoldProduct struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SerialNo     string     `json:"serial_no" gorm:"size:100;not null;uniqueIndex"`
	ProductID    string     `json:"product_id" gorm:"type:uuid;not null;index"`
	CustomerID   *string    `json:"customer_id" gorm:"type:uuid;index"` // 未登记买家时为空
	PurchaseDate time.Time  `json:"purchase_date" gorm:"not null"`
	SoldBy       string     `json:"sold_by" gorm:"size:64"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`

	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (SoldProduct) TableName() string {
	return "sold_products"
}
