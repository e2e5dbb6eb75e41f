package entity

import (
	"time"
)

// TransactionType 库存交易类型
const (
	TxTypePurchaseIn = "PURCHASE_IN" // 采购入库
	TxTypeReturnIn   = "RETURN_IN"   // 退货入库
	TxTypeSalesOut   = "SALES_OUT"   // 销售出库
	TxTypeRepairOut  = "REPAIR_OUT"  // 维修领料
	TxTypeAdjust     = "ADJUST"      // 库存调整
)

// Inventory 库存记录（每商品一行）
type Inventory struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID   string     `json:"product_id" gorm:"type:uuid;not null;uniqueIndex"`
	ProductName string     `json:"product_name" gorm:"size:200"`
	Quantity    float64    `json:"quantity" gorm:"type:decimal(12,2);not null;default:0"`
	SafetyStock float64    `json:"safety_stock" gorm:"type:decimal(12,2);default:0"`
	Unit        string     `json:"unit" gorm:"size:20;not null;default:pcs"`
	LastMovedAt *time.Time `json:"last_moved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (Inventory) TableName() string {
	return "inventory"
}

// InventoryTransaction 库存交易记录
type InventoryTransaction struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProductID       string    `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName     string    `json:"product_name" gorm:"size:200"`
	TransactionType string    `json:"transaction_type" gorm:"size:20;not null"`
	Quantity        float64   `json:"quantity" gorm:"type:decimal(12,2);not null"` // 正=入，负=出
	ReferenceType   string    `json:"reference_type" gorm:"size:50"` // REPAIR, SALE, PURCHASE
	ReferenceID     string    `json:"reference_id" gorm:"size:64"`
	Notes           string    `json:"notes" gorm:"type:text"`
	CreatedBy       string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt       time.Time `json:"created_at"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
