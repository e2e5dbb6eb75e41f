package entity

import (
	"time"

	"gorm.io/gorm"
)

// RepairOrder 维修工单
//
// 客户字段冗余一份快照，customer_id 始终指向已解析的客户记录。
// due_amount 不落库，读取时由 AfterFind 计算。
type RepairOrder struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RepairCode string `json:"repair_code" gorm:"size:50;not null;uniqueIndex"`

	// 客户
	CustomerID    string `json:"customer_id" gorm:"type:uuid;not null;index"`
	CustomerName  string `json:"customer_name" gorm:"size:200;not null"`
	CustomerPhone string `json:"customer_phone" gorm:"size:20;not null;index"`
	CustomerEmail string `json:"customer_email" gorm:"size:128;not null"`

	// 设备
	DeviceType    string `json:"device_type" gorm:"size:100;not null"`
	DeviceModel   string `json:"device_model" gorm:"size:100;not null"`
	SerialNo      string `json:"serial_no" gorm:"size:100;index"`
	UnderWarranty bool   `json:"under_warranty" gorm:"not null;default:false"`

	// 故障与备注
	Issue string `json:"issue" gorm:"type:text;not null"`
	Notes string `json:"notes" gorm:"size:500"`

	// 费用
	EstimatedCost  float64 `json:"estimated_cost" gorm:"type:decimal(12,2);not null"`
	AdvancePayment float64 `json:"advance_payment" gorm:"type:decimal(12,2);default:0"`
	ExtraExpenses  float64 `json:"extra_expenses" gorm:"type:decimal(12,2);default:0"`
	DueAmount      float64 `json:"due_amount" gorm:"-"`

	// 工作流
	Status         RepairStatus `json:"status" gorm:"size:20;not null;default:Pending"`
	TechnicianID   string       `json:"technician_id" gorm:"type:uuid;not null;index"`
	TechnicianName string       `json:"technician_name" gorm:"size:128"`
	Deadline       time.Time    `json:"deadline" gorm:"not null"`
	DateReceived   time.Time    `json:"date_received" gorm:"not null"`

	CreatedBy string     `json:"created_by" gorm:"size:64;not null"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Technician *User     `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
}

func (RepairOrder) TableName() string {
	return "repair_orders"
}

// ComputeDueAmount 应收 = 预估费用 + 额外开销 - 预付款
func (r *RepairOrder) ComputeDueAmount() float64 {
	return r.EstimatedCost + r.ExtraExpenses - r.AdvancePayment
}

// AfterFind 填充派生字段
func (r *RepairOrder) AfterFind(tx *gorm.DB) error {
	r.DueAmount = r.ComputeDueAmount()
	return nil
}
