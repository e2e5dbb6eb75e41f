package entity

import (
	"time"
)

// Customer 客户实体
//
// phone 是唯一查找键：同一电话号码至多一个客户，由唯一索引约束。
type Customer struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string     `json:"name" gorm:"size:200;not null"`
	Phone     string     `json:"phone" gorm:"size:20;not null;uniqueIndex"`
	Email     string     `json:"email" gorm:"size:128"`
	Address   string     `json:"address" gorm:"size:500"`
	Notes     string     `json:"notes" gorm:"type:text"`
	CreatedBy string     `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}
