package entity

import (
	"time"
)

// UserRole 用户角色
const (
	RoleAdmin      = "Admin"
	RoleCashier    = "Cashier"
	RoleTechnician = "Technician"
)

// UserStatus 用户状态
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User 用户实体
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username     string     `json:"username" gorm:"size:64;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:128;not null"`
	FirstName    string     `json:"first_name" gorm:"size:64;not null"`
	LastName     string     `json:"last_name" gorm:"size:64"`
	Email        string     `json:"email" gorm:"size:128"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Role         string     `json:"role" gorm:"size:20;not null;default:Cashier"`
	Status       string     `json:"status" gorm:"size:16;not null;default:active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// IsActive 用户是否可登录
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
