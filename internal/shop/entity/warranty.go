package entity

import (
	"time"
)

// WarrantyInfo 按序列号解析出的保修信息，只读派生，不落库
type WarrantyInfo struct {
	SerialNo        string    `json:"serial_no"`
	ProductName     string    `json:"product_name"`
	Category        string    `json:"category"`
	PurchaseDate    time.Time `json:"purchase_date"`
	WarrantyMonths  int       `json:"warranty_months"`
	IsUnderWarranty bool      `json:"is_under_warranty"`
	RemainingDays   int       `json:"warranty_remaining_days"`
}

// ComputeWarranty 由购买日期和保修月数推导当前保修状态。
// 不变式：is_under_warranty == (today ≤ purchase_date + warranty_months)。
// 过保后 remaining_days 固定为 0，不出现负数。
func ComputeWarranty(sp *SoldProduct, now time.Time) WarrantyInfo {
	info := WarrantyInfo{
		SerialNo:     sp.SerialNo,
		PurchaseDate: sp.PurchaseDate,
	}
	if sp.Product != nil {
		info.ProductName = sp.Product.Name
		info.Category = sp.Product.Category
		info.WarrantyMonths = sp.Product.WarrantyMonths
	}

	expiry := sp.PurchaseDate.AddDate(0, info.WarrantyMonths, 0)
	if !now.After(expiry) {
		info.IsUnderWarranty = true
		info.RemainingDays = int(expiry.Sub(now).Hours() / 24)
	}
	return info
}
