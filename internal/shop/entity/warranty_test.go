package entity

import (
	"testing"
	"time"
)

func soldUnit(purchased time.Time, warrantyMonths int) *SoldProduct {
	return &SoldProduct{
		SerialNo:     "SN-TEST-001",
		PurchaseDate: purchased,
		Product: &Product{
			Name:           "ThinkPad T14",
			Category:       "Laptop",
			WarrantyMonths: warrantyMonths,
		},
	}
}

func TestComputeWarrantyActive(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	purchased := now.AddDate(0, 0, -30) // 12-month warranty, one month in

	info := ComputeWarranty(soldUnit(purchased, 12), now)

	if !info.IsUnderWarranty {
		t.Error("unit 30 days into a 12-month warranty should be covered")
	}
	if info.RemainingDays <= 0 {
		t.Errorf("remaining days should be positive, got %d", info.RemainingDays)
	}
	if info.ProductName != "ThinkPad T14" || info.Category != "Laptop" {
		t.Errorf("product fields not carried over: %+v", info)
	}
}

func TestComputeWarrantyExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	purchased := now.AddDate(0, -4, 0) // 3-month warranty, expired a month ago

	info := ComputeWarranty(soldUnit(purchased, 3), now)

	if info.IsUnderWarranty {
		t.Error("unit past its warranty period should not be covered")
	}
	if info.RemainingDays != 0 {
		t.Errorf("expired warranty must report 0 remaining days, got %d", info.RemainingDays)
	}
}

func TestComputeWarrantyBoundaryDay(t *testing.T) {
	// Coverage holds through the exact expiry instant.
	purchased := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	expiry := purchased.AddDate(0, 3, 0)

	info := ComputeWarranty(soldUnit(purchased, 3), expiry)
	if !info.IsUnderWarranty {
		t.Error("warranty should still hold at the expiry instant")
	}

	info = ComputeWarranty(soldUnit(purchased, 3), expiry.Add(time.Second))
	if info.IsUnderWarranty {
		t.Error("warranty should lapse immediately after the expiry instant")
	}
}

func TestComputeWarrantyNoProduct(t *testing.T) {
	sp := &SoldProduct{
		SerialNo:     "SN-ORPHAN",
		PurchaseDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	info := ComputeWarranty(sp, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	// Zero warranty months means coverage ended on the purchase day.
	if info.IsUnderWarranty {
		t.Error("unit without product data should not report coverage")
	}
	if info.SerialNo != "SN-ORPHAN" {
		t.Errorf("serial not carried over: %q", info.SerialNo)
	}
}
