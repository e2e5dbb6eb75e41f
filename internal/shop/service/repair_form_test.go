package service

import (
	"testing"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/entity"
)

func testResolutionInfo() entity.WarrantyInfo {
	return entity.WarrantyInfo{
		SerialNo:        "SN-1001",
		ProductName:     "ThinkPad T14",
		Category:        "Laptop",
		PurchaseDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		WarrantyMonths:  12,
		IsUnderWarranty: true,
		RemainingDays:   280,
	}
}

func testResolutionCustomer() *entity.Customer {
	return &entity.Customer{
		ID:    "cust-001",
		Name:  "Kasun Perera",
		Phone: "0712345678",
		Email: "kasun@example.com",
	}
}

func TestApplyResolutionFillsAndLocks(t *testing.T) {
	d := NewRepairDraft()
	d.ApplyResolution("SN-1001", testResolutionInfo(), testResolutionCustomer())

	if d.Submission.CustomerName != "Kasun Perera" ||
		d.Submission.CustomerPhone != "0712345678" ||
		d.Submission.CustomerEmail != "kasun@example.com" {
		t.Errorf("customer fields not filled: %+v", d.Submission)
	}
	if d.Submission.DeviceType != "Laptop" || d.Submission.DeviceModel != "ThinkPad T14" {
		t.Errorf("device fields not filled: %+v", d.Submission)
	}
	if !d.UnderWarranty {
		t.Error("warranty flag should follow the resolution")
	}

	for _, f := range []string{
		FieldCustomerName, FieldCustomerPhone, FieldCustomerEmail,
		FieldDeviceType, FieldDeviceModel,
	} {
		if !d.IsLocked(f) {
			t.Errorf("field %q should be locked after resolution", f)
		}
	}

	if err := d.SetField(FieldCustomerName, "Someone Else"); err == nil {
		t.Error("editing a locked field should be rejected")
	}
}

func TestApplyResolutionOverwritesCustomerKeepsUserDevice(t *testing.T) {
	d := NewRepairDraft()
	// User typed values before scanning the serial.
	d.SetField(FieldCustomerName, "Typed Name")
	d.SetField(FieldDeviceType, "Desktop")

	d.ApplyResolution("SN-1001", testResolutionInfo(), testResolutionCustomer())

	// Customer fields are authoritative: typed value is replaced.
	if d.Submission.CustomerName != "Kasun Perera" {
		t.Errorf("customer name should be overwritten, got %q", d.Submission.CustomerName)
	}
	// Device fields keep the user's value and only lock.
	if d.Submission.DeviceType != "Desktop" {
		t.Errorf("user-entered device type should be kept, got %q", d.Submission.DeviceType)
	}
	if d.Submission.DeviceModel != "ThinkPad T14" {
		t.Errorf("empty device model should be filled, got %q", d.Submission.DeviceModel)
	}
}

func TestApplyResolutionWithoutCustomer(t *testing.T) {
	d := NewRepairDraft()
	d.SetField(FieldCustomerName, "Walk-in")

	d.ApplyResolution("SN-1001", testResolutionInfo(), nil)

	if d.Submission.CustomerName != "Walk-in" {
		t.Errorf("customer fields must be untouched when no owner is linked, got %q", d.Submission.CustomerName)
	}
	if d.IsLocked(FieldCustomerName) {
		t.Error("customer fields must stay editable when no owner is linked")
	}
	if !d.IsLocked(FieldDeviceType) {
		t.Error("device fields still lock on a successful resolution")
	}
}

func TestResolutionNotFoundUnlocksKeepsValues(t *testing.T) {
	d := NewRepairDraft()
	d.ApplyResolution("SN-1001", testResolutionInfo(), testResolutionCustomer())

	d.ResolutionNotFound()

	if d.Submission.CustomerName != "Kasun Perera" {
		t.Error("existing values must survive a failed lookup")
	}
	for _, f := range []string{FieldCustomerName, FieldDeviceType, FieldDeviceModel} {
		if d.IsLocked(f) {
			t.Errorf("field %q should be unlocked after a failed lookup", f)
		}
	}
	if err := d.SetField(FieldCustomerName, "Edited"); err != nil {
		t.Errorf("fields should be editable again: %v", err)
	}
}

func TestClearSerialCascadesCustomerFromResolution(t *testing.T) {
	d := NewRepairDraft()
	d.ApplyResolution("SN-1001", testResolutionInfo(), testResolutionCustomer())

	d.ClearSerial()

	if d.Submission.SerialNo != "" || d.Submission.DeviceType != "" || d.Submission.DeviceModel != "" {
		t.Errorf("device fields should be cleared: %+v", d.Submission)
	}
	if d.UnderWarranty {
		t.Error("warranty flag should be cleared with the serial")
	}
	// Customer came from the same resolution, so it cascades too.
	if d.Submission.CustomerName != "" || d.Submission.CustomerPhone != "" {
		t.Errorf("resolution-sourced customer should be cleared: %+v", d.Submission)
	}
	if d.IsLocked(FieldCustomerName) || d.IsLocked(FieldDeviceType) {
		t.Error("all locks should be released after clearing the serial")
	}
}

func TestClearSerialKeepsManualCustomer(t *testing.T) {
	d := NewRepairDraft()
	d.SetField(FieldCustomerName, "Manual Entry")
	d.SetField(FieldCustomerPhone, "0770000000")
	d.ApplyResolution("SN-1001", testResolutionInfo(), nil)

	d.ClearSerial()

	if d.Submission.CustomerName != "Manual Entry" || d.Submission.CustomerPhone != "0770000000" {
		t.Errorf("manually entered customer must survive serial clearing: %+v", d.Submission)
	}
	if d.Submission.DeviceType != "" {
		t.Error("device fields still clear with the serial")
	}
}

func TestClearCustomerLeavesDevice(t *testing.T) {
	d := NewRepairDraft()
	d.ApplyResolution("SN-1001", testResolutionInfo(), testResolutionCustomer())

	d.ClearCustomer()

	if d.Submission.CustomerName != "" || d.Submission.CustomerPhone != "" || d.Submission.CustomerEmail != "" {
		t.Errorf("customer fields should be cleared: %+v", d.Submission)
	}
	if d.Submission.SerialNo != "SN-1001" || d.Submission.DeviceType != "Laptop" {
		t.Errorf("serial and device fields must be untouched: %+v", d.Submission)
	}

	// A later serial clear must no longer cascade into the re-entered customer.
	d.SetField(FieldCustomerName, "New Customer")
	d.ClearSerial()
	if d.Submission.CustomerName != "New Customer" {
		t.Errorf("re-entered customer should survive serial clearing, got %q", d.Submission.CustomerName)
	}
}

func TestApplyResolutionReplacesEarlierAutoFill(t *testing.T) {
	d := NewRepairDraft()
	d.ApplyResolution("SN-1001", testResolutionInfo(), testResolutionCustomer())

	// Scanning a different unit without clearing first: values that came
	// from the previous resolution are not user input and must follow the
	// new serial.
	second := entity.WarrantyInfo{
		SerialNo:        "SN-2002",
		ProductName:     "MacBook Air",
		Category:        "Laptop",
		IsUnderWarranty: false,
	}
	other := &entity.Customer{
		ID:    "cust-002",
		Name:  "Nadeesha Silva",
		Phone: "0770000000",
		Email: "Not Available",
	}
	d.ApplyResolution("SN-2002", second, other)

	if d.Submission.SerialNo != "SN-2002" {
		t.Errorf("serial should follow the latest resolution, got %q", d.Submission.SerialNo)
	}
	if d.Submission.DeviceModel != "MacBook Air" {
		t.Errorf("auto-filled device model should follow the new serial, got %q", d.Submission.DeviceModel)
	}
	if d.Submission.CustomerName != "Nadeesha Silva" {
		t.Errorf("customer should follow the new serial, got %q", d.Submission.CustomerName)
	}
	if d.UnderWarranty {
		t.Error("warranty flag should follow the new resolution")
	}
}

func TestApplyResolutionKeepsUserDeviceAcrossResolutions(t *testing.T) {
	d := NewRepairDraft()
	// Typed by the user before any scan: stays user-provided forever.
	d.SetField(FieldDeviceModel, "Custom Build")

	d.ApplyResolution("SN-1001", testResolutionInfo(), nil)
	if d.Submission.DeviceModel != "Custom Build" {
		t.Fatalf("user-entered model replaced on first resolution: %q", d.Submission.DeviceModel)
	}

	second := entity.WarrantyInfo{SerialNo: "SN-2002", ProductName: "MacBook Air", Category: "Laptop"}
	d.ApplyResolution("SN-2002", second, nil)
	if d.Submission.DeviceModel != "Custom Build" {
		t.Errorf("user-entered model replaced on second resolution: %q", d.Submission.DeviceModel)
	}
}

func TestSetFieldUnknown(t *testing.T) {
	d := NewRepairDraft()
	if err := d.SetField("nonsense", "x"); err == nil {
		t.Error("unknown field name should be rejected")
	}
}
