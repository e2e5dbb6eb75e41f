package service

import (
	"fmt"

	"github.com/bitfantasy/fixera/internal/shop/entity"
)

// 可锁定/可自动填充的字段名
const (
	FieldCustomerName  = "customer_name"
	FieldCustomerPhone = "customer_phone"
	FieldCustomerEmail = "customer_email"
	FieldDeviceType    = "device_type"
	FieldDeviceModel   = "device_model"
)

// RepairDraft 维修工单草稿：在提交前承载序列号解析的自动填充、
// 字段锁定与级联清除语义。
//
// 序列号解析成功后：客户三项无条件覆盖并锁定；设备两项仅在用户
// 未填写时填充；保修标记取解析结果。解析失败（未找到）时既有值
// 原样保留，已锁定字段全部解锁。
type RepairDraft struct {
	Submission    RepairSubmission
	UnderWarranty bool

	locked     map[string]bool
	autoFilled map[string]bool

	// 客户字段是否由当前序列号解析带入：决定清除序列号时是否级联清除客户
	customerFromSerial bool
}

// NewRepairDraft 创建空草稿
func NewRepairDraft() *RepairDraft {
	return &RepairDraft{
		locked:     make(map[string]bool),
		autoFilled: make(map[string]bool),
	}
}

// SetField 写入用户输入，锁定中的字段拒绝直接编辑
func (d *RepairDraft) SetField(name, value string) error {
	if d.locked[name] {
		return fmt.Errorf("field %s is locked by the serial number lookup", name)
	}
	switch name {
	case FieldCustomerName:
		d.Submission.CustomerName = value
	case FieldCustomerPhone:
		d.Submission.CustomerPhone = value
	case FieldCustomerEmail:
		d.Submission.CustomerEmail = value
	case FieldDeviceType:
		d.Submission.DeviceType = value
	case FieldDeviceModel:
		d.Submission.DeviceModel = value
	default:
		return fmt.Errorf("unknown field: %s", name)
	}
	delete(d.autoFilled, name)
	return nil
}

// ApplyResolution 序列号解析成功后的自动填充。
// customer 可能为空（售出记录未关联买家），此时仅填充设备与保修。
func (d *RepairDraft) ApplyResolution(serial string, info entity.WarrantyInfo, customer *entity.Customer) {
	d.Submission.SerialNo = serial

	if customer != nil {
		d.Submission.CustomerName = customer.Name
		d.Submission.CustomerPhone = customer.Phone
		d.Submission.CustomerEmail = customer.Email
		for _, f := range []string{FieldCustomerName, FieldCustomerPhone, FieldCustomerEmail} {
			d.locked[f] = true
			d.autoFilled[f] = true
		}
		d.customerFromSerial = true
	}

	// 设备字段只在用户没填过时带入；上一次解析自动带入的值
	// 不算用户输入，换序列号后跟着换
	if d.Submission.DeviceType == "" || d.autoFilled[FieldDeviceType] {
		d.Submission.DeviceType = info.Category
		d.autoFilled[FieldDeviceType] = true
	}
	if d.Submission.DeviceModel == "" || d.autoFilled[FieldDeviceModel] {
		d.Submission.DeviceModel = info.ProductName
		d.autoFilled[FieldDeviceModel] = true
	}
	d.locked[FieldDeviceType] = true
	d.locked[FieldDeviceModel] = true

	d.UnderWarranty = info.IsUnderWarranty
}

// ResolutionNotFound 解析未命中：既有值不动，解锁全部字段
func (d *RepairDraft) ResolutionNotFound() {
	d.locked = make(map[string]bool)
}

// ClearSerial 清除序列号：级联清除设备字段与保修标记；
// 若客户字段来自同一次序列号解析，一并清除。
func (d *RepairDraft) ClearSerial() {
	d.Submission.SerialNo = ""
	d.Submission.DeviceType = ""
	d.Submission.DeviceModel = ""
	d.UnderWarranty = false
	delete(d.locked, FieldDeviceType)
	delete(d.locked, FieldDeviceModel)
	delete(d.autoFilled, FieldDeviceType)
	delete(d.autoFilled, FieldDeviceModel)

	if d.customerFromSerial {
		d.clearCustomerFields()
		d.customerFromSerial = false
	}
}

// ClearCustomer 仅清除客户字段，不影响设备字段
func (d *RepairDraft) ClearCustomer() {
	d.clearCustomerFields()
	d.customerFromSerial = false
}

func (d *RepairDraft) clearCustomerFields() {
	d.Submission.CustomerName = ""
	d.Submission.CustomerPhone = ""
	d.Submission.CustomerEmail = ""
	for _, f := range []string{FieldCustomerName, FieldCustomerPhone, FieldCustomerEmail} {
		delete(d.locked, f)
		delete(d.autoFilled, f)
	}
}

// IsLocked 字段当前是否被解析锁定
func (d *RepairDraft) IsLocked(name string) bool {
	return d.locked[name]
}
