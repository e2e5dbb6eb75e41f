package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/google/uuid"
)

// ErrValidation 字段校验失败时与字段错误映射一起返回
var ErrValidation = errors.New("validation failed")

// RepairService 维修工单服务
type RepairService struct {
	repo         *repository.RepairRepository
	customerRepo *repository.CustomerRepository
	userRepo     *repository.UserRepository
}

func NewRepairService(repo *repository.RepairRepository, customerRepo *repository.CustomerRepository, userRepo *repository.UserRepository) *RepairService {
	return &RepairService{repo: repo, customerRepo: customerRepo, userRepo: userRepo}
}

// CreateRepairRequest 创建维修工单请求
type CreateRepairRequest struct {
	RepairSubmission
	UnderWarranty bool `json:"under_warranty"`
}

// Create 校验、解析客户身份并落库。
// 字段校验失败返回 (nil, fieldErrs, ErrValidation)，不发出任何持久化调用。
func (s *RepairService) Create(req CreateRepairRequest, userID string) (*entity.RepairOrder, map[string]string, error) {
	now := time.Now()
	if fieldErrs := req.ValidateAll(now); len(fieldErrs) > 0 {
		return nil, fieldErrs, ErrValidation
	}

	technician, err := s.resolveTechnician(req.TechnicianID)
	if err != nil {
		return nil, nil, err
	}

	phone := NormalizePhone(req.CustomerPhone)
	customer, err := s.resolveOrCreateCustomer(req.CustomerName, phone, req.CustomerEmail, userID)
	if err != nil {
		return nil, nil, err
	}

	estimated, advance, extra := req.Amounts()
	deadline, _ := time.Parse("2006-01-02", req.Deadline)

	order := &entity.RepairOrder{
		ID:             uuid.New().String(),
		RepairCode:     fmt.Sprintf("REP-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerPhone:  customer.Phone,
		CustomerEmail:  customer.Email,
		DeviceType:     strings.TrimSpace(req.DeviceType),
		DeviceModel:    strings.TrimSpace(req.DeviceModel),
		SerialNo:       strings.TrimSpace(req.SerialNo),
		UnderWarranty:  req.UnderWarranty,
		Issue:          strings.TrimSpace(req.Issue),
		Notes:          req.Notes,
		EstimatedCost:  estimated,
		AdvancePayment: advance,
		ExtraExpenses:  extra,
		Status:         entity.StatusPending,
		TechnicianID:   technician.ID,
		TechnicianName: DisplayName(technician),
		Deadline:       deadline,
		DateReceived:   now,
		CreatedBy:      userID,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, nil, fmt.Errorf("创建维修工单失败: %w", err)
	}
	order.DueAmount = order.ComputeDueAmount()
	return order, nil, nil
}

// Update 编辑非工作流字段。状态不在此处变更。
func (s *RepairService) Update(id string, req CreateRepairRequest, userID string) (*entity.RepairOrder, map[string]string, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	// 截止日期以工单收件日为基准校验，旧单过了原截止日期仍可编辑其他字段
	if fieldErrs := req.ValidateAll(order.DateReceived); len(fieldErrs) > 0 {
		return nil, fieldErrs, ErrValidation
	}

	technician, err := s.resolveTechnician(req.TechnicianID)
	if err != nil {
		return nil, nil, err
	}

	phone := NormalizePhone(req.CustomerPhone)
	customer, err := s.resolveOrCreateCustomer(req.CustomerName, phone, req.CustomerEmail, userID)
	if err != nil {
		return nil, nil, err
	}

	estimated, advance, extra := req.Amounts()
	deadline, _ := time.Parse("2006-01-02", req.Deadline)

	order.CustomerID = customer.ID
	order.CustomerName = customer.Name
	order.CustomerPhone = customer.Phone
	order.CustomerEmail = customer.Email
	order.DeviceType = strings.TrimSpace(req.DeviceType)
	order.DeviceModel = strings.TrimSpace(req.DeviceModel)
	order.SerialNo = strings.TrimSpace(req.SerialNo)
	order.UnderWarranty = req.UnderWarranty
	order.Issue = strings.TrimSpace(req.Issue)
	order.Notes = req.Notes
	order.EstimatedCost = estimated
	order.AdvancePayment = advance
	order.ExtraExpenses = extra
	order.TechnicianID = technician.ID
	order.TechnicianName = DisplayName(technician)
	order.Deadline = deadline

	if err := s.repo.Update(order); err != nil {
		return nil, nil, fmt.Errorf("更新维修工单失败: %w", err)
	}
	order.DueAmount = order.ComputeDueAmount()
	return order, nil, nil
}

// ChangeStatus 单向推进工单状态。非法迁移不发出任何更新调用。
func (s *RepairService) ChangeStatus(id, next string) (*entity.RepairOrder, error) {
	nextStatus, err := entity.ParseRepairStatus(next)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if msg := entity.ExplainInvalidTransition(order.Status, nextStatus); msg != "" {
		return nil, errors.New(msg)
	}

	if err := s.repo.UpdateStatus(id, nextStatus); err != nil {
		return nil, fmt.Errorf("更新工单状态失败: %w", err)
	}
	order.Status = nextStatus
	return order, nil
}

// NextStatuses 当前工单可推进到的状态列表
func (s *RepairService) NextStatuses(id string) ([]entity.RepairStatus, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return entity.ValidNextStatuses(order.Status), nil
}

func (s *RepairService) GetByID(id string) (*entity.RepairOrder, error) {
	return s.repo.GetByID(id)
}

func (s *RepairService) List(params repository.RepairListParams) ([]entity.RepairOrder, int64, error) {
	return s.repo.List(params)
}

func (s *RepairService) Delete(id string) error {
	return s.repo.Delete(id)
}

// resolveTechnician 校验指派对象必须是在职技术员
func (s *RepairService) resolveTechnician(id string) (*entity.User, error) {
	technician, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("技术员不存在: %w", err)
	}
	if technician.Role != entity.RoleTechnician || !technician.IsActive() {
		return nil, fmt.Errorf("指派对象不是在职技术员: %s", technician.Username)
	}
	return technician, nil
}

// resolveOrCreateCustomer 先按电话精确查找，未命中则创建。
// 除"未找到"之外的查找错误直接中止提交。
func (s *RepairService) resolveOrCreateCustomer(name, phone, email, userID string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("客户查找失败: %w", err)
	}

	customer = &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Phone:     phone,
		Email:     strings.TrimSpace(email),
		CreatedBy: userID,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, fmt.Errorf("创建客户失败: %w", err)
	}
	return customer, nil
}
