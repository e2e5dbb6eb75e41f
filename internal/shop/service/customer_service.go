package service

import (
	"fmt"
	"strings"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/google/uuid"
)

// CustomerService 客户服务
type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (s *CustomerService) Create(req CreateCustomerRequest, userID string) (*entity.Customer, error) {
	phone := NormalizePhone(req.Phone)
	if msg := ValidatePhone(phone); msg != "" {
		return nil, fmt.Errorf("%s", msg)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = EmailNotAvailable
	}
	if msg := ValidateEmail(email); msg != "" {
		return nil, fmt.Errorf("%s", msg)
	}

	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Phone:     phone,
		Email:     email,
		Address:   req.Address,
		Notes:     req.Notes,
		CreatedBy: userID,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("创建客户失败: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) GetByID(id string) (*entity.Customer, error) {
	return s.repo.GetByID(id)
}

func (s *CustomerService) GetByPhone(phone string) (*entity.Customer, error) {
	return s.repo.GetByPhone(NormalizePhone(phone))
}

type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (s *CustomerService) Update(id string, req UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	phone := NormalizePhone(req.Phone)
	if msg := ValidatePhone(phone); msg != "" {
		return nil, fmt.Errorf("%s", msg)
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Phone = phone
	customer.Email = strings.TrimSpace(req.Email)
	customer.Address = req.Address
	customer.Notes = req.Notes

	if err := s.repo.Update(customer); err != nil {
		return nil, fmt.Errorf("更新客户失败: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *CustomerService) List(params repository.CustomerListParams) ([]entity.Customer, int64, error) {
	return s.repo.List(params)
}
