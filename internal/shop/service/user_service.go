package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitfantasy/fixera/internal/shop/entity"
	"github.com/bitfantasy/fixera/internal/shop/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	technicianCacheKey = "fixera:technicians"
	technicianCacheTTL = 60 * time.Second
)

// UserService 用户管理服务
type UserService struct {
	repo *repository.UserRepository
	rdb  *redis.Client
}

func NewUserService(repo *repository.UserRepository, rdb *redis.Client) *UserService {
	return &UserService{repo: repo, rdb: rdb}
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required,oneof=Admin Cashier Technician"`
}

func (s *UserService) Create(req CreateUserRequest) (*entity.User, error) {
	if _, err := s.repo.GetByUsername(req.Username); err == nil {
		return nil, fmt.Errorf("用户名 %s 已存在", req.Username)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("用户查找失败: %w", err)
	}

	if req.Email != "" && req.Email != EmailNotAvailable {
		if msg := ValidateEmail(req.Email); msg != "" {
			return nil, errors.New(msg)
		}
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Status:       entity.UserStatusActive,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	s.invalidateTechnicianCache()
	return user, nil
}

func (s *UserService) GetByID(id string) (*entity.User, error) {
	return s.repo.GetByID(id)
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"omitempty,oneof=Admin Cashier Technician"`
	Status    string `json:"status" binding:"omitempty,oneof=active inactive"`
}

func (s *UserService) Update(id string, req UpdateUserRequest) (*entity.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = req.Email
	user.Phone = req.Phone
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Status != "" {
		user.Status = req.Status
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}
	s.invalidateTechnicianCache()
	return user, nil
}

// ChangePassword 管理员重置或用户修改密码
func (s *UserService) ChangePassword(id, newPassword string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}
	user.PasswordHash = hash
	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}
	return nil
}

func (s *UserService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateTechnicianCache()
	return nil
}

func (s *UserService) List(params repository.UserListParams) ([]entity.User, int64, error) {
	return s.repo.List(params)
}

// Technician 技术员下拉选项，统一为 id + 显示名
type Technician struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListTechnicians 返回在职技术员列表，带短 TTL 的 redis 缓存
func (s *UserService) ListTechnicians(ctx context.Context) ([]Technician, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, technicianCacheKey).Result(); err == nil {
			var cached []Technician
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	users, err := s.repo.ListTechnicians()
	if err != nil {
		return nil, fmt.Errorf("查询技术员失败: %w", err)
	}

	techs := make([]Technician, 0, len(users))
	for _, u := range users {
		techs = append(techs, Technician{ID: u.ID, Name: DisplayName(&u)})
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(techs); err == nil {
			s.rdb.Set(ctx, technicianCacheKey, raw, technicianCacheTTL)
		}
	}
	return techs, nil
}

func (s *UserService) invalidateTechnicianCache() {
	if s.rdb != nil {
		s.rdb.Del(context.Background(), technicianCacheKey)
	}
}

// DisplayName 拼接用户显示名
func DisplayName(u *entity.User) string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
