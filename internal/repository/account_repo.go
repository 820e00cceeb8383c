package repository

import (
	"NovaAff/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepo interface {
	GetAccountById(ctx context.Context, id uint64) (*model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	ListAccounts(ctx context.Context, role string, isActive *bool) ([]*model.Account, error)
	CreateAccount(ctx context.Context, account *model.Account, profile *model.Profile) error
	UpdateAccount(ctx context.Context, account *model.Account) error
}

type AccountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &AccountRepoImpl{db: db}
}

func (s *AccountRepoImpl) GetAccountById(ctx context.Context, id uint64) (*model.Account, error) {
	account := &model.Account{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		Take(account)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return account, nil
}

func (s *AccountRepoImpl) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	account := &model.Account{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("username = ?", username).
		Take(account)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return account, nil
}

func (s *AccountRepoImpl) ExistsUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *AccountRepoImpl) ListAccounts(ctx context.Context, role string, isActive *bool) ([]*model.Account, error) {
	accounts := make([]*model.Account, 0)
	q := s.db.WithContext(ctx).Preload("Profile")
	if role != "" {
		q = q.Where("id IN (?)", s.db.Model(&model.Profile{}).Select("account_id").Where("role = ?", role))
	}
	if isActive != nil {
		q = q.Where("is_active = ?", *isActive)
	}
	if err := q.Order("date_joined DESC, id DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// CreateAccount 账号与 Profile 在同一事务中创建，任一失败都不会留下残缺数据
func (s *AccountRepoImpl) CreateAccount(ctx context.Context, account *model.Account, profile *model.Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(account); result.Error != nil {
			return result.Error
		}

		profile.AccountID = account.ID
		if result := tx.Create(profile); result.Error != nil {
			return result.Error
		}

		account.Profile = *profile
		return nil
	})
}

// UpdateAccount 保存账号时同步保存 Profile，Profile 缺失则补建
func (s *AccountRepoImpl) UpdateAccount(ctx context.Context, account *model.Account) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations, "date_joined").Save(account); result.Error != nil {
			return result.Error
		}

		profile := account.Profile
		profile.AccountID = account.ID
		if profile.Role == "" {
			profile.Role = model.RoleCreator
		}
		var result *gorm.DB
		if profile.ID == 0 {
			result = tx.Create(&profile)
		} else {
			result = tx.Omit("created_at").Save(&profile)
		}
		if result.Error != nil {
			return result.Error
		}

		account.Profile = profile
		return nil
	})
}
