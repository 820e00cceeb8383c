package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/repository"
	"context"
	"fmt"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type AccountService interface {
	ListAccounts(ctx context.Context, query *dto.AccountQueryDTO) ([]*dto.UserDTO, error)
	GetAccount(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateAccount(ctx context.Context, id uint64, in *dto.AccountUpdateDTO) (*dto.UserDTO, error)
}

type AccountServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewAccountService(accountRepo repository.AccountRepo) AccountService {
	return &AccountServiceImpl{accountRepo: accountRepo}
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context, query *dto.AccountQueryDTO) ([]*dto.UserDTO, error) {
	if query.Role != "" && !model.ValidRole(query.Role) {
		return nil, NewValidationError("role", fmt.Sprintf("\"%s\" is not a valid choice.", query.Role))
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, query.Role, query.IsActive)
	if err != nil {
		return nil, err
	}

	users := make([]*dto.UserDTO, 0, len(accounts))
	for _, account := range accounts {
		users = append(users, toUserDTO(account))
	}
	return users, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	account, err := s.accountRepo.GetAccountById(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return toUserDTO(account), nil
}

// UpdateAccount 账号与 Profile 在同一事务中保存
func (s *AccountServiceImpl) UpdateAccount(ctx context.Context, id uint64, in *dto.AccountUpdateDTO) (*dto.UserDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetAccountById(ctx, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if err = copier.CopyWithOption(account, in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if in.Role != nil {
		account.Profile.Role = *in.Role
	}

	if err = s.accountRepo.UpdateAccount(ctx, account); err != nil {
		return nil, translateIntegrity(err)
	}
	log.InfoContext(ctx, "account updated", "user_id", account.ID, "role", account.Profile.Role)

	return toUserDTO(account), nil
}
