package service

import (
	"NovaAff/internal/api/config"
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/pkg/util"
	"NovaAff/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jinzhu/copier"
)

const minUsernameLength = 6

type AuthService interface {
	Register(ctx context.Context, in *dto.RegisterDTO) (*dto.UserDTO, *dto.TokenPairDTO, error)
	Login(ctx context.Context, in *dto.CredentialDTO) (*dto.UserDTO, *dto.TokenPairDTO, error)
	Refresh(ctx context.Context, in *dto.RefreshDTO) (*dto.TokenPairDTO, error)
	Profile(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	BootstrapAdmin(ctx context.Context, cfg config.AdminConfig) error
}

type AuthServiceImpl struct {
	accountRepo      repository.AccountRepo
	allowAdminSignup bool
}

func NewAuthService(accountRepo repository.AccountRepo, cfg config.AuthConfig) AuthService {
	return &AuthServiceImpl{
		accountRepo:      accountRepo,
		allowAdminSignup: cfg.AllowAdminSignup,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, in *dto.RegisterDTO) (*dto.UserDTO, *dto.TokenPairDTO, error) {
	// 邮箱选填，空串视为未提供
	if in.Email != nil && strings.TrimSpace(*in.Email) == "" {
		in.Email = nil
	}
	fields, err := util.ValidateDTO(in)
	if err != nil {
		return nil, nil, err
	}
	if fields == nil {
		fields = util.FieldErrors{}
	}

	username := strings.TrimSpace(util.Deref(in.Username))
	if _, ok := fields["username"]; !ok {
		if utf8.RuneCountInString(username) < minUsernameLength {
			fields.Add("username", "Username must be at least 6 characters long")
		} else {
			exists, err := s.accountRepo.ExistsUsername(ctx, username)
			if err != nil {
				return nil, nil, err
			}
			if exists {
				fields.Add("username", "Username already exists")
			}
		}
	}
	if in.Password != nil && in.ConfirmPassword != nil && *in.Password != *in.ConfirmPassword {
		fields.Add(util.NonFieldErrors, "Passwords don't match")
	}

	role := model.RoleCreator
	if in.Role != nil && *in.Role != "" {
		role = *in.Role
	}
	if role == model.RoleAdmin && !s.allowAdminSignup {
		fields.Add("role", "Admin accounts cannot be created through registration.")
	}
	if len(fields) > 0 {
		return nil, nil, &ValidationError{Errors: fields}
	}

	account := &model.Account{}
	if err = copier.CopyWithOption(account, in, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, nil, err
	}
	account.Username = username
	account.IsActive = true
	if account.Password, err = security.HashPassword(*in.Password); err != nil {
		return nil, nil, err
	}

	profile := &model.Profile{Role: role}
	if err = s.accountRepo.CreateAccount(ctx, account, profile); err != nil {
		// 并发注册同名账号时由唯一索引兜底
		var ve *ValidationError
		if errors.As(translateIntegrity(err), &ve) {
			return nil, nil, NewValidationError("username", "Username already exists")
		}
		return nil, nil, err
	}
	log.InfoContext(ctx, "account registered", "user_id", account.ID, "role", role)

	return s.issue(account)
}

func (s *AuthServiceImpl) Login(ctx context.Context, in *dto.CredentialDTO) (*dto.UserDTO, *dto.TokenPairDTO, error) {
	username := strings.TrimSpace(util.Deref(in.Username))
	password := util.Deref(in.Password)
	if username == "" || password == "" {
		return nil, nil, ErrMissingCredentials
	}
	if in.Role != nil && *in.Role != "" && !model.ValidRole(*in.Role) {
		return nil, nil, NewValidationError("role", fmt.Sprintf("\"%s\" is not a valid choice.", *in.Role))
	}

	account, err := s.accountRepo.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		security.BurnPasswordCheck(password)
		return nil, nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(password, account.Password); err != nil {
		if errors.Is(err, security.ErrPasswordMismatch) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !account.IsActive {
		return nil, nil, ErrAccountDisabled
	}
	if in.Role != nil && *in.Role != "" && *in.Role != account.Profile.Role {
		log.WarnContext(ctx, "login role mismatch", "user_id", account.ID, "requested", *in.Role)
		return nil, nil, &AuthError{Code: AuthRoleMismatch, Role: *in.Role}
	}

	return s.issue(account)
}

// Refresh 用 refresh token 换取新的令牌对，角色以数据库为准
func (s *AuthServiceImpl) Refresh(ctx context.Context, in *dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	if in.Refresh == nil || *in.Refresh == "" {
		return nil, NewValidationError("refresh", "This field is required.")
	}
	claims, err := security.ValidateToken(*in.Refresh, security.TokenTypeRefresh)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	account, err := s.accountRepo.GetAccountById(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, ErrTokenInvalid
	}

	_, tokens, err := s.issue(account)
	return tokens, err
}

func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	account, err := s.accountRepo.GetAccountById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return toUserDTO(account), nil
}

// BootstrapAdmin 配置了管理员账号且尚不存在时创建
func (s *AuthServiceImpl) BootstrapAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}
	exists, err := s.accountRepo.ExistsUsername(ctx, cfg.Username)
	if err != nil || exists {
		return err
	}

	hash, err := security.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	account := &model.Account{
		Username:    cfg.Username,
		Email:       cfg.Email,
		Password:    hash,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err = s.accountRepo.CreateAccount(ctx, account, &model.Profile{Role: model.RoleAdmin}); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	log.InfoContext(ctx, "admin account created", "username", cfg.Username)
	return nil
}

func (s *AuthServiceImpl) issue(account *model.Account) (*dto.UserDTO, *dto.TokenPairDTO, error) {
	access, refresh, err := security.GenerateTokenPair(account.ID, account.Profile.Role)
	if err != nil {
		return nil, nil, err
	}
	return toUserDTO(account), &dto.TokenPairDTO{Access: access, Refresh: refresh}, nil
}

func toUserDTO(account *model.Account) *dto.UserDTO {
	user := &dto.UserDTO{}
	_ = copier.Copy(user, account)
	user.Role = account.Profile.Role
	return user
}
