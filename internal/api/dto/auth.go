package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username        *string `json:"username" form:"username" validate:"required,min=1,max=150"`
	Email           *string `json:"email" form:"email" validate:"omitempty,email"`
	Password        *string `json:"password" form:"password" validate:"required,min=6,max=128"`
	ConfirmPassword *string `json:"confirm_password" form:"confirm_password" validate:"required"`
	FirstName       *string `json:"first_name" form:"first_name" validate:"omitempty,max=150"`
	LastName        *string `json:"last_name" form:"last_name" validate:"omitempty,max=150"`
	Role            *string `json:"role" form:"role" validate:"omitempty,oneof=admin brand creator"`
}

// CredentialDTO 登录凭证，Role 不为空时要求与账号角色一致
type CredentialDTO struct {
	Username *string `json:"username" form:"username"`
	Password *string `json:"password" form:"password"`
	Role     *string `json:"role" form:"role" validate:"omitempty,oneof=admin brand creator"`
}

type RefreshDTO struct {
	Refresh *string `json:"refresh" form:"refresh" validate:"required,min=1"`
}

// TokenPairDTO 令牌对
type TokenPairDTO struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// UserDTO 对外展示的账号信息
type UserDTO struct {
	ID          uint64    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined"`
	Role        string    `json:"role"`
}

// AuthResultDTO 注册/登录成功的返回体
type AuthResultDTO struct {
	Message string        `json:"message"`
	User    *UserDTO      `json:"user"`
	Tokens  *TokenPairDTO `json:"tokens"`
}
