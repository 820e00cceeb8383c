package service

import (
	"NovaAff/internal/pkg/util"
	"errors"
	"fmt"
	"sort"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("Invalid request")
	ErrTokenInvalid     = errors.New("Given token not valid for any token type")
	ErrAuthRequired     = errors.New("Authentication required")
	ErrPermissionDenied = errors.New("You do not have permission to perform this action.")
	ErrFileNotSupported = errors.New("Upload a valid video file.")
	UnExpectedError     = errors.New("A server error occurred.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrTokenInvalid:     Unauthorized,
	ErrAuthRequired:     Unauthorized,
	ErrPermissionDenied: Forbidden,
	ErrFileNotSupported: BadRequest,
	UnExpectedError:     InternalServerError,
}

// ValidationError 字段级校验错误，Message 为空时使用默认提示
type ValidationError struct {
	Message string
	Errors  util.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Errors[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError 单字段错误
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Errors: util.FieldErrors{field: {msg}}}
}

// NotFoundError 资源不存在
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	return ok && t.Resource == e.Resource
}

var (
	ErrAccountNotFound = &NotFoundError{Resource: "Account"}
	ErrProjectNotFound = &NotFoundError{Resource: "Project"}
	ErrCreatorNotFound = &NotFoundError{Resource: "Creator"}
)

// AuthCode 登录失败的原因
type AuthCode int

const (
	AuthInvalidCredentials AuthCode = iota + 1
	AuthDisabled
	AuthRoleMismatch
	AuthMissingCredentials
)

// AuthError 认证失败
type AuthError struct {
	Code AuthCode
	Role string
}

func (e *AuthError) Error() string {
	switch e.Code {
	case AuthInvalidCredentials:
		return "Invalid username or password"
	case AuthDisabled:
		return "User account is disabled"
	case AuthRoleMismatch:
		return fmt.Sprintf("You are not authorized to login as %s", e.Role)
	case AuthMissingCredentials:
		return "Must include username and password"
	default:
		return "Authentication failed"
	}
}

// Is 仅比较 Code，便于 errors.Is(err, ErrRoleMismatch)
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidCredentials = &AuthError{Code: AuthInvalidCredentials}
	ErrAccountDisabled    = &AuthError{Code: AuthDisabled}
	ErrRoleMismatch       = &AuthError{Code: AuthRoleMismatch}
	ErrMissingCredentials = &AuthError{Code: AuthMissingCredentials}
)

// translateIntegrity 将存储层约束冲突转为校验错误，其它错误原样返回
func translateIntegrity(err error) error {
	if err == nil {
		return nil
	}

	var mysqlErr *mysqlDriver.MySQLError
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewValidationError(util.NonFieldErrors, "A record with these values already exists.")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewValidationError(util.NonFieldErrors, "Referenced record does not exist.")
	case errors.As(err, &mysqlErr) && mysqlErr.Number == 1062:
		return NewValidationError(util.NonFieldErrors, "A record with these values already exists.")
	case errors.As(err, &mysqlErr) && (mysqlErr.Number == 1451 || mysqlErr.Number == 1452):
		return NewValidationError(util.NonFieldErrors, "Referenced record does not exist.")
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return NewValidationError(util.NonFieldErrors, "A record with these values already exists.")
	}
	return err
}
