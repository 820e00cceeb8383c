package dto

// AccountUpdateDTO 管理员修改账号，均为可选字段
type AccountUpdateDTO struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	IsActive  *bool   `json:"is_active"`
	IsStaff   *bool   `json:"is_staff"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin brand creator"`
}

type AccountQueryDTO struct {
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
}
