package model

import "time"

const (
	RoleAdmin   = "admin"
	RoleBrand   = "brand"
	RoleCreator = "creator"
)

// Roles 全部可选角色
var Roles = []string{RoleAdmin, RoleBrand, RoleCreator}

type Profile struct {
	ID        uint64 `gorm:"primaryKey"`
	AccountID uint64 `gorm:"uniqueIndex:idx_profile_account;not null"`
	Role      string `gorm:"type:varchar(20);not null;default:'creator'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}

// ValidRole 判断角色是否合法
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}
