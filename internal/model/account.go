package model

import (
	"time"
)

// Account 登录账号，角色存放在一对一的 Profile 中
type Account struct {
	ID          uint64    `gorm:"primaryKey"`
	Username    string    `gorm:"type:varchar(150);uniqueIndex:idx_username;not null"`
	Email       string    `gorm:"type:varchar(254);not null;default:''"`
	Password    string    `gorm:"type:varchar(255);not null"`
	FirstName   string    `gorm:"type:varchar(150);not null;default:''"`
	LastName    string    `gorm:"type:varchar(150);not null;default:''"`
	IsActive    bool      `gorm:"not null;default:true"`
	IsStaff     bool      `gorm:"not null;default:false"`
	IsSuperuser bool      `gorm:"not null;default:false"`
	DateJoined  time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time

	Profile Profile `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Account) TableName() string {
	return "accounts"
}
