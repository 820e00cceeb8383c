package model

import "time"

// BrandDashboardStats 品牌看板的每日汇总
type BrandDashboardStats struct {
	ID           uint64    `gorm:"primaryKey"`
	Date         time.Time `gorm:"type:date;uniqueIndex:idx_dashboard_date;not null"`
	ClicksToday  int64     `gorm:"not null;default:0"`
	OrdersToday  int64     `gorm:"not null;default:0"`
	RevenueToday float64   `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (BrandDashboardStats) TableName() string {
	return "brand_dashboard_stats"
}
