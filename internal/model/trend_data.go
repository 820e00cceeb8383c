package model

import "time"

// TrendData 创作者单日趋势，同一创作者每天仅一条
type TrendData struct {
	ID              uint64    `gorm:"primaryKey"`
	CreatorID       uint64    `gorm:"uniqueIndex:idx_trend_creator_date;not null"`
	Date            time.Time `gorm:"type:date;uniqueIndex:idx_trend_creator_date;not null"`
	GMV             float64   `gorm:"column:gmv;type:decimal(15,2);not null;default:0"`
	ProductsSold    int64     `gorm:"not null;default:0"`
	FollowersGained int64     `gorm:"not null;default:0"`
	VideoViews      int64     `gorm:"not null;default:0"`
	EngagementRate  float64   `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

func (TrendData) TableName() string {
	return "trend_data"
}

func (m *TrendData) CreatorRef() *Creator { return &m.Creator }
