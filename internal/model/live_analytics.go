package model

import "time"

type LiveAnalytics struct {
	ID                    uint64    `gorm:"primaryKey"`
	CreatorID             uint64    `gorm:"index;not null"`
	TotalLiveSessions     int64     `gorm:"not null;default:0"`
	AverageViewers        int64     `gorm:"not null;default:0"`
	AverageEngagementRate float64   `gorm:"type:decimal(5,2);not null;default:0"`
	GPMLive               float64   `gorm:"column:gpm_live;type:decimal(12,2);not null;default:0"`
	StartDate             time.Time `gorm:"type:date;not null"`
	EndDate               time.Time `gorm:"type:date;not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

func (LiveAnalytics) TableName() string {
	return "live_analytics"
}

func (m *LiveAnalytics) CreatorRef() *Creator { return &m.Creator }
