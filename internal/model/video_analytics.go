package model

import "time"

type VideoAnalytics struct {
	ID                    uint64    `gorm:"primaryKey"`
	CreatorID             uint64    `gorm:"index;not null"`
	TotalVideos           int64     `gorm:"not null;default:0"`
	AverageViews          int64     `gorm:"not null;default:0"`
	AverageEngagementRate float64   `gorm:"type:decimal(5,2);not null;default:0"`
	GPMVideo              float64   `gorm:"column:gpm_video;type:decimal(12,2);not null;default:0"`
	StartDate             time.Time `gorm:"type:date;not null"`
	EndDate               time.Time `gorm:"type:date;not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

func (VideoAnalytics) TableName() string {
	return "video_analytics"
}

func (m *VideoAnalytics) CreatorRef() *Creator { return &m.Creator }
