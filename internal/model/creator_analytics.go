package model

import (
	"time"

	"gorm.io/datatypes"
)

// CreatorAnalytics 创作者带货表现快照
type CreatorAnalytics struct {
	ID                       uint64            `gorm:"primaryKey"`
	CreatorID                uint64            `gorm:"index;not null"`
	GMV                      float64           `gorm:"column:gmv;type:decimal(15,2);not null;default:0"`
	ProductsSold             int64             `gorm:"not null;default:0"`
	GPM                      float64           `gorm:"column:gpm;type:decimal(12,2);not null;default:0"`
	AverageGMVPerCustomer    float64           `gorm:"column:average_gmv_per_customer;type:decimal(12,2);not null;default:0"`
	CommissionRate           float64           `gorm:"type:decimal(5,2);not null;default:0"`
	TotalProducts            int64             `gorm:"not null;default:0"`
	PriceRangeMin            float64           `gorm:"type:decimal(12,2);not null;default:0"`
	PriceRangeMax            float64           `gorm:"type:decimal(12,2);not null;default:0"`
	BrandsCollaborated       int64             `gorm:"not null;default:0"`
	LiveGMVPercentage        float64           `gorm:"column:live_gmv_percentage;type:decimal(5,2);not null;default:0"`
	VideoGMVPercentage       float64           `gorm:"column:video_gmv_percentage;type:decimal(5,2);not null;default:0"`
	ProductCardGMVPercentage float64           `gorm:"column:product_card_gmv_percentage;type:decimal(5,2);not null;default:0"`
	CategoryPerformance      datatypes.JSONMap `gorm:"type:json"`
	StartDate                time.Time         `gorm:"type:date;not null"`
	EndDate                  time.Time         `gorm:"type:date;not null"`
	CreatedAt                time.Time
	UpdatedAt                time.Time

	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

func (CreatorAnalytics) TableName() string {
	return "creator_analytics"
}

func (m *CreatorAnalytics) CreatorRef() *Creator { return &m.Creator }
