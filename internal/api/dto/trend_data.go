package dto

import (
	"NovaAff/internal/model"
	"time"
)

type TrendDataDTO struct {
	ID              *uint64    `json:"id"`
	CreatorID       *uint64    `json:"creator"`
	CreatorName     *string    `json:"creator_name"`
	Date            *Date      `json:"date" validate:"required,date_fmt"`
	GMV             *float64   `json:"gmv" validate:"required,gte=0"`
	ProductsSold    *int64     `json:"products_sold" validate:"required,gte=0"`
	FollowersGained *int64     `json:"followers_gained" validate:"required"`
	VideoViews      *int64     `json:"video_views" validate:"required,gte=0"`
	EngagementRate  *float64   `json:"engagement_rate" validate:"required,gte=0,lte=100"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}

func (d *TrendDataDTO) StripReadOnly() {
	d.ID, d.CreatorID, d.CreatorName, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *TrendDataDTO) DescribeCreator(c *model.Creator) { d.CreatorName = &c.DisplayName }

// TrendQueryDTO 趋势筛选，日期格式 YYYY-MM-DD，非法值忽略
type TrendQueryDTO struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
