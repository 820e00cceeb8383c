package dto

import (
	"NovaAff/internal/model"
	"time"
)

type LiveAnalyticsDTO struct {
	ID                    *uint64    `json:"id"`
	CreatorID             *uint64    `json:"creator"`
	CreatorName           *string    `json:"creator_name"`
	TotalLiveSessions     *int64     `json:"total_live_sessions" validate:"required,gte=0"`
	AverageViewers        *int64     `json:"average_viewers" validate:"required,gte=0"`
	AverageEngagementRate *float64   `json:"average_engagement_rate" validate:"required,gte=0,lte=100"`
	GPMLive               *float64   `json:"gpm_live" validate:"required,gte=0"`
	StartDate             *Date      `json:"start_date" validate:"required,date_fmt"`
	EndDate               *Date      `json:"end_date" validate:"required,date_fmt"`
	CreatedAt             *time.Time `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

func (d *LiveAnalyticsDTO) StripReadOnly() {
	d.ID, d.CreatorID, d.CreatorName, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *LiveAnalyticsDTO) DescribeCreator(c *model.Creator) { d.CreatorName = &c.DisplayName }
