package dto

import (
	"NovaAff/internal/model"
	"time"
)

type VideoAnalyticsDTO struct {
	ID                    *uint64    `json:"id"`
	CreatorID             *uint64    `json:"creator"`
	CreatorName           *string    `json:"creator_name"`
	TotalVideos           *int64     `json:"total_videos" validate:"required,gte=0"`
	AverageViews          *int64     `json:"average_views" validate:"required,gte=0"`
	AverageEngagementRate *float64   `json:"average_engagement_rate" validate:"required,gte=0,lte=100"`
	GPMVideo              *float64   `json:"gpm_video" validate:"required,gte=0"`
	StartDate             *Date      `json:"start_date" validate:"required,date_fmt"`
	EndDate               *Date      `json:"end_date" validate:"required,date_fmt"`
	CreatedAt             *time.Time `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

func (d *VideoAnalyticsDTO) StripReadOnly() {
	d.ID, d.CreatorID, d.CreatorName, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *VideoAnalyticsDTO) DescribeCreator(c *model.Creator) { d.CreatorName = &c.DisplayName }
