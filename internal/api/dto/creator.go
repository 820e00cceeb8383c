package dto

import "time"

type CreatorDTO struct {
	ID              *uint64    `json:"id" form:"-"`
	Username        *string    `json:"username" form:"username" validate:"required,min=1,max=100"`
	DisplayName     *string    `json:"display_name" form:"display_name" validate:"required,min=1,max=255"`
	TiktokURL       *string    `json:"tiktok_url" form:"tiktok_url" validate:"omitempty,url,max=200"`
	Avatar          *string    `json:"avatar" form:"avatar" validate:"omitempty,max=500"`
	Categories      *[]string  `json:"categories" form:"categories" validate:"omitempty,dive,oneof=beauty fashion lifestyle tech education food travel fitness gaming entertainment"`
	Gender          *string    `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	FollowersCount  *int64     `json:"followers_count" form:"followers_count" validate:"omitempty,gte=0"`
	CategoryDisplay []string   `json:"category_display" form:"-"`
	GenderDisplay   *string    `json:"gender_display" form:"-"`
	CreatedAt       *time.Time `json:"created_at" form:"-"`
	UpdatedAt       *time.Time `json:"updated_at" form:"-"`
}

func (d *CreatorDTO) StripReadOnly() {
	d.ID, d.CategoryDisplay, d.GenderDisplay, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

// CreatorDetailDTO 创作者详情，聚合各类最新快照与近 30 条趋势
type CreatorDetailDTO struct {
	CreatorDTO
	LatestAnalytics      *CreatorAnalyticsDTO     `json:"latest_analytics"`
	LatestVideoAnalytics *VideoAnalyticsDTO       `json:"latest_video_analytics"`
	LatestLiveAnalytics  *LiveAnalyticsDTO        `json:"latest_live_analytics"`
	LatestDemographics   *FollowerDemographicsDTO `json:"latest_demographics"`
	TrendData            []*TrendDataDTO          `json:"trend_data"`
}

// CreatorQueryDTO 创作者列表筛选
type CreatorQueryDTO struct {
	Search   string `form:"search"`
	Gender   string `form:"gender"`
	Category string `form:"category"`
}
