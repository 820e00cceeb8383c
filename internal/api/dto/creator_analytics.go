package dto

import (
	"NovaAff/internal/model"
	"time"
)

type CreatorAnalyticsDTO struct {
	ID                       *uint64         `json:"id"`
	CreatorID                *uint64         `json:"creator"`
	CreatorName              *string         `json:"creator_name"`
	CreatorUsername          *string         `json:"creator_username"`
	GMV                      *float64        `json:"gmv" validate:"required,gte=0"`
	ProductsSold             *int64          `json:"products_sold" validate:"required,gte=0"`
	GPM                      *float64        `json:"gpm" validate:"required,gte=0"`
	AverageGMVPerCustomer    *float64        `json:"average_gmv_per_customer" validate:"required,gte=0"`
	CommissionRate           *float64        `json:"commission_rate" validate:"required,gte=0,lte=100"`
	TotalProducts            *int64          `json:"total_products" validate:"required,gte=0"`
	PriceRangeMin            *float64        `json:"price_range_min" validate:"required,gte=0"`
	PriceRangeMax            *float64        `json:"price_range_max" validate:"required,gte=0"`
	BrandsCollaborated       *int64          `json:"brands_collaborated" validate:"required,gte=0"`
	LiveGMVPercentage        *float64        `json:"live_gmv_percentage" validate:"required,gte=0,lte=100"`
	VideoGMVPercentage       *float64        `json:"video_gmv_percentage" validate:"required,gte=0,lte=100"`
	ProductCardGMVPercentage *float64        `json:"product_card_gmv_percentage" validate:"required,gte=0,lte=100"`
	CategoryPerformance      *map[string]any `json:"category_performance"`
	StartDate                *Date           `json:"start_date" validate:"required,date_fmt"`
	EndDate                  *Date           `json:"end_date" validate:"required,date_fmt"`
	CreatedAt                *time.Time      `json:"created_at"`
	UpdatedAt                *time.Time      `json:"updated_at"`
}

func (d *CreatorAnalyticsDTO) StripReadOnly() {
	d.ID, d.CreatorID, d.CreatorName, d.CreatorUsername, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil, nil
}

func (d *CreatorAnalyticsDTO) DescribeCreator(c *model.Creator) {
	d.CreatorName, d.CreatorUsername = &c.DisplayName, &c.Username
}
