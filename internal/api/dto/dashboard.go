package dto

import "time"

type DashboardStatsDTO struct {
	ID           *uint64    `json:"id"`
	Date         *Date      `json:"date" validate:"required,date_fmt"`
	ClicksToday  *int64     `json:"clicks_today" validate:"required,gte=0"`
	OrdersToday  *int64     `json:"orders_today" validate:"required,gte=0"`
	RevenueToday *float64   `json:"revenue_today" validate:"required,gte=0"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type DashboardQueryDTO struct {
	Date string `form:"date"`
}
