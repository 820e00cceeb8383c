package dto

import (
	"NovaAff/internal/model"
	"time"
)

type FollowerDemographicsDTO struct {
	ID                  *uint64                `json:"id"`
	CreatorID           *uint64                `json:"creator"`
	CreatorName         *string                `json:"creator_name"`
	MalePercentage      *float64               `json:"male_percentage" validate:"required,gte=0,lte=100"`
	FemalePercentage    *float64               `json:"female_percentage" validate:"required,gte=0,lte=100"`
	Age1824Percentage   *float64               `json:"age_18_24_percentage" validate:"required,gte=0,lte=100"`
	Age2534Percentage   *float64               `json:"age_25_34_percentage" validate:"required,gte=0,lte=100"`
	Age3544Percentage   *float64               `json:"age_35_44_percentage" validate:"required,gte=0,lte=100"`
	Age4554Percentage   *float64               `json:"age_45_54_percentage" validate:"required,gte=0,lte=100"`
	Age55PlusPercentage *float64               `json:"age_55_plus_percentage" validate:"required,gte=0,lte=100"`
	TopLocations        *[]model.LocationShare `json:"top_locations"`
	SnapshotDate        *Date                  `json:"snapshot_date" validate:"required,date_fmt"`
	CreatedAt           *time.Time             `json:"created_at"`
	UpdatedAt           *time.Time             `json:"updated_at"`
}

func (d *FollowerDemographicsDTO) StripReadOnly() {
	d.ID, d.CreatorID, d.CreatorName, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *FollowerDemographicsDTO) DescribeCreator(c *model.Creator) { d.CreatorName = &c.DisplayName }
