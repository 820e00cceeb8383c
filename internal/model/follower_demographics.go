package model

import (
	"time"

	"gorm.io/datatypes"
)

// LocationShare 粉丝地域占比
type LocationShare struct {
	Location   string  `json:"location"`
	Percentage float64 `json:"percentage"`
}

type FollowerDemographics struct {
	ID                  uint64                             `gorm:"primaryKey"`
	CreatorID           uint64                             `gorm:"index;not null"`
	MalePercentage      float64                            `gorm:"type:decimal(5,2);not null;default:0"`
	FemalePercentage    float64                            `gorm:"type:decimal(5,2);not null;default:0"`
	Age1824Percentage   float64                            `gorm:"column:age_18_24_percentage;type:decimal(5,2);not null;default:0"`
	Age2534Percentage   float64                            `gorm:"column:age_25_34_percentage;type:decimal(5,2);not null;default:0"`
	Age3544Percentage   float64                            `gorm:"column:age_35_44_percentage;type:decimal(5,2);not null;default:0"`
	Age4554Percentage   float64                            `gorm:"column:age_45_54_percentage;type:decimal(5,2);not null;default:0"`
	Age55PlusPercentage float64                            `gorm:"column:age_55_plus_percentage;type:decimal(5,2);not null;default:0"`
	TopLocations        datatypes.JSONSlice[LocationShare] `gorm:"type:json"`
	SnapshotDate        time.Time                          `gorm:"type:date;not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Creator Creator `gorm:"foreignKey:CreatorID;references:ID"`
}

func (FollowerDemographics) TableName() string {
	return "follower_demographics"
}

func (m *FollowerDemographics) CreatorRef() *Creator { return &m.Creator }
