package model

import "time"

type Project struct {
	ID          uint64    `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ProjectID   string    `gorm:"type:varchar(100);uniqueIndex:idx_project_code;not null"`
	CreatedDate time.Time `gorm:"type:date;not null"`
	CreatedBy   uint64    `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner           Account          `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:CASCADE"`
	KOLs            []KOL            `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	DataTrackings   []DataTracking   `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	TrackingNumbers []TrackingNumber `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}
