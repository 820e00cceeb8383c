package model

import "time"

type TrackingNumber struct {
	ID             uint64    `gorm:"primaryKey"`
	ProjectID      uint64    `gorm:"column:project_id;index;not null"`
	TrackingNumber string    `gorm:"type:varchar(50);not null"`
	PhoneNumber    string    `gorm:"type:varchar(20);not null"`
	TrackingURL    string    `gorm:"column:tracking_url;type:varchar(200);not null"`
	PhoneCheck     bool      `gorm:"not null;default:false"`
	TrackingDate   time.Time `gorm:"type:date;not null"`
	TiktokID       string    `gorm:"column:tiktok_id;type:varchar(100);not null"`
	VideoFile      *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (TrackingNumber) TableName() string {
	return "tracking_numbers"
}

func (m *TrackingNumber) Attachment() *string       { return m.VideoFile }
func (m *TrackingNumber) SetAttachment(key *string) { m.VideoFile = key }
