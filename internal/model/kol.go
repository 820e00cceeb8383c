package model

import "time"

type KOL struct {
	ID                      uint64    `gorm:"primaryKey"`
	ProjectID               uint64    `gorm:"column:project_id;index;not null"`
	FullName                string    `gorm:"type:varchar(255);not null"`
	SubmittedOn             time.Time `gorm:"type:date;not null"`
	Email                   string    `gorm:"type:varchar(254);not null"`
	PhoneNumber             string    `gorm:"type:varchar(20);not null"`
	Zalo                    string    `gorm:"type:varchar(20);not null"`
	TiktokURL               string    `gorm:"column:tiktok_url;type:varchar(200);not null"`
	TiktokID                string    `gorm:"column:tiktok_id;type:varchar(100);not null"`
	Followers               string    `gorm:"type:varchar(20);not null"`
	GMV                     string    `gorm:"column:gmv;type:varchar(20);not null"`
	ChannelIdentifier       string    `gorm:"type:varchar(100);not null"`
	AppropriateChannelTopic string    `gorm:"type:varchar(255);not null"`
	ShippingAddress         string    `gorm:"type:text;not null"`
	BrandApproval           string    `gorm:"type:varchar(100);not null"`
	Note                    string    `gorm:"type:text;not null"`
	KolKocApprovalTime      time.Time `gorm:"type:date;not null"`
	NumberTracking          string    `gorm:"type:varchar(20);not null"`
	KocConfirmedByNova      string    `gorm:"type:varchar(100);not null"`
	VideoFile               *string   `gorm:"type:varchar(255)"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (KOL) TableName() string {
	return "kols"
}

func (m *KOL) Attachment() *string       { return m.VideoFile }
func (m *KOL) SetAttachment(key *string) { m.VideoFile = key }
