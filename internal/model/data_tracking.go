package model

import "time"

// DataTracking 单条视频的投放数据
type DataTracking struct {
	ID                 uint64  `gorm:"primaryKey"`
	ProjectID          uint64  `gorm:"column:project_id;index;not null"`
	Creator            string  `gorm:"type:varchar(255);not null"`
	CreatorID          string  `gorm:"column:creator_id;type:varchar(100);not null"`
	AboutVideo         string  `gorm:"type:varchar(255);not null"`
	VideoID            string  `gorm:"column:video_id;type:varchar(100);not null"`
	UploadTime         string  `gorm:"type:varchar(50);not null"`
	View               int64   `gorm:"not null"`
	Like               int64   `gorm:"not null"`
	Share              int64   `gorm:"not null"`
	Comment            int64   `gorm:"not null"`
	ProductLinked      string  `gorm:"type:varchar(200);not null"`
	NewFollowers       int64   `gorm:"not null"`
	ProductImpressions int64   `gorm:"not null"`
	ProductEntries     int64   `gorm:"not null"`
	GMV                int64   `gorm:"column:gmv;not null"`
	CTR                int64   `gorm:"column:ctr;not null"`
	RevenueFromVideos  int64   `gorm:"not null"`
	VideoFile          *string `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (DataTracking) TableName() string {
	return "data_trackings"
}

func (m *DataTracking) Attachment() *string       { return m.VideoFile }
func (m *DataTracking) SetAttachment(key *string) { m.VideoFile = key }
