package dto

import "time"

type DataTrackingDTO struct {
	ID                 *uint64    `json:"id" form:"-"`
	ProjectID          *uint64    `json:"project" form:"-"`
	Creator            *string    `json:"creator" form:"creator" validate:"required,min=1,max=255"`
	CreatorID          *string    `json:"creator_id" form:"creator_id" validate:"required,min=1,max=100"`
	AboutVideo         *string    `json:"about_video" form:"about_video" validate:"required,min=1,max=255"`
	VideoID            *string    `json:"video_id" form:"video_id" validate:"required,min=1,max=100"`
	UploadTime         *string    `json:"upload_time" form:"upload_time" validate:"required,min=1,max=50"`
	View               *int64     `json:"view" form:"view" validate:"required"`
	Like               *int64     `json:"like" form:"like" validate:"required"`
	Share              *int64     `json:"share" form:"share" validate:"required"`
	Comment            *int64     `json:"comment" form:"comment" validate:"required"`
	ProductLinked      *string    `json:"product_linked" form:"product_linked" validate:"required,url,max=200"`
	NewFollowers       *int64     `json:"new_followers" form:"new_followers" validate:"required"`
	ProductImpressions *int64     `json:"product_impressions" form:"product_impressions" validate:"required"`
	ProductEntries     *int64     `json:"product_entries" form:"product_entries" validate:"required"`
	GMV                *int64     `json:"gmv" form:"gmv" validate:"required"`
	CTR                *int64     `json:"ctr" form:"ctr" validate:"required"`
	RevenueFromVideos  *int64     `json:"revenue_from_videos" form:"revenue_from_videos" validate:"required"`
	VideoFile          *string    `json:"video_file" form:"-"`
	CreatedAt          *time.Time `json:"created_at" form:"-"`
	UpdatedAt          *time.Time `json:"updated_at" form:"-"`
}

func (d *DataTrackingDTO) StripReadOnly() {
	d.ID, d.ProjectID, d.VideoFile, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *DataTrackingDTO) SetAttachmentURL(url *string) { d.VideoFile = url }
