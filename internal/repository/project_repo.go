package repository

import (
	"NovaAff/internal/model"
	"context"

	"gorm.io/gorm"
)

type ProjectRepo interface {
	ResourceRepo[model.Project]
	// AttachmentKeys 项目下所有子记录的视频对象 key
	AttachmentKeys(ctx context.Context, projectID uint64) ([]string, error)
}

type projectRepoImpl struct {
	ResourceRepo[model.Project]
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepoImpl{
		ResourceRepo: NewResourceRepo[model.Project](db, ResourceOptions{
			Order:   model.OrderNewest,
			Cascade: []string{"KOLs", "DataTrackings", "TrackingNumbers"},
		}),
		db: db,
	}
}

func (r *projectRepoImpl) AttachmentKeys(ctx context.Context, projectID uint64) ([]string, error) {
	keys := make([]string, 0)
	for _, m := range []any{&model.KOL{}, &model.DataTracking{}, &model.TrackingNumber{}} {
		var part []string
		err := r.db.WithContext(ctx).
			Model(m).
			Where("project_id = ? AND video_file IS NOT NULL AND video_file <> ''", projectID).
			Pluck("video_file", &part).Error
		if err != nil {
			return nil, err
		}
		keys = append(keys, part...)
	}
	return keys, nil
}
