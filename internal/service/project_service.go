package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/consts"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/pkg/storage"
	"NovaAff/internal/repository"
	"context"
)

type ProjectService interface {
	ResourceService[model.Project, dto.ProjectDTO]
}

type ProjectServiceImpl struct {
	*ResourceServiceImpl[model.Project, dto.ProjectDTO]
	projectRepo repository.ProjectRepo
}

func NewProjectService(projectRepo repository.ProjectRepo, store storage.Store) ProjectService {
	return &ProjectServiceImpl{
		ResourceServiceImpl: NewResourceService[model.Project, dto.ProjectDTO](projectRepo, store, ResourceSpec[model.Project, dto.ProjectDTO]{
			Name: "Project",
			Bind: func(ctx context.Context, m *model.Project, _ uint64) error {
				userID, ok := security.UserIDFromContext(ctx)
				if !ok {
					return ErrAuthRequired
				}
				m.CreatedBy = userID
				return nil
			},
			Unique: func(m *model.Project) []UniqueCheck {
				return []UniqueCheck{{
					Field:   "project_id",
					Cond:    repository.Scope{"project_id": m.ProjectID},
					Message: "project with this project id already exists.",
				}}
			},
		}),
		projectRepo: projectRepo,
	}
}

// Delete 级联删除子记录后清理它们的视频附件
func (s *ProjectServiceImpl) Delete(ctx context.Context, id, parentID uint64) error {
	keys, err := s.projectRepo.AttachmentKeys(ctx, id)
	if err != nil {
		return err
	}
	if err = s.ResourceServiceImpl.Delete(ctx, id, parentID); err != nil {
		return err
	}
	for _, key := range keys {
		s.discard(ctx, key)
	}
	return nil
}

// projectParent 以项目为父级的资源
func projectParent(projectRepo repository.ProjectRepo) *ParentRef {
	return &ParentRef{
		Column:   "project_id",
		NotFound: ErrProjectNotFound,
		Exists: func(ctx context.Context, id uint64) (bool, error) {
			p, err := projectRepo.Get(ctx, id, nil)
			return p != nil, err
		},
	}
}

func NewKOLService(repo repository.ResourceRepo[model.KOL], projectRepo repository.ProjectRepo, store storage.Store) ResourceService[model.KOL, dto.KOLDTO] {
	return NewResourceService[model.KOL, dto.KOLDTO](repo, store, ResourceSpec[model.KOL, dto.KOLDTO]{
		Name:   "KOL",
		Parent: projectParent(projectRepo),
		Bind: func(_ context.Context, m *model.KOL, projectID uint64) error {
			m.ProjectID = projectID
			return nil
		},
		AttachPrefix: consts.KOLVideoPrefix,
	})
}

func NewDataTrackingService(repo repository.ResourceRepo[model.DataTracking], projectRepo repository.ProjectRepo, store storage.Store) ResourceService[model.DataTracking, dto.DataTrackingDTO] {
	return NewResourceService[model.DataTracking, dto.DataTrackingDTO](repo, store, ResourceSpec[model.DataTracking, dto.DataTrackingDTO]{
		Name:   "Data tracking",
		Parent: projectParent(projectRepo),
		Bind: func(_ context.Context, m *model.DataTracking, projectID uint64) error {
			m.ProjectID = projectID
			return nil
		},
		AttachPrefix: consts.DataTrackingVideoPrefix,
	})
}

func NewTrackingNumberService(repo repository.ResourceRepo[model.TrackingNumber], projectRepo repository.ProjectRepo, store storage.Store) ResourceService[model.TrackingNumber, dto.TrackingNumberDTO] {
	return NewResourceService[model.TrackingNumber, dto.TrackingNumberDTO](repo, store, ResourceSpec[model.TrackingNumber, dto.TrackingNumberDTO]{
		Name:   "Tracking number",
		Parent: projectParent(projectRepo),
		Bind: func(_ context.Context, m *model.TrackingNumber, projectID uint64) error {
			m.ProjectID = projectID
			return nil
		},
		AttachPrefix: consts.TrackingVideoPrefix,
	})
}
