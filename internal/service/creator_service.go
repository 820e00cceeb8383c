package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/consts"
	"NovaAff/internal/repository"
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

type CreatorService interface {
	ResourceService[model.Creator, dto.CreatorDTO]
	Search(ctx context.Context, query *dto.CreatorQueryDTO) ([]*dto.CreatorDTO, error)
	Detail(ctx context.Context, id uint64) (*dto.CreatorDetailDTO, error)
}

// CreatorServiceImpl 创作者本身及详情聚合
type CreatorServiceImpl struct {
	*ResourceServiceImpl[model.Creator, dto.CreatorDTO]
	creatorRepo    repository.ResourceRepo[model.Creator]
	analytics      ResourceService[model.CreatorAnalytics, dto.CreatorAnalyticsDTO]
	videoAnalytics ResourceService[model.VideoAnalytics, dto.VideoAnalyticsDTO]
	liveAnalytics  ResourceService[model.LiveAnalytics, dto.LiveAnalyticsDTO]
	demographics   ResourceService[model.FollowerDemographics, dto.FollowerDemographicsDTO]
	trends         TrendService
}

func NewCreatorService(
	creatorRepo repository.ResourceRepo[model.Creator],
	analytics ResourceService[model.CreatorAnalytics, dto.CreatorAnalyticsDTO],
	videoAnalytics ResourceService[model.VideoAnalytics, dto.VideoAnalyticsDTO],
	liveAnalytics ResourceService[model.LiveAnalytics, dto.LiveAnalyticsDTO],
	demographics ResourceService[model.FollowerDemographics, dto.FollowerDemographicsDTO],
	trends TrendService,
) CreatorService {
	return &CreatorServiceImpl{
		ResourceServiceImpl: NewResourceService[model.Creator, dto.CreatorDTO](creatorRepo, nil, ResourceSpec[model.Creator, dto.CreatorDTO]{
			Name: "Creator",
			Bind: func(_ context.Context, m *model.Creator, _ uint64) error {
				m.Categories = uniqueCategories(m.Categories)
				return nil
			},
			Unique: func(m *model.Creator) []UniqueCheck {
				return []UniqueCheck{{
					Field:   "username",
					Cond:    repository.Scope{"username": m.Username},
					Message: "creator with this username already exists.",
				}}
			},
			Decorate: func(m *model.Creator, d *dto.CreatorDTO) {
				d.CategoryDisplay = m.CategoryDisplay()
				d.GenderDisplay = m.GenderDisplay()
			},
		}),
		creatorRepo:    creatorRepo,
		analytics:      analytics,
		videoAnalytics: videoAnalytics,
		liveAnalytics:  liveAnalytics,
		demographics:   demographics,
		trends:         trends,
	}
}

// Search 按用户名/展示名模糊搜索，并可按性别、分类过滤
func (s *CreatorServiceImpl) Search(ctx context.Context, query *dto.CreatorQueryDTO) ([]*dto.CreatorDTO, error) {
	opts := make([]repository.QueryOption, 0, 3)
	if query.Search != "" {
		opts = append(opts, repository.Search(query.Search, "username", "display_name"))
	}
	if query.Gender != "" {
		opts = append(opts, repository.Equal("gender", query.Gender))
	}
	if query.Category != "" {
		opts = append(opts, repository.JSONArrayContains("categories", query.Category))
	}
	return s.List(ctx, 0, opts...)
}

// Detail 创作者信息 + 各类分析的最新一条 + 最近的趋势数据
func (s *CreatorServiceImpl) Detail(ctx context.Context, id uint64) (*dto.CreatorDetailDTO, error) {
	creator, err := s.Get(ctx, id, 0)
	if err != nil {
		return nil, err
	}

	detail := &dto.CreatorDetailDTO{CreatorDTO: *creator}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		detail.LatestAnalytics, err = latest(gctx, s.analytics, id)
		return err
	})
	g.Go(func() (err error) {
		detail.LatestVideoAnalytics, err = latest(gctx, s.videoAnalytics, id)
		return err
	})
	g.Go(func() (err error) {
		detail.LatestLiveAnalytics, err = latest(gctx, s.liveAnalytics, id)
		return err
	})
	g.Go(func() (err error) {
		detail.LatestDemographics, err = latest(gctx, s.demographics, id)
		return err
	})
	g.Go(func() (err error) {
		detail.TrendData, err = s.trends.List(gctx, id, repository.Limit(consts.CreatorDetailTrendLimit))
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// latest 按默认排序取最新一条，没有记录时返回 nil
func latest[M any, D any](ctx context.Context, svc ResourceService[M, D], creatorID uint64) (*D, error) {
	list, err := svc.List(ctx, creatorID, repository.Limit(1))
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// uniqueCategories 分类按集合语义去重，保留首次出现的顺序
func uniqueCategories(categories datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// creatorParent 以创作者为父级的分析记录
func creatorParent(creatorRepo repository.ResourceRepo[model.Creator]) *ParentRef {
	return &ParentRef{
		Column:   "creator_id",
		NotFound: ErrCreatorNotFound,
		Exists: func(ctx context.Context, id uint64) (bool, error) {
			c, err := creatorRepo.Get(ctx, id, nil)
			return c != nil, err
		},
	}
}

func NewCreatorAnalyticsService(repo repository.ResourceRepo[model.CreatorAnalytics], creatorRepo repository.ResourceRepo[model.Creator]) ResourceService[model.CreatorAnalytics, dto.CreatorAnalyticsDTO] {
	return NewResourceService[model.CreatorAnalytics, dto.CreatorAnalyticsDTO](repo, nil, ResourceSpec[model.CreatorAnalytics, dto.CreatorAnalyticsDTO]{
		Name:   "Creator analytics",
		Parent: creatorParent(creatorRepo),
		Bind: func(_ context.Context, m *model.CreatorAnalytics, creatorID uint64) error {
			m.CreatorID = creatorID
			if m.CategoryPerformance == nil {
				m.CategoryPerformance = datatypes.JSONMap{}
			}
			return nil
		},
	})
}

func NewVideoAnalyticsService(repo repository.ResourceRepo[model.VideoAnalytics], creatorRepo repository.ResourceRepo[model.Creator]) ResourceService[model.VideoAnalytics, dto.VideoAnalyticsDTO] {
	return NewResourceService[model.VideoAnalytics, dto.VideoAnalyticsDTO](repo, nil, ResourceSpec[model.VideoAnalytics, dto.VideoAnalyticsDTO]{
		Name:   "Video analytics",
		Parent: creatorParent(creatorRepo),
		Bind: func(_ context.Context, m *model.VideoAnalytics, creatorID uint64) error {
			m.CreatorID = creatorID
			return nil
		},
	})
}

func NewLiveAnalyticsService(repo repository.ResourceRepo[model.LiveAnalytics], creatorRepo repository.ResourceRepo[model.Creator]) ResourceService[model.LiveAnalytics, dto.LiveAnalyticsDTO] {
	return NewResourceService[model.LiveAnalytics, dto.LiveAnalyticsDTO](repo, nil, ResourceSpec[model.LiveAnalytics, dto.LiveAnalyticsDTO]{
		Name:   "Live analytics",
		Parent: creatorParent(creatorRepo),
		Bind: func(_ context.Context, m *model.LiveAnalytics, creatorID uint64) error {
			m.CreatorID = creatorID
			return nil
		},
	})
}

func NewDemographicsService(repo repository.ResourceRepo[model.FollowerDemographics], creatorRepo repository.ResourceRepo[model.Creator]) ResourceService[model.FollowerDemographics, dto.FollowerDemographicsDTO] {
	return NewResourceService[model.FollowerDemographics, dto.FollowerDemographicsDTO](repo, nil, ResourceSpec[model.FollowerDemographics, dto.FollowerDemographicsDTO]{
		Name:   "Follower demographics",
		Parent: creatorParent(creatorRepo),
		Bind: func(_ context.Context, m *model.FollowerDemographics, creatorID uint64) error {
			m.CreatorID = creatorID
			if m.TopLocations == nil {
				m.TopLocations = datatypes.JSONSlice[model.LocationShare]{}
			}
			return nil
		},
	})
}
