package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/consts"
	"NovaAff/internal/repository"
	"context"
	"time"
)

type TrendService interface {
	ResourceService[model.TrendData, dto.TrendDataDTO]
	Trends(ctx context.Context, creatorID uint64, query *dto.TrendQueryDTO) ([]*dto.TrendDataDTO, error)
}

type TrendServiceImpl struct {
	*ResourceServiceImpl[model.TrendData, dto.TrendDataDTO]
	now func() time.Time
}

func NewTrendService(repo repository.ResourceRepo[model.TrendData], creatorRepo repository.ResourceRepo[model.Creator]) TrendService {
	return &TrendServiceImpl{
		ResourceServiceImpl: NewResourceService[model.TrendData, dto.TrendDataDTO](repo, nil, ResourceSpec[model.TrendData, dto.TrendDataDTO]{
			Name:   "Trend data",
			Parent: creatorParent(creatorRepo),
			Bind: func(_ context.Context, m *model.TrendData, creatorID uint64) error {
				m.CreatorID = creatorID
				return nil
			},
			Unique: func(m *model.TrendData) []UniqueCheck {
				return []UniqueCheck{{
					Cond:    repository.Scope{"creator_id": m.CreatorID, "date": m.Date},
					Message: "The fields creator, date must make a unique set.",
				}}
			},
		}),
		now: time.Now,
	}
}

// Trends start_date/end_date 为 YYYY-MM-DD，非法值忽略；两者都无效时取最近 30 天
func (s *TrendServiceImpl) Trends(ctx context.Context, creatorID uint64, query *dto.TrendQueryDTO) ([]*dto.TrendDataDTO, error) {
	from, to := trendWindow(query, dto.NewDate(s.now().UTC()))
	return s.List(ctx, creatorID, repository.DateRange("date", from, to))
}

func trendWindow(query *dto.TrendQueryDTO, today dto.Date) (from, to *time.Time) {
	if query != nil {
		if d, ok := dto.ParseISODate(query.StartDate); ok {
			t := d.Time()
			from = &t
		}
		if d, ok := dto.ParseISODate(query.EndDate); ok {
			t := d.Time()
			to = &t
		}
	}
	if from == nil && to == nil {
		end := today.Time()
		start := end.AddDate(0, 0, -consts.TrendWindowDays)
		from, to = &start, &end
	}
	return from, to
}
