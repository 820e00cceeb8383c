package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type DashboardService interface {
	GetStats(ctx context.Context, query *dto.DashboardQueryDTO) (*dto.DashboardStatsDTO, error)
	SaveStats(ctx context.Context, in *dto.DashboardStatsDTO) (*dto.DashboardStatsDTO, error)
}

type DashboardServiceImpl struct {
	dashboardRepo repository.DashboardRepo
	now           func() time.Time
}

func NewDashboardService(dashboardRepo repository.DashboardRepo) DashboardService {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		now:           time.Now,
	}
}

// GetStats 缺少当日数据时返回全零的默认记录，而不是 404
func (s *DashboardServiceImpl) GetStats(ctx context.Context, query *dto.DashboardQueryDTO) (*dto.DashboardStatsDTO, error) {
	date := dto.NewDate(s.now().UTC())
	if query != nil {
		if d, ok := dto.ParseDate(query.Date); ok {
			date = d
		}
	}

	stats, err := s.dashboardRepo.GetStatsByDate(ctx, date.Time())
	if err != nil {
		return nil, err
	}
	if stats == nil {
		var zero int64
		var revenue float64
		return &dto.DashboardStatsDTO{
			Date:         &date,
			ClicksToday:  &zero,
			OrdersToday:  &zero,
			RevenueToday: &revenue,
		}, nil
	}
	return renderStats(stats)
}

// SaveStats 按日期写入或覆盖
func (s *DashboardServiceImpl) SaveStats(ctx context.Context, in *dto.DashboardStatsDTO) (*dto.DashboardStatsDTO, error) {
	in.ID, in.CreatedAt, in.UpdatedAt = nil, nil, nil
	if err := validateInput(in); err != nil {
		return nil, err
	}

	stats := &model.BrandDashboardStats{}
	if err := copier.CopyWithOption(stats, in, writeOption); err != nil {
		return nil, err
	}
	if err := s.dashboardRepo.SaveOrUpdateStats(ctx, stats); err != nil {
		return nil, translateIntegrity(err)
	}
	return renderStats(stats)
}

func renderStats(stats *model.BrandDashboardStats) (*dto.DashboardStatsDTO, error) {
	out := &dto.DashboardStatsDTO{}
	if err := copier.Copy(out, stats); err != nil {
		return nil, err
	}
	return out, nil
}
