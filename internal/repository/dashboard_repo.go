package repository

import (
	"NovaAff/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DashboardRepo interface {
	GetStatsByDate(ctx context.Context, date time.Time) (*model.BrandDashboardStats, error)
	SaveOrUpdateStats(ctx context.Context, stats *model.BrandDashboardStats) error
}

type dashboardRepoImpl struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepo {
	return &dashboardRepoImpl{db: db}
}

func (r *dashboardRepoImpl) GetStatsByDate(ctx context.Context, date time.Time) (*model.BrandDashboardStats, error) {
	var stats model.BrandDashboardStats
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Take(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

// SaveOrUpdateStats 采用 Upsert 逻辑，date 已存在时覆盖各项数值
func (r *dashboardRepoImpl) SaveOrUpdateStats(ctx context.Context, stats *model.BrandDashboardStats) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"clicks_today",
			"orders_today",
			"revenue_today",
			"updated_at",
		}),
	}).Create(stats).Error
	if err != nil {
		return err
	}
	// 冲突更新时 MySQL 不回填主键，重新读取
	saved, err := r.GetStatsByDate(ctx, stats.Date)
	if err != nil {
		return err
	}
	if saved != nil {
		*stats = *saved
	}
	return nil
}
