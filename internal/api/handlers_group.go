package api

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/api/handler"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/storage"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler           *handler.AuthHandler
	AccountHandler        *handler.AccountHandler
	ProjectHandler        *handler.ResourceHandler[model.Project, dto.ProjectDTO]
	KOLHandler            *handler.ResourceHandler[model.KOL, dto.KOLDTO]
	DataTrackingHandler   *handler.ResourceHandler[model.DataTracking, dto.DataTrackingDTO]
	TrackingNumberHandler *handler.ResourceHandler[model.TrackingNumber, dto.TrackingNumberDTO]
	CreatorHandler        *handler.CreatorHandler
	AnalyticsHandler      *handler.ResourceHandler[model.CreatorAnalytics, dto.CreatorAnalyticsDTO]
	VideoAnalyticsHandler *handler.ResourceHandler[model.VideoAnalytics, dto.VideoAnalyticsDTO]
	LiveAnalyticsHandler  *handler.ResourceHandler[model.LiveAnalytics, dto.LiveAnalyticsDTO]
	DemographicsHandler   *handler.ResourceHandler[model.FollowerDemographics, dto.FollowerDemographicsDTO]
	TrendHandler          *handler.TrendHandler
	DashboardHandler      *handler.DashboardHandler

	// Media 使用本地存储时由路由直接提供静态文件
	Media *storage.LocalStore
}
