package wire

import (
	"NovaAff/internal/api"
	"NovaAff/internal/api/config"
	"NovaAff/internal/api/dto"
	"NovaAff/internal/api/handler"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/storage"
	"NovaAff/internal/repository"
	"NovaAff/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router      *gin.Engine
	DB          *gorm.DB
	Store       storage.Store
	AuthService service.AuthService
}

func BuildApplication(db *gorm.DB, store storage.Store, cfg *config.Config) (*ApplicationContainer, error) {
	accountRepo := repository.NewAccountRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	kolRepo := repository.NewResourceRepo[model.KOL](db, repository.ResourceOptions{Order: model.OrderNewest})
	dataTrackingRepo := repository.NewResourceRepo[model.DataTracking](db, repository.ResourceOptions{Order: model.OrderNewest})
	trackingNumberRepo := repository.NewResourceRepo[model.TrackingNumber](db, repository.ResourceOptions{Order: model.OrderNewest})
	creatorRepo := repository.NewResourceRepo[model.Creator](db, repository.ResourceOptions{
		Order:   model.OrderNewest,
		Cascade: []string{"Analytics", "VideoAnalytics", "LiveAnalytics", "Demographics", "Trends"},
	})
	creatorChild := repository.ResourceOptions{Order: model.OrderNewest, Preloads: []string{"Creator"}}
	analyticsRepo := repository.NewResourceRepo[model.CreatorAnalytics](db, creatorChild)
	videoAnalyticsRepo := repository.NewResourceRepo[model.VideoAnalytics](db, creatorChild)
	liveAnalyticsRepo := repository.NewResourceRepo[model.LiveAnalytics](db, creatorChild)
	demographicsRepo := repository.NewResourceRepo[model.FollowerDemographics](db, creatorChild)
	trendRepo := repository.NewResourceRepo[model.TrendData](db, repository.ResourceOptions{Order: model.OrderByDate, Preloads: []string{"Creator"}})
	dashboardRepo := repository.NewDashboardRepo(db)

	authService := service.NewAuthService(accountRepo, cfg.Auth)
	accountService := service.NewAccountService(accountRepo)
	projectService := service.NewProjectService(projectRepo, store)
	kolService := service.NewKOLService(kolRepo, projectRepo, store)
	dataTrackingService := service.NewDataTrackingService(dataTrackingRepo, projectRepo, store)
	trackingNumberService := service.NewTrackingNumberService(trackingNumberRepo, projectRepo, store)
	analyticsService := service.NewCreatorAnalyticsService(analyticsRepo, creatorRepo)
	videoAnalyticsService := service.NewVideoAnalyticsService(videoAnalyticsRepo, creatorRepo)
	liveAnalyticsService := service.NewLiveAnalyticsService(liveAnalyticsRepo, creatorRepo)
	demographicsService := service.NewDemographicsService(demographicsRepo, creatorRepo)
	trendService := service.NewTrendService(trendRepo, creatorRepo)
	creatorService := service.NewCreatorService(creatorRepo, analyticsService, videoAnalyticsService, liveAnalyticsService, demographicsService, trendService)
	dashboardService := service.NewDashboardService(dashboardRepo)

	creatorChildRoute := handler.ResourceRoute{IDParam: "record_id", ParentParam: "creator_id"}
	handlers := &api.HandlersGroup{
		AuthHandler:           handler.NewAuthHandler(authService),
		AccountHandler:        handler.NewAccountHandler(accountService),
		ProjectHandler:        handler.NewResourceHandler[model.Project, dto.ProjectDTO](projectService, handler.ResourceRoute{IDParam: "project_id"}),
		KOLHandler:            handler.NewResourceHandler[model.KOL, dto.KOLDTO](kolService, handler.ResourceRoute{IDParam: "kol_id", ParentParam: "project_id", Attachable: true}),
		DataTrackingHandler:   handler.NewResourceHandler[model.DataTracking, dto.DataTrackingDTO](dataTrackingService, handler.ResourceRoute{IDParam: "tracking_id", ParentParam: "project_id", Attachable: true}),
		TrackingNumberHandler: handler.NewResourceHandler[model.TrackingNumber, dto.TrackingNumberDTO](trackingNumberService, handler.ResourceRoute{IDParam: "tracking_id", ParentParam: "project_id", Attachable: true}),
		CreatorHandler:        handler.NewCreatorHandler(creatorService),
		AnalyticsHandler:      handler.NewResourceHandler[model.CreatorAnalytics, dto.CreatorAnalyticsDTO](analyticsService, creatorChildRoute),
		VideoAnalyticsHandler: handler.NewResourceHandler[model.VideoAnalytics, dto.VideoAnalyticsDTO](videoAnalyticsService, creatorChildRoute),
		LiveAnalyticsHandler:  handler.NewResourceHandler[model.LiveAnalytics, dto.LiveAnalyticsDTO](liveAnalyticsService, creatorChildRoute),
		DemographicsHandler:   handler.NewResourceHandler[model.FollowerDemographics, dto.FollowerDemographicsDTO](demographicsService, creatorChildRoute),
		TrendHandler:          handler.NewTrendHandler(trendService),
		DashboardHandler:      handler.NewDashboardHandler(dashboardService),
	}
	if local, ok := store.(*storage.LocalStore); ok {
		handlers.Media = local
	}

	router := api.SetupRouter(handlers, cfg.Logstash.Index)

	return &ApplicationContainer{
		Router:      router,
		DB:          db,
		Store:       store,
		AuthService: authService,
	}, nil
}
