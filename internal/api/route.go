package api

import (
	"NovaAff/internal/api/middleware"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/logger"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// crud 为详情路由注册 GET/PUT/PATCH/DELETE
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(g *gin.RouterGroup, base, idParam string, h crud) {
	g.GET(base+"/", h.List)
	g.POST(base+"/", h.Create)
	detail := base + "/:" + idParam + "/"
	g.GET(detail, h.Get)
	g.PUT(detail, h.Update)
	g.PATCH(detail, h.Patch)
	g.DELETE(detail, h.Delete)
}

func SetupRouter(group *HandlersGroup, logIndex string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, logIndex)

	if group.Media != nil && strings.HasPrefix(group.Media.BaseURL(), "/") {
		r.Static(group.Media.BaseURL(), group.Media.BasePath())
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			// 无需登录即可访问的接口
			authGroup.POST("/register/", group.AuthHandler.Register)
			authGroup.POST("/login/", group.AuthHandler.Login)
			authGroup.POST("/refresh/", group.AuthHandler.Refresh)

			authGroup.GET("/profile/", middleware.AuthMiddleware(), group.AuthHandler.Profile)
		}

		// 需要登录 & 拥有 admin 角色
		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(model.RoleAdmin))
		{
			registerCRUD(adminGroup, "/projects", "project_id", group.ProjectHandler)

			projectGroup := adminGroup.Group("/projects/:project_id")
			{
				registerCRUD(projectGroup, "/kols", "kol_id", group.KOLHandler)
				registerCRUD(projectGroup, "/data-tracking", "tracking_id", group.DataTrackingHandler)
				registerCRUD(projectGroup, "/tracking-numbers", "tracking_id", group.TrackingNumberHandler)
			}

			adminGroup.GET("/accounts/", group.AccountHandler.List)
			adminGroup.GET("/accounts/:account_id/", group.AccountHandler.Get)
			adminGroup.PATCH("/accounts/:account_id/", group.AccountHandler.Patch)

			adminGroup.POST("/dashboard/stats/", group.DashboardHandler.SaveStats)
		}

		// brand 与 admin 可读，仅 admin 可写
		brandGroup := apiGroup.Group("/brand")
		brandGroup.Use(middleware.AuthMiddleware(), middleware.ReadOnlyFor([]string{model.RoleBrand, model.RoleAdmin}, model.RoleAdmin))
		{
			brandGroup.GET("/dashboard/stats/", group.DashboardHandler.GetStats)

			registerCRUD(brandGroup, "/creators", "creator_id", group.CreatorHandler)

			creatorGroup := brandGroup.Group("/creators/:creator_id")
			{
				registerCRUD(creatorGroup, "/analytics", "record_id", group.AnalyticsHandler)
				registerCRUD(creatorGroup, "/video-analytics", "record_id", group.VideoAnalyticsHandler)
				registerCRUD(creatorGroup, "/live-analytics", "record_id", group.LiveAnalyticsHandler)
				registerCRUD(creatorGroup, "/demographics", "record_id", group.DemographicsHandler)
				registerCRUD(creatorGroup, "/trends", "record_id", group.TrendHandler)
			}
		}
	}

	return r
}
