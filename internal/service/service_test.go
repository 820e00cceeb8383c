package service

import (
	"NovaAff/internal/api/config"
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/database"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/pkg/storage"
	"NovaAff/internal/pkg/util"
	"NovaAff/internal/repository"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	dir       string
	store     *storage.LocalStore
	accounts  repository.AccountRepo
	auth      AuthService
	account   AccountService
	projects  ProjectService
	kols      ResourceService[model.KOL, dto.KOLDTO]
	tracking  ResourceService[model.DataTracking, dto.DataTrackingDTO]
	numbers   ResourceService[model.TrackingNumber, dto.TrackingNumberDTO]
	creators  CreatorService
	analytics ResourceService[model.CreatorAnalytics, dto.CreatorAnalyticsDTO]
	videos    ResourceService[model.VideoAnalytics, dto.VideoAnalyticsDTO]
	lives     ResourceService[model.LiveAnalytics, dto.LiveAnalyticsDTO]
	audience  ResourceService[model.FollowerDemographics, dto.FollowerDemographicsDTO]
	trends    TrendService
	dashboard DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/media")
	require.NoError(t, err)

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

	analytics := NewCreatorAnalyticsService(repository.NewResourceRepo[model.CreatorAnalytics](db, creatorChild), creatorRepo)
	videos := NewVideoAnalyticsService(repository.NewResourceRepo[model.VideoAnalytics](db, creatorChild), creatorRepo)
	lives := NewLiveAnalyticsService(repository.NewResourceRepo[model.LiveAnalytics](db, creatorChild), creatorRepo)
	audience := NewDemographicsService(repository.NewResourceRepo[model.FollowerDemographics](db, creatorChild), creatorRepo)
	trends := NewTrendService(repository.NewResourceRepo[model.TrendData](db, repository.ResourceOptions{Order: model.OrderByDate, Preloads: []string{"Creator"}}), creatorRepo)

	return &fixture{
		db:        db,
		dir:       dir,
		store:     store,
		accounts:  accountRepo,
		auth:      NewAuthService(accountRepo, config.AuthConfig{}),
		account:   NewAccountService(accountRepo),
		projects:  NewProjectService(projectRepo, store),
		kols:      NewKOLService(kolRepo, projectRepo, store),
		tracking:  NewDataTrackingService(dataTrackingRepo, projectRepo, store),
		numbers:   NewTrackingNumberService(trackingNumberRepo, projectRepo, store),
		analytics: analytics,
		videos:    videos,
		lives:     lives,
		audience:  audience,
		trends:    trends,
		creators:  NewCreatorService(creatorRepo, analytics, videos, lives, audience, trends),
		dashboard: NewDashboardService(repository.NewDashboardRepo(db)),
	}
}

// adminContext 创建管理员并返回携带其身份的上下文
func (f *fixture) adminContext(t *testing.T) context.Context {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.auth.BootstrapAdmin(ctx, config.AdminConfig{Username: "admin01", Password: "admin-pass"}))

	admin, err := f.accounts.GetAccountByUsername(ctx, "admin01")
	require.NoError(t, err)
	require.NotNil(t, admin)
	return security.WithIdentity(ctx, admin.ID, model.RoleAdmin)
}

func mustDate(t *testing.T, s string) *dto.Date {
	t.Helper()
	d, ok := dto.ParseDate(s)
	require.True(t, ok, s)
	return &d
}

func daysAgo(n int) *dto.Date {
	d := dto.NewDate(time.Now().UTC().AddDate(0, 0, -n))
	return &d
}

func projectInput(t *testing.T, code string) *dto.ProjectDTO {
	return &dto.ProjectDTO{
		Name:        util.Ptr("Summer launch"),
		ProjectID:   util.Ptr(code),
		CreatedDate: mustDate(t, "01/06/2025"),
	}
}

func kolInput(t *testing.T, name string) *dto.KOLDTO {
	return &dto.KOLDTO{
		FullName:                util.Ptr(name),
		SubmittedOn:             mustDate(t, "2025-06-02"),
		Email:                   util.Ptr("kol@example.com"),
		PhoneNumber:             util.Ptr("0900000000"),
		Zalo:                    util.Ptr("0900000000"),
		TiktokURL:               util.Ptr("https://www.tiktok.com/@kol"),
		TiktokID:                util.Ptr("@kol"),
		Followers:               util.Ptr("120k"),
		GMV:                     util.Ptr("50m"),
		ChannelIdentifier:       util.Ptr("kol-channel"),
		AppropriateChannelTopic: util.Ptr("beauty"),
		ShippingAddress:         util.Ptr("1 Nguyen Hue, HCMC"),
		BrandApproval:           util.Ptr("approved"),
		Note:                    util.Ptr("first batch"),
		KolKocApprovalTime:      mustDate(t, "03/06/2025"),
		NumberTracking:          util.Ptr("TRK-1"),
		KocConfirmedByNova:      util.Ptr("yes"),
	}
}

func videoAttachment(content string) *dto.Attachment {
	return &dto.Attachment{
		Filename:    "clip.mp4",
		Size:        int64(len(content)),
		ContentType: "video/mp4",
		Extension:   ".mp4",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
	}
}

func creatorInput(username string, categories ...string) *dto.CreatorDTO {
	return &dto.CreatorDTO{
		Username:       util.Ptr(username),
		DisplayName:    util.Ptr("Display " + username),
		Categories:     &categories,
		Gender:         util.Ptr(model.GenderFemale),
		FollowersCount: util.Ptr(int64(1000)),
	}
}

func trendInput(date *dto.Date) *dto.TrendDataDTO {
	return &dto.TrendDataDTO{
		Date:            date,
		GMV:             util.Ptr(1250.5),
		ProductsSold:    util.Ptr(int64(12)),
		FollowersGained: util.Ptr(int64(-3)),
		VideoViews:      util.Ptr(int64(9000)),
		EngagementRate:  util.Ptr(4.2),
	}
}

func dataTrackingInput() *dto.DataTrackingDTO {
	return &dto.DataTrackingDTO{
		Creator:            util.Ptr("Nguyen Van A"),
		CreatorID:          util.Ptr("@kol"),
		AboutVideo:         util.Ptr("unboxing"),
		VideoID:            util.Ptr("7350000000000000001"),
		UploadTime:         util.Ptr("2025-06-05 20:00"),
		View:               util.Ptr(int64(120000)),
		Like:               util.Ptr(int64(8000)),
		Share:              util.Ptr(int64(300)),
		Comment:            util.Ptr(int64(450)),
		ProductLinked:      util.Ptr("https://shop.example.com/p/1"),
		NewFollowers:       util.Ptr(int64(900)),
		ProductImpressions: util.Ptr(int64(40000)),
		ProductEntries:     util.Ptr(int64(2100)),
		GMV:                util.Ptr(int64(35000000)),
		CTR:                util.Ptr(int64(5)),
		RevenueFromVideos:  util.Ptr(int64(12000000)),
	}
}

func trackingNumberInput(t *testing.T, number string) *dto.TrackingNumberDTO {
	return &dto.TrackingNumberDTO{
		TrackingNumber: util.Ptr(number),
		PhoneNumber:    util.Ptr("0900000000"),
		TrackingURL:    util.Ptr("https://track.example.com/" + number),
		PhoneCheck:     util.Ptr(true),
		TrackingDate:   mustDate(t, "10/06/2025"),
		TiktokID:       util.Ptr("@kol"),
	}
}
