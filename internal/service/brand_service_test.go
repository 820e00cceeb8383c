package service

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/model"
	"NovaAff/internal/pkg/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsInput(t *testing.T) *dto.CreatorAnalyticsDTO {
	return &dto.CreatorAnalyticsDTO{
		GMV:                      util.Ptr(15000.0),
		ProductsSold:             util.Ptr(int64(320)),
		GPM:                      util.Ptr(45.2),
		AverageGMVPerCustomer:    util.Ptr(46.8),
		CommissionRate:           util.Ptr(12.5),
		TotalProducts:            util.Ptr(int64(40)),
		PriceRangeMin:            util.Ptr(5.0),
		PriceRangeMax:            util.Ptr(120.0),
		BrandsCollaborated:       util.Ptr(int64(8)),
		LiveGMVPercentage:        util.Ptr(40.0),
		VideoGMVPercentage:       util.Ptr(50.0),
		ProductCardGMVPercentage: util.Ptr(10.0),
		StartDate:                mustDate(t, "01/05/2025"),
		EndDate:                  mustDate(t, "31/05/2025"),
	}
}

func TestCreator_CreateAndSearch(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	c, err := f.creators.Create(ctx, 0, creatorInput("lan.beauty", model.CategoryTech, model.CategoryBeauty, model.CategoryTech), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{model.CategoryTech, model.CategoryBeauty}, *c.Categories)
	assert.Equal(t, []string{"Technology", "Beauty"}, c.CategoryDisplay)
	require.NotNil(t, c.GenderDisplay)
	assert.Equal(t, "Female", *c.GenderDisplay)

	_, err = f.creators.Create(ctx, 0, creatorInput("lan.beauty"), nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"creator with this username already exists."}, ve.Errors["username"])

	other := creatorInput("minh_gaming", model.CategoryGaming)
	other.Gender = util.Ptr(model.GenderMale)
	_, err = f.creators.Create(ctx, 0, other, nil)
	require.NoError(t, err)

	_, err = f.creators.Create(ctx, 0, creatorInput("bad_category", "cooking"), nil)
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "categories")

	all, err := f.creators.Search(ctx, &dto.CreatorQueryDTO{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCategory, err := f.creators.Search(ctx, &dto.CreatorQueryDTO{Category: model.CategoryBeauty})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "lan.beauty", *byCategory[0].Username)

	byGender, err := f.creators.Search(ctx, &dto.CreatorQueryDTO{Gender: model.GenderMale})
	require.NoError(t, err)
	require.Len(t, byGender, 1)
	assert.Equal(t, "minh_gaming", *byGender[0].Username)

	bySearch, err := f.creators.Search(ctx, &dto.CreatorQueryDTO{Search: "GAMING"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 1)

	none, err := f.creators.Search(ctx, &dto.CreatorQueryDTO{Search: "100%"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreator_DetailAndCascade(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	c, err := f.creators.Create(ctx, 0, creatorInput("lan.beauty", model.CategoryBeauty), nil)
	require.NoError(t, err)

	detail, err := f.creators.Detail(ctx, *c.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.LatestAnalytics)
	assert.Nil(t, detail.LatestDemographics)
	assert.Empty(t, detail.TrendData)

	a, err := f.analytics.Create(ctx, *c.ID, analyticsInput(t), nil)
	require.NoError(t, err)
	assert.Equal(t, "Display lan.beauty", *a.CreatorName)
	assert.Equal(t, "lan.beauty", *a.CreatorUsername)
	var stored model.CreatorAnalytics
	require.NoError(t, f.db.Take(&stored, *a.ID).Error)
	assert.NotNil(t, stored.CategoryPerformance)
	assert.Empty(t, stored.CategoryPerformance)

	_, err = f.trends.Create(ctx, *c.ID, trendInput(daysAgo(3)), nil)
	require.NoError(t, err)
	_, err = f.trends.Create(ctx, *c.ID, trendInput(daysAgo(90)), nil)
	require.NoError(t, err)

	detail, err = f.creators.Detail(ctx, *c.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.LatestAnalytics)
	assert.Equal(t, *a.ID, *detail.LatestAnalytics.ID)
	// 详情中的趋势不受 30 天窗口限制
	assert.Len(t, detail.TrendData, 2)
	assert.Equal(t, "lan.beauty", *detail.Username)

	_, err = f.creators.Detail(ctx, *c.ID+100)
	assert.ErrorIs(t, err, ErrCreatorNotFound)

	_, err = f.analytics.Get(ctx, *a.ID, *c.ID+100)
	assert.ErrorIs(t, err, ErrCreatorNotFound)

	require.NoError(t, f.creators.Delete(ctx, *c.ID, 0))
	var trends, analytics int64
	require.NoError(t, f.db.Model(&model.TrendData{}).Count(&trends).Error)
	require.NoError(t, f.db.Model(&model.CreatorAnalytics{}).Count(&analytics).Error)
	assert.Zero(t, trends)
	assert.Zero(t, analytics)
}

func TestCreator_PatchWithoutOptionalFields(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	// 创建时未填写 tiktok_url 与 avatar
	c, err := f.creators.Create(ctx, 0, creatorInput("lan.beauty", model.CategoryBeauty), nil)
	require.NoError(t, err)
	require.NotNil(t, c.TiktokURL)
	assert.Empty(t, *c.TiktokURL)

	patched, err := f.creators.Update(ctx, *c.ID, 0, &dto.CreatorDTO{DisplayName: util.Ptr("New name")}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "New name", *patched.DisplayName)
	assert.Equal(t, "lan.beauty", *patched.Username)
	assert.Empty(t, *patched.TiktokURL)

	patched, err = f.creators.Update(ctx, *c.ID, 0, &dto.CreatorDTO{TiktokURL: util.Ptr("https://www.tiktok.com/@lan")}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://www.tiktok.com/@lan", *patched.TiktokURL)
	assert.Equal(t, "New name", *patched.DisplayName)

	_, err = f.creators.Update(ctx, *c.ID, 0, &dto.CreatorDTO{TiktokURL: util.Ptr("not a url")}, true, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"Enter a valid URL."}, ve.Errors["tiktok_url"])
}

func TestCreator_DetailLatestSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	c, err := f.creators.Create(ctx, 0, creatorInput("lan.beauty", model.CategoryBeauty), nil)
	require.NoError(t, err)

	a, err := f.analytics.Create(ctx, *c.ID, analyticsInput(t), nil)
	require.NoError(t, err)
	v, err := f.videos.Create(ctx, *c.ID, &dto.VideoAnalyticsDTO{
		TotalVideos:           util.Ptr(int64(42)),
		AverageViews:          util.Ptr(int64(18000)),
		AverageEngagementRate: util.Ptr(6.5),
		GPMVideo:              util.Ptr(21.3),
		StartDate:             mustDate(t, "01/05/2025"),
		EndDate:               mustDate(t, "2025-05-31"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Display lan.beauty", *v.CreatorName)
	assert.Equal(t, "31/05/2025", v.EndDate.String())

	l, err := f.lives.Create(ctx, *c.ID, &dto.LiveAnalyticsDTO{
		TotalLiveSessions:     util.Ptr(int64(12)),
		AverageViewers:        util.Ptr(int64(650)),
		AverageEngagementRate: util.Ptr(9.1),
		GPMLive:               util.Ptr(33.0),
		StartDate:             mustDate(t, "01/05/2025"),
		EndDate:               mustDate(t, "31/05/2025"),
	}, nil)
	require.NoError(t, err)

	demographics := func(snapshot string, locations []model.LocationShare) *dto.FollowerDemographicsDTO {
		return &dto.FollowerDemographicsDTO{
			MalePercentage:      util.Ptr(30.0),
			FemalePercentage:    util.Ptr(70.0),
			Age1824Percentage:   util.Ptr(45.0),
			Age2534Percentage:   util.Ptr(35.0),
			Age3544Percentage:   util.Ptr(12.0),
			Age4554Percentage:   util.Ptr(5.0),
			Age55PlusPercentage: util.Ptr(3.0),
			TopLocations:        &locations,
			SnapshotDate:        mustDate(t, snapshot),
		}
	}
	_, err = f.audience.Create(ctx, *c.ID, demographics("01/05/2025", nil), nil)
	require.NoError(t, err)
	d, err := f.audience.Create(ctx, *c.ID, demographics("01/06/2025", []model.LocationShare{
		{Location: "Ho Chi Minh City", Percentage: 42.5},
		{Location: "Ha Noi", Percentage: 31},
	}), nil)
	require.NoError(t, err)

	_, err = f.audience.Create(ctx, *c.ID, &dto.FollowerDemographicsDTO{SnapshotDate: mustDate(t, "01/06/2025")}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "male_percentage")

	detail, err := f.creators.Detail(ctx, *c.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.LatestAnalytics)
	require.NotNil(t, detail.LatestVideoAnalytics)
	require.NotNil(t, detail.LatestLiveAnalytics)
	require.NotNil(t, detail.LatestDemographics)
	assert.Equal(t, *a.ID, *detail.LatestAnalytics.ID)
	assert.Equal(t, *v.ID, *detail.LatestVideoAnalytics.ID)
	assert.Equal(t, *l.ID, *detail.LatestLiveAnalytics.ID)
	assert.Equal(t, *d.ID, *detail.LatestDemographics.ID)
	assert.Equal(t, int64(42), *detail.LatestVideoAnalytics.TotalVideos)
	assert.Equal(t, 33.0, *detail.LatestLiveAnalytics.GPMLive)
	assert.Equal(t, "01/06/2025", detail.LatestDemographics.SnapshotDate.String())

	// top_locations 经 JSON 列存取后保持原样
	require.NotNil(t, detail.LatestDemographics.TopLocations)
	assert.Equal(t, []model.LocationShare{
		{Location: "Ho Chi Minh City", Percentage: 42.5},
		{Location: "Ha Noi", Percentage: 31},
	}, *detail.LatestDemographics.TopLocations)

	var first model.FollowerDemographics
	require.NoError(t, f.db.Where("creator_id = ?", *c.ID).Order("id ASC").Take(&first).Error)
	assert.NotNil(t, first.TopLocations)
	assert.Empty(t, first.TopLocations)

	require.NoError(t, f.creators.Delete(ctx, *c.ID, 0))
	for _, m := range []any{&model.VideoAnalytics{}, &model.LiveAnalytics{}, &model.FollowerDemographics{}} {
		var count int64
		require.NoError(t, f.db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T", m)
	}
}

func TestTrends_Window(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	c, err := f.creators.Create(ctx, 0, creatorInput("lan.beauty"), nil)
	require.NoError(t, err)
	for _, n := range []int{5, 40, 100} {
		_, err = f.trends.Create(ctx, *c.ID, trendInput(daysAgo(n)), nil)
		require.NoError(t, err)
	}
	iso := func(n int) string { return daysAgo(n).Time().Format(dto.ISODateLayout) }

	tests := []struct {
		name  string
		query *dto.TrendQueryDTO
		want  []string
	}{
		{name: "default window", query: nil, want: []string{daysAgo(5).String()}},
		{name: "malformed bounds fall back", query: &dto.TrendQueryDTO{StartDate: "yesterday", EndDate: "31/12/2025"}, want: []string{daysAgo(5).String()}},
		{name: "start only", query: &dto.TrendQueryDTO{StartDate: iso(60)}, want: []string{daysAgo(5).String(), daysAgo(40).String()}},
		{name: "end only", query: &dto.TrendQueryDTO{EndDate: iso(50)}, want: []string{daysAgo(100).String()}},
		{name: "both bounds", query: &dto.TrendQueryDTO{StartDate: iso(120), EndDate: iso(30)}, want: []string{daysAgo(40).String(), daysAgo(100).String()}},
		{name: "valid start with malformed end", query: &dto.TrendQueryDTO{StartDate: iso(45), EndDate: "soon"}, want: []string{daysAgo(5).String(), daysAgo(40).String()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := f.trends.Trends(ctx, *c.ID, tt.query)
			require.NoError(t, err)
			got := make([]string, 0, len(list))
			for _, item := range list {
				got = append(got, item.Date.String())
				assert.Equal(t, "Display lan.beauty", *item.CreatorName)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = f.trends.Trends(ctx, *c.ID+100, nil)
	assert.ErrorIs(t, err, ErrCreatorNotFound)
}

func TestTrends_UniquePerDay(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	c, err := f.creators.Create(ctx, 0, creatorInput("lan.beauty"), nil)
	require.NoError(t, err)

	_, err = f.trends.Create(ctx, *c.ID, trendInput(daysAgo(1)), nil)
	require.NoError(t, err)
	_, err = f.trends.Create(ctx, *c.ID, trendInput(daysAgo(1)), nil)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"The fields creator, date must make a unique set."}, ve.Errors[util.NonFieldErrors])
}

func TestTrendWindow(t *testing.T) {
	today := *mustDate(t, "2025-03-31")

	from, to := trendWindow(nil, today)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, "01/03/2025", dto.NewDate(*from).String())
	assert.Equal(t, "31/03/2025", dto.NewDate(*to).String())

	from, to = trendWindow(&dto.TrendQueryDTO{EndDate: "2025-02-01"}, today)
	assert.Nil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, "01/02/2025", dto.NewDate(*to).String())
}

func TestDashboard_Stats(t *testing.T) {
	f := newFixture(t)
	ctx := f.adminContext(t)

	empty, err := f.dashboard.GetStats(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, empty.ID)
	assert.Equal(t, dto.Today().String(), empty.Date.String())
	assert.Zero(t, *empty.ClicksToday)
	assert.Zero(t, *empty.OrdersToday)
	assert.Zero(t, *empty.RevenueToday)

	saved, err := f.dashboard.SaveStats(ctx, &dto.DashboardStatsDTO{
		Date:         mustDate(t, "2025-06-01"),
		ClicksToday:  util.Ptr(int64(120)),
		OrdersToday:  util.Ptr(int64(8)),
		RevenueToday: util.Ptr(356.75),
	})
	require.NoError(t, err)
	require.NotNil(t, saved.ID)

	got, err := f.dashboard.GetStats(ctx, &dto.DashboardQueryDTO{Date: "01/06/2025"})
	require.NoError(t, err)
	assert.Equal(t, int64(120), *got.ClicksToday)
	assert.Equal(t, 356.75, *got.RevenueToday)

	// 同一天再次写入覆盖原值
	updated, err := f.dashboard.SaveStats(ctx, &dto.DashboardStatsDTO{
		Date:         mustDate(t, "01/06/2025"),
		ClicksToday:  util.Ptr(int64(200)),
		OrdersToday:  util.Ptr(int64(9)),
		RevenueToday: util.Ptr(400.0),
	})
	require.NoError(t, err)
	assert.Equal(t, *saved.ID, *updated.ID)
	assert.Equal(t, int64(200), *updated.ClicksToday)

	var count int64
	require.NoError(t, f.db.Model(&model.BrandDashboardStats{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	fallback, err := f.dashboard.GetStats(ctx, &dto.DashboardQueryDTO{Date: "not-a-date"})
	require.NoError(t, err)
	assert.Zero(t, *fallback.ClicksToday)

	_, err = f.dashboard.SaveStats(ctx, &dto.DashboardStatsDTO{Date: mustDate(t, "2025-06-02"), ClicksToday: util.Ptr(int64(-1))})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "clicks_today")
	assert.Contains(t, ve.Errors, "orders_today")
}
