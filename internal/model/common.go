package model

// Attachable 带视频附件的记录，附件以对象存储 key 保存
type Attachable interface {
	Attachment() *string
	SetAttachment(key *string)
}

// CreatorOwned 归属于创作者的分析记录，Creator 需预加载
type CreatorOwned interface {
	CreatorRef() *Creator
}

// 默认排序
const (
	OrderNewest = "created_at DESC, id DESC"
	OrderByDate = "date DESC, id DESC"
)

// AllModels 迁移顺序，被引用的表在前
func AllModels() []any {
	return []any{
		&Account{},
		&Profile{},
		&Project{},
		&KOL{},
		&DataTracking{},
		&TrackingNumber{},
		&Creator{},
		&CreatorAnalytics{},
		&VideoAnalytics{},
		&LiveAnalytics{},
		&FollowerDemographics{},
		&TrendData{},
		&BrandDashboardStats{},
	}
}
