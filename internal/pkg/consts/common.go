package consts

const (
	MimePrefixVideo = "video"
	// AttachmentField multipart 中携带视频的字段名
	AttachmentField = "video_file"
)

// 请求上下文中的身份信息
const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// 视频附件在对象存储中的前缀
const (
	KOLVideoPrefix          = "videos/kols"
	DataTrackingVideoPrefix = "videos/data_tracking"
	TrackingVideoPrefix     = "videos/tracking"
)

const (
	// TrendWindowDays 趋势默认回看天数
	TrendWindowDays = 30
	// CreatorDetailTrendLimit 创作者详情中返回的趋势条数
	CreatorDetailTrendLimit = 30
)
