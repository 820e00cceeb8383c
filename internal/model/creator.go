package model

import (
	"time"

	"gorm.io/datatypes"
)

// 内容分类
const (
	CategoryBeauty        = "beauty"
	CategoryFashion       = "fashion"
	CategoryLifestyle     = "lifestyle"
	CategoryTech          = "tech"
	CategoryEducation     = "education"
	CategoryFood          = "food"
	CategoryTravel        = "travel"
	CategoryFitness       = "fitness"
	CategoryGaming        = "gaming"
	CategoryEntertainment = "entertainment"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// CategoryLabels 分类展示名
var CategoryLabels = map[string]string{
	CategoryBeauty:        "Beauty",
	CategoryFashion:       "Fashion",
	CategoryLifestyle:     "Lifestyle",
	CategoryTech:          "Technology",
	CategoryEducation:     "Education",
	CategoryFood:          "Food & Beverage",
	CategoryTravel:        "Travel",
	CategoryFitness:       "Health & Fitness",
	CategoryGaming:        "Gaming",
	CategoryEntertainment: "Entertainment",
}

var GenderLabels = map[string]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

type Creator struct {
	ID             uint64                      `gorm:"primaryKey"`
	Username       string                      `gorm:"type:varchar(100);uniqueIndex:idx_creator_username;not null"`
	DisplayName    string                      `gorm:"type:varchar(255);not null"`
	TiktokURL      string                      `gorm:"column:tiktok_url;type:varchar(200);not null;default:''"`
	Avatar         string                      `gorm:"type:varchar(500);not null;default:''"`
	Categories     datatypes.JSONSlice[string] `gorm:"not null"`
	Gender         *string                     `gorm:"type:varchar(10)"`
	FollowersCount int64                       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Analytics      []CreatorAnalytics     `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
	VideoAnalytics []VideoAnalytics       `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
	LiveAnalytics  []LiveAnalytics        `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
	Demographics   []FollowerDemographics `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
	Trends         []TrendData            `gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Creator) TableName() string {
	return "creators"
}

// CategoryDisplay 按存储顺序返回分类展示名，未知分类原样返回
func (m *Creator) CategoryDisplay() []string {
	labels := make([]string, 0, len(m.Categories))
	for _, c := range m.Categories {
		if label, ok := CategoryLabels[c]; ok {
			labels = append(labels, label)
		} else {
			labels = append(labels, c)
		}
	}
	return labels
}

func (m *Creator) GenderDisplay() *string {
	if m.Gender == nil {
		return nil
	}
	label, ok := GenderLabels[*m.Gender]
	if !ok {
		label = *m.Gender
	}
	return &label
}
