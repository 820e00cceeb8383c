package dto

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	// DateLayout 输出格式 DD/MM/YYYY
	DateLayout = "02/01/2006"
	// ISODateLayout 查询参数使用的格式
	ISODateLayout = "2006-01-02"

	DateFormatMessage = "Date has wrong format. Use DD/MM/YYYY or YYYY-MM-DD format."
)

// 解析时先尝试 DD/MM/YYYY，再尝试 YYYY-MM-DD，日与月允许一位数
var inputLayouts = []string{"2/1/2006", "2006-1-2"}

// invalidDate 标记无法解析的输入，交由校验器报告字段错误
var invalidDate = Date(time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC))

// Date 日历日期，统一归一到 UTC 零点
type Date time.Time

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today 当天（UTC）
func Today() Date {
	return NewDate(time.Now().UTC())
}

// ParseDate 按 DD/MM/YYYY、YYYY-MM-DD 的顺序解析
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return NewDate(t), true
		}
	}
	return Date{}, false
}

// ParseISODate 只接受 YYYY-MM-DD
func ParseISODate(s string) (Date, bool) {
	t, err := time.ParseInLocation(ISODateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return Date{}, false
	}
	return NewDate(t), true
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) Valid() bool {
	return !time.Time(d).Equal(time.Time(invalidDate))
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 非法输入不返回错误，而是记为 invalidDate 由 validate 标签统一报告
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*d = invalidDate
		return nil
	}
	return d.UnmarshalParam(s)
}

// UnmarshalParam 实现 gin 的 BindUnmarshaler，用于 form 与 query 绑定
func (d *Date) UnmarshalParam(param string) error {
	parsed, ok := ParseDate(param)
	if !ok {
		*d = invalidDate
		return nil
	}
	*d = parsed
	return nil
}
