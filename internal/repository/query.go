package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// QueryOption 附加查询条件
type QueryOption = func(*gorm.DB) *gorm.DB

func Limit(n int) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}

// DateRange 闭区间过滤，from/to 为 nil 时不限制该端
func DateRange(column string, from, to *time.Time) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}

// Search 多列模糊匹配，任一列命中即可
func Search(term string, columns ...string) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		like := "%" + escapeLike(term) + "%"
		conds := make([]string, 0, len(columns))
		args := make([]any, 0, len(columns))
		for _, c := range columns {
			conds = append(conds, c+" LIKE ? ESCAPE '!'")
			args = append(args, like)
		}
		return db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
}

func Equal(column string, value any) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// JSONArrayContains 判断 JSON 字符串数组列中是否包含给定值，兼容 MySQL 与 SQLite
func JSONArrayContains(column, value string) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" LIKE ? ESCAPE '!'", `%"`+escapeLike(value)+`"%`)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
