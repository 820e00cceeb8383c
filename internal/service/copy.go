package service

import (
	"NovaAff/internal/model"
	"reflect"

	"github.com/jinzhu/copier"
	"gorm.io/datatypes"
)

// writeOption DTO 写入 model：跳过未提供的字段，JSON 列需显式转换
var writeOption = copier.Option{
	IgnoreEmpty: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: (*[]string)(nil),
			DstType: datatypes.JSONSlice[string]{},
			Fn: func(src interface{}) (interface{}, error) {
				s := src.(*[]string)
				if s == nil {
					return datatypes.JSONSlice[string]{}, nil
				}
				return datatypes.JSONSlice[string](*s), nil
			},
		},
		{
			SrcType: (*[]model.LocationShare)(nil),
			DstType: datatypes.JSONSlice[model.LocationShare]{},
			Fn: func(src interface{}) (interface{}, error) {
				s := src.(*[]model.LocationShare)
				if s == nil {
					return datatypes.JSONSlice[model.LocationShare]{}, nil
				}
				return datatypes.JSONSlice[model.LocationShare](*s), nil
			},
		},
		{
			SrcType: (*map[string]any)(nil),
			DstType: datatypes.JSONMap{},
			Fn: func(src interface{}) (interface{}, error) {
				m := src.(*map[string]any)
				if m == nil {
					return datatypes.JSONMap{}, nil
				}
				return datatypes.JSONMap(*m), nil
			},
		},
	},
}

// mergeOption 局部更新时把输入叠加到现有数据上
var mergeOption = copier.Option{IgnoreEmpty: true}

// clearBlank 把指向空串的 *string 字段置 nil，库里存的空串按未填写处理
func clearBlank(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || f.Kind() != reflect.Ptr || f.IsNil() {
			continue
		}
		if s, ok := f.Interface().(*string); ok && *s == "" {
			f.Set(reflect.Zero(f.Type()))
		}
	}
}
