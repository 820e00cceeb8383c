package util

import (
	"NovaAff/internal/api/dto"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors 字段名 -> 错误信息列表，字段名取 json 标签
type FieldErrors map[string][]string

// NonFieldErrors 与具体字段无关的错误键
const NonFieldErrors = "non_field_errors"

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("date_fmt", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(dto.Date)
		return !ok || d.Valid()
	})
}

// ValidateDTO 校验结构体，返回按字段归类的错误；无错误时返回 nil
func ValidateDTO(target any) (FieldErrors, error) {
	err := validate.Struct(target)
	if err == nil {
		return nil, nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}

	fields := FieldErrors{}
	for _, fe := range vErrs {
		name := fe.Field()
		if idx := strings.IndexByte(name, '['); idx >= 0 {
			name = name[:idx]
		}
		fields.Add(name, describe(fe))
	}
	return fields, nil
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if isString && fe.Param() == "1" {
			return "This field may not be blank."
		}
		if isString {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	case "date_fmt":
		return dto.DateFormatMessage
	default:
		return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
	}
}
