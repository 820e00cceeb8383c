package response

import (
	"NovaAff/internal/pkg/util"
	"NovaAff/internal/service"
	stdjson "encoding/json"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	Created             = 201
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// DefaultValidationMessage 校验失败且未指定提示时使用
const DefaultValidationMessage = "Invalid input."

// ErrorBody 通用错误返回
type ErrorBody struct {
	Error string `json:"error"`
}

// ValidationBody 字段级错误返回
type ValidationBody struct {
	Message string           `json:"message"`
	Errors  util.FieldErrors `json:"errors"`
}

// Success 200 返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Create 201 返回封装
func Create(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204，无返回体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// Invalid 400 字段错误
func Invalid(c *gin.Context, message string, errs util.FieldErrors) {
	if message == "" {
		message = DefaultValidationMessage
	}
	c.JSON(http.StatusBadRequest, ValidationBody{Message: message, Errors: errs})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	ErrorWithMessage(c, err, "")
}

// ErrorWithMessage 校验与认证失败时使用 message 作为顶层提示
func ErrorWithMessage(c *gin.Context, err error, message string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		if ve.Message != "" {
			message = ve.Message
		}
		Invalid(c, message, ve.Errors)
		return
	}

	var ae *service.AuthError
	if errors.As(err, &ae) {
		Invalid(c, message, util.FieldErrors{util.NonFieldErrors: {ae.Error()}})
		return
	}

	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		Fail(c, NotFound, nf.Error())
		return
	}

	if field, msg, ok := bindingError(err); ok {
		Invalid(c, message, util.FieldErrors{field: {msg}})
		return
	}

	for sentinel, code := range service.ErrorMap {
		if errors.Is(err, sentinel) {
			if code >= InternalServerError {
				log.ErrorContext(c.Request.Context(), "Error", "err", err)
			}
			Fail(c, code, sentinel.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "Error", "err", err)
	Fail(c, InternalServerError, service.UnExpectedError.Error())
}

// bindingError 识别请求体绑定阶段的类型与语法错误
func bindingError(err error) (field, msg string, ok bool) {
	var goccyType *json.UnmarshalTypeError
	if errors.As(err, &goccyType) {
		return fieldOrNonField(goccyType.Field), expectMessage(goccyType.Type.Kind().String()), true
	}
	var stdType *stdjson.UnmarshalTypeError
	if errors.As(err, &stdType) {
		return fieldOrNonField(stdType.Field), expectMessage(stdType.Type.Kind().String()), true
	}

	var goccySyntax *json.SyntaxError
	var stdSyntax *stdjson.SyntaxError
	if errors.As(err, &goccySyntax) || errors.As(err, &stdSyntax) {
		return util.NonFieldErrors, fmt.Sprintf("JSON parse error - %s", err.Error()), true
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return util.NonFieldErrors, fmt.Sprintf("\"%s\" is not a valid number.", numErr.Num), true
	}
	return "", "", false
}

func fieldOrNonField(field string) string {
	if field == "" {
		return util.NonFieldErrors
	}
	return field
}

func expectMessage(kind string) string {
	switch kind {
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		return "A valid integer is required."
	case "float32", "float64":
		return "A valid number is required."
	case "bool":
		return "Must be a valid boolean."
	case "string":
		return "Not a valid string."
	case "slice":
		return "Expected a list of items."
	case "map", "struct":
		return "Expected a dictionary of items."
	default:
		return fmt.Sprintf("Incorrect type. Expected %s.", kind)
	}
}
