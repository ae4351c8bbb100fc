package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"contract-consult/api/response"
)

var tagNameOnce sync.Once

// registerJSONFieldNames 校验错误里使用 JSON 字段名而不是 Go 字段名
func registerJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})
	})
}

// describeBindError 把绑定错误转成字段级说明
func describeBindError(err error) (string, []response.FieldError) {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErrs):
		fieldErrs := make([]response.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fieldErrs = append(fieldErrs, response.FieldError{
				Field: trimRoot(fe.Namespace()),
				Rule:  fe.Tag(),
			})
		}
		return "请求参数校验失败", fieldErrs
	case errors.As(err, &typeErr):
		return "请求参数类型错误", []response.FieldError{{
			Field: typeErr.Field,
			Rule:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}}
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("请求体不是合法的 JSON (offset %d)", syntaxErr.Offset), nil
	case errors.Is(err, io.EOF):
		return "请求体为空", nil
	default:
		return "请求体格式错误", nil
	}
}

// ChatRequest.document_details -> document_details
func trimRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
