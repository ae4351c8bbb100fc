package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeOK   = 0
	CodeFail = -1
)

type Response struct {
	Code int         `json:"code"` // 0:成功, -1:失败
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// FieldError 单个字段的校验失败
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: CodeOK,
		Msg:  "success",
		Data: data,
	})
}

// Fail 带 HTTP 状态码的失败响应，并终止后续中间件
func Fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Response{
		Code: CodeFail,
		Msg:  msg,
	})
}

// Invalid 请求体校验失败
func Invalid(c *gin.Context, msg string, errs []FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Code: CodeFail,
		Msg:  msg,
		Data: gin.H{"errors": errs},
	})
}
