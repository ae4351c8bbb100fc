package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"contract-consult/api/response"
	"contract-consult/logic/consult"
	"contract-consult/pkg/logger"
	"contract-consult/service"
	"contract-consult/types"
	"contract-consult/vars"
)

type ReviewHandler struct {
	reviews    service.ReviewSource
	consultSvc *service.ConsultService
}

func NewReviewHandler(reviews service.ReviewSource, consultSvc *service.ConsultService) *ReviewHandler {
	registerJSONFieldNames()
	return &ReviewHandler{
		reviews:    reviews,
		consultSvc: consultSvc,
	}
}

// Dashboard 渲染审查结果页面
func (h *ReviewHandler) Dashboard(c *gin.Context) {
	sections, err := h.reviews.Sections(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "load review sections failed", "error", err)
		response.Fail(c, http.StatusInternalServerError, "审查结果加载失败")
		return
	}
	c.HTML(http.StatusOK, vars.PAGE_ANALYSIS, gin.H{"Output": sections})
}

// Output 返回审查结果 JSON
func (h *ReviewHandler) Output(c *gin.Context) {
	sections, err := h.reviews.Sections(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "load review sections failed", "error", err)
		response.Fail(c, http.StatusInternalServerError, "审查结果加载失败")
		return
	}
	c.JSON(http.StatusOK, sections)
}

// Chat 带审查结果向 LLM 提问
func (h *ReviewHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg, fieldErrs := describeBindError(err)
		logger.Warn(c.Request.Context(), "invalid chat request", "error", err)
		response.Invalid(c, msg, fieldErrs)
		return
	}

	msg, err := h.consultSvc.AnswerQuery(c.Request.Context(), &req)
	if err != nil {
		status, text := consultFailure(err)
		response.Fail(c, status, text)
		return
	}

	c.JSON(http.StatusOK, types.ChatReply{Message: *msg})
}

// Health 存活检查
func (h *ReviewHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}

// consultFailure 错误分类 -> HTTP 状态码和对外提示，不暴露上游细节
func consultFailure(err error) (int, string) {
	switch {
	case errors.Is(err, consult.ErrTimeout):
		return http.StatusGatewayTimeout, "AI 顾问响应超时，请稍后重试"
	case errors.Is(err, consult.ErrReplyFormat):
		return http.StatusBadGateway, "AI 顾问返回的内容无法解析"
	case errors.Is(err, consult.ErrDependency):
		return http.StatusBadGateway, "AI 顾问服务暂不可用"
	default:
		return http.StatusInternalServerError, "服务内部错误"
	}
}
