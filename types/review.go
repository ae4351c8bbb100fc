package types

// 审查结果中常见的取值，上游服务并不限定，按开放字符串处理
const (
	RiskLevelNormal = "normal"
	RiskLevelHigh   = "high"

	ResultTypePass   = "通过"
	ResultTypeModify = "需修改"
	ResultTypeAdd    = "需增加"
)

// SubRisk 条款内的单个风险点
// resultType 为 "通过" 时通常只有 resultType 一个字段
type SubRisk struct {
	RiskClause      string `json:"riskClause,omitempty"`
	RiskBrief       string `json:"riskBrief,omitempty"`
	RiskExplain     string `json:"riskExplain,omitempty"`
	ResultType      string `json:"resultType,omitempty"`
	OriginalContent string `json:"originalContent,omitempty"`
	ResultContent   string `json:"resultContent,omitempty"`
}

// Result 单条审查规则的结论
type Result struct {
	ExamineResult string    `json:"examineResult,omitempty"`
	RuleTag       string    `json:"ruleTag,omitempty"`
	RuleTitle     string    `json:"ruleTitle,omitempty"`
	ExamineBrief  string    `json:"examineBrief,omitempty"`
	RiskLevel     string    `json:"riskLevel,omitempty"`
	SubRisks      []SubRisk `json:"subRisks,omitempty"`
	// 形如 "1.1"、"2.1"，只作排序键，不做数值解析
	RuleSequence string `json:"ruleSequence,omitempty"`
}

// HasRisk 是否存在需要修改或补充的风险点
func (r *Result) HasRisk() bool {
	if r == nil {
		return false
	}
	for _, sr := range r.SubRisks {
		if sr.ResultType != "" && sr.ResultType != ResultTypePass {
			return true
		}
	}
	return false
}

// Output Result 为 nil 或空对象都表示该单元没有审查结论
type Output struct {
	Result       *Result `json:"result"`
	ResultTaskID string  `json:"resultTaskId"`
}

type Usage struct {
	Input int    `json:"input"`
	Unit  string `json:"unit" binding:"required"`
}

// ContractSection 审查服务返回的单条信封，字段大小写与上游保持一致
// 信封字段全部必填；Success 用指针区分 false 与缺失
type ContractSection struct {
	Usage          *Usage  `json:"Usage" binding:"required"`
	RequestID      string  `json:"RequestId" binding:"required"`
	Output         *Output `json:"Output" binding:"required"`
	Success        *bool   `json:"Success" binding:"required"`
	HTTPStatusCode string  `json:"httpStatusCode" binding:"required"`
}
