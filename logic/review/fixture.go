package review

import "contract-consult/types"

const (
	fixtureRequestID = "9056944B-5E3D-5204-9B58-31A57DD195BA"
	fixtureTaskID    = "ea524498-d7e6-4083-9b3f-410417950fc6"
	fixtureUnit      = "page"

	partiesOriginal = "甲方:上海东普信息科技有限公司\n乙方:深圳市优博讯科技股份有限公司"
)

// FixtureSections 一次已完成的合同审查批次（模拟数据）
// 每次调用都重新构造，调用方可以随意修改返回值
func FixtureSections() []types.ContractSection {
	return []types.ContractSection{
		{
			Usage:     &types.Usage{Input: 0, Unit: fixtureUnit},
			RequestID: fixtureRequestID,
			Output: &types.Output{
				Result: &types.Result{
					ExamineResult: "此处无需修改",
					RuleTitle:     "投标保证金要求,收取金额计算",
					ExamineBrief:  "本任务为审查投标保证金要求,合同中未涉及投标保证金的具体条款。由于合同文本是关于工业手机M9的补充协议,主要涉及设备价格调整和售后服务承诺,并不涉及招标投标过程中的投标保证金。因此,合同文本在此方面不存在缺陷或风险,无需进行修改。",
					RiskLevel:     types.RiskLevelNormal,
					SubRisks: []types.SubRisk{
						{ResultType: types.ResultTypePass},
					},
					RuleSequence: "2.1",
				},
				ResultTaskID: fixtureTaskID,
			},
			Success:        succeeded(),
			HTTPStatusCode: "200",
		},
		{
			Usage:     &types.Usage{Input: 0, Unit: fixtureUnit},
			RequestID: fixtureRequestID,
			Output: &types.Output{
				Result: &types.Result{
					ExamineResult: "需要修改",
					RuleTag:       "审查合同的合法性",
					RuleTitle:     "投标保证金要求,收取金额计算",
					ExamineBrief:  "本任务为审查合同主体条款的信息完整性和主体资格的有效性。合同文本中仅提供了双方公司的名称,缺少详细的主体信息和主体资格的有效性证明,因此应当做如下修正,以避免潜在的法律风险。",
					RiskLevel:     types.RiskLevelHigh,
					SubRisks: []types.SubRisk{
						{
							RiskClause:      "合同主体条款",
							RiskBrief:       "主体信息不完整",
							RiskExplain:     "合同文本中仅提供了双方公司的名称,但缺少详细的主体信息,如统一社会信用代码、法定代表人姓名、住所地等,可能导致法律风险。",
							ResultType:      types.ResultTypeModify,
							OriginalContent: partiesOriginal,
							ResultContent:   "甲方:上海东普信息科技有限公司,注册地址:上海市浦东新区XX路XX号,法定代表人:张伟,统一社会信用代码:91310000MA07FX2036,银行账户:6222020012345678901\n乙方:深圳市优博讯科技股份有限公司,注册地址:深圳市南山区XX路XX号,法定代表人:李华,统一社会信用代码:91440300MA07FX2037,银行账户:6222020012345678902",
						},
						{
							RiskClause:      "合同主体条款",
							RiskBrief:       "主体资格有效性未确认",
							RiskExplain:     "合同文本中未明确表示双方是否依法成立并有效存续,可能导致法律风险。",
							ResultType:      types.ResultTypeAdd,
							OriginalContent: partiesOriginal,
							ResultContent:   "\n双方确认,甲方和乙方均为依法成立并有效存续的企业法人,具备签订本合同的主体资格。",
						},
					},
					RuleSequence: "1.1",
				},
				ResultTaskID: fixtureTaskID,
			},
			Success:        succeeded(),
			HTTPStatusCode: "200",
		},
		{
			Usage:     &types.Usage{Input: 1, Unit: fixtureUnit},
			RequestID: fixtureRequestID,
			Output: &types.Output{
				// 空对象：该页没有审查结论
				Result:       &types.Result{},
				ResultTaskID: fixtureTaskID,
			},
			Success:        succeeded(),
			HTTPStatusCode: "200",
		},
	}
}

func succeeded() *bool {
	ok := true
	return &ok
}
