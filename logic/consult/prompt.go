package consult

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"contract-consult/types"
	"contract-consult/vars"
)

var consultTmpl = template.Must(template.New("consult").Parse(vars.CONSULT))

// BuildPrompt 把审查结果和对话历史拼成一段提示词
// 顺序固定为：文档 -> 对话历史 -> 任务说明
func BuildPrompt(req *types.ChatRequest) (string, error) {
	output := &types.Output{}
	if req.DocumentDetails != nil && req.DocumentDetails.Output != nil {
		output = req.DocumentDetails.Output
	}
	doc, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	var buf bytes.Buffer
	err = consultTmpl.Execute(&buf, map[string]any{
		"Document": string(doc),
		"Messages": req.Messages,
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
