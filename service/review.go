package service

import (
	"context"

	"contract-consult/logic/review"
	"contract-consult/types"
)

// ReviewSource 合同审查结果来源，后续可替换为真实的审查服务
type ReviewSource interface {
	Sections(ctx context.Context) ([]types.ContractSection, error)
}

// FixtureSource 返回固定的模拟审查批次
type FixtureSource struct{}

func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

func (FixtureSource) Sections(ctx context.Context) ([]types.ContractSection, error) {
	return review.FixtureSections(), nil
}
