package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "contract-consult",
	Short:        "合同审查结果展示与 AI 法律咨询服务",
	Long:         `展示合同审查结果，并把用户问题连同审查结果转发给 LLM，返回 AI 顾问的回答。`,
	SilenceUsage: true,
	// 不带子命令时直接启动服务
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "配置文件路径")
	rootCmd.AddCommand(serveCmd)
}
