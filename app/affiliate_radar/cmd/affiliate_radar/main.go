package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "affiliate_radar",
		Usage: "分析积分站活动页面，提取奖励条件并检索联盟营销 (ASP) 渠道",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "配置文件路径",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "分析单个页面并输出 JSON 结果",
				ArgsUsage: "<url>",
				Action:    AnalyzeAction,
			},
			{
				Name:   "mode",
				Usage:  "输出当前凭证下的运行模式 (live / mock)",
				Action: ModeAction,
			},
			{
				Name:   "models",
				Usage:  "列出支持 generateContent 的 Gemini 模型",
				Action: ModelsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
