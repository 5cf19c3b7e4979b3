package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/config"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/engine"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/gemini"
	"github.com/iWorld-y/affiliate_radar/app/affiliate_radar/pkg/logger"
)

// loadConfig 加载配置文件；文件不存在时退回默认配置，凭证仍可来自环境变量
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("无法加载配置文件 %s: %w", path, err)
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, fmt.Errorf("无法初始化日志: %w", err)
	}
	return cfg, nil
}

func AnalyzeAction(c *cli.Context) error {
	url := strings.TrimSpace(c.Args().First())
	if url == "" {
		return cli.Exit("URL is required", 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	analyzer, err := engine.NewEngine(c.Context, cfg)
	if err != nil {
		return err
	}
	logger.Log.Infof("运行模式: %s", analyzer.Mode())

	result, err := analyzer.Analyze(c.Context, url)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}

func ModeAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	mode := engine.ModeLive
	if cfg.MockMode() {
		mode = engine.ModeMock
	}
	_, err = fmt.Fprintf(c.App.Writer, "mode=%s fetch=%t generation=%t search=%t\n",
		mode, cfg.FetchReady(), cfg.GenerationReady(), cfg.SearchReady())
	return err
}

func ModelsAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if !cfg.GenerationReady() {
		return cli.Exit("未设置 "+config.EnvGeminiAPIKey, 2)
	}

	models, err := gemini.NewClient(cfg.LLM.APIKey, "").ListGenerationModels(c.Context)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	for _, m := range models {
		if _, err := fmt.Fprintln(c.App.Writer, m.ID()); err != nil {
			return err
		}
	}
	return nil
}
