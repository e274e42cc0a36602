// Package config holds the compiler's own configuration: logging,
// rule-executor iteration caps, and which catalog/plan-cache backend
// to wire in. Structurally mirrors the teacher's own nested,
// JSON-tagged config package.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config 应用程序配置
type Config struct {
	Log       LogConfig       `json:"log"`
	Analyzer  AnalyzerConfig  `json:"analyzer"`
	Optimizer OptimizerConfig `json:"optimizer"`
	PlanCache PlanCacheConfig `json:"plan_cache"`
	Catalog   CatalogConfig   `json:"catalog"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // json or text
}

// AnalyzerConfig 分析器配置
type AnalyzerConfig struct {
	// MaxIterations bounds the Analyzer's "Resolution" fixed-point
	// batch.
	MaxIterations int `json:"max_iterations"`
}

// OptimizerConfig 优化器配置
type OptimizerConfig struct {
	Enabled bool `json:"enabled"`
	// MaxIterations bounds the Optimizer's "Operator Optimizations"
	// fixed-point batch.
	MaxIterations int `json:"max_iterations"`
	// CNFMaxClauses caps CNFConversion's clause blow-up; a predicate
	// that would expand past this is left in its original shape.
	CNFMaxClauses int `json:"cnf_max_clauses"`
}

// PlanCacheConfig 计划缓存配置
type PlanCacheConfig struct {
	// Backend selects the PlanCache implementation: "memory" or
	// "badger".
	Backend    string        `json:"backend"`
	MaxSize    int           `json:"max_size"`
	TTL        time.Duration `json:"ttl"`
	BadgerPath string        `json:"badger_path"`
}

// CatalogConfig 目录配置
type CatalogConfig struct {
	// Driver selects the catalog.SQLCatalog dialect: "sqlite",
	// "mysql", or "postgres". Empty means use catalog.Memory instead.
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Analyzer: AnalyzerConfig{
			MaxIterations: 100,
		},
		Optimizer: OptimizerConfig{
			Enabled:       true,
			MaxIterations: 100,
			CNFMaxClauses: 64,
		},
		PlanCache: PlanCacheConfig{
			Backend: "memory",
			MaxSize: 1000,
			TTL:     10 * time.Minute,
		},
		Catalog: CatalogConfig{
			Driver: "",
		},
	}
}

// LoadConfig 从文件加载配置
func LoadConfig(configPath string) (*Config, error) {
	// 如果没有指定配置文件，使用默认配置
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// 检查配置文件是否存在
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	// 读取配置文件
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解析配置
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 验证配置
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigOrDefault 尝试从常见位置加载配置文件
func LoadConfigOrDefault() *Config {
	// 尝试的配置文件路径
	possiblePaths := []string{
		"config.json",
		"./config/config.json",
		"/etc/logicplan/config.json",
	}

	// 尝试从环境变量获取配置文件路径
	if envPath := os.Getenv("LOGICPLAN_CONFIG"); envPath != "" {
		if cfg, err := LoadConfig(envPath); err == nil {
			return cfg
		}
	}

	// 尝试从常见位置加载
	for _, path := range possiblePaths {
		if absPath, err := filepath.Abs(path); err == nil {
			if cfg, err := LoadConfig(absPath); err == nil {
				return cfg
			}
		}
	}

	// 使用默认配置
	return DefaultConfig()
}

// validateConfig 验证配置
func validateConfig(cfg *Config) error {
	if cfg.Analyzer.MaxIterations < 1 {
		return fmt.Errorf("分析器最大迭代次数必须大于0")
	}

	if cfg.Optimizer.MaxIterations < 1 {
		return fmt.Errorf("优化器最大迭代次数必须大于0")
	}

	if cfg.Optimizer.CNFMaxClauses < 1 {
		return fmt.Errorf("CNF最大子句数必须大于0")
	}

	if cfg.PlanCache.Backend != "memory" && cfg.PlanCache.Backend != "badger" {
		return fmt.Errorf("无效的计划缓存后端: %s", cfg.PlanCache.Backend)
	}

	if cfg.PlanCache.MaxSize < 1 {
		return fmt.Errorf("计划缓存最大大小必须大于0")
	}

	switch cfg.Catalog.Driver {
	case "", "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("无效的目录驱动: %s", cfg.Catalog.Driver)
	}

	return nil
}
