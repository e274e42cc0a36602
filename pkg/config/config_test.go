package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// 验证日志配置
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)

	// 验证分析器配置
	assert.Equal(t, 100, cfg.Analyzer.MaxIterations)

	// 验证优化器配置
	assert.True(t, cfg.Optimizer.Enabled)
	assert.Equal(t, 100, cfg.Optimizer.MaxIterations)
	assert.Equal(t, 64, cfg.Optimizer.CNFMaxClauses)

	// 验证计划缓存配置
	assert.Equal(t, "memory", cfg.PlanCache.Backend)
	assert.Equal(t, 1000, cfg.PlanCache.MaxSize)
	assert.Equal(t, 10*time.Minute, cfg.PlanCache.TTL)

	// 验证目录配置
	assert.Equal(t, "", cfg.Catalog.Driver)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "memory", cfg.PlanCache.Backend)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("non_existent_config.json")

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "配置文件不存在")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.json")

	err := os.WriteFile(configPath, []byte("{invalid json"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "解析配置文件失败")
}

func TestLoadConfig_InvalidAnalyzerMaxIterations(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configData := map[string]interface{}{
		"analyzer": map[string]interface{}{
			"max_iterations": 0,
		},
	}

	jsonData, _ := json.Marshal(configData)
	err := os.WriteFile(configPath, jsonData, 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "分析器最大迭代次数必须大于0")
}

func TestLoadConfig_InvalidPlanCacheBackend(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configData := map[string]interface{}{
		"plan_cache": map[string]interface{}{
			"backend": "redis",
		},
	}

	jsonData, _ := json.Marshal(configData)
	err := os.WriteFile(configPath, jsonData, 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "无效的计划缓存后端")
}

func TestLoadConfig_InvalidCatalogDriver(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configData := map[string]interface{}{
		"catalog": map[string]interface{}{
			"driver": "oracle",
		},
	}

	jsonData, _ := json.Marshal(configData)
	err := os.WriteFile(configPath, jsonData, 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "无效的目录驱动")
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	configData := map[string]interface{}{
		"log": map[string]interface{}{
			"level": "debug",
		},
		"catalog": map[string]interface{}{
			"driver": "sqlite",
			"dsn":    "file::memory:",
		},
	}

	jsonData, _ := json.Marshal(configData)
	err := os.WriteFile(configPath, jsonData, 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Catalog.Driver)
	assert.Equal(t, "file::memory:", cfg.Catalog.DSN)
	// 其他字段应该使用默认值
	assert.Equal(t, 100, cfg.Optimizer.MaxIterations)
}

func TestLoadConfigOrDefault_WithEnvVar(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.json")

	configData := map[string]interface{}{
		"log": map[string]interface{}{
			"level": "warn",
		},
	}

	jsonData, _ := json.Marshal(configData)
	err := os.WriteFile(configPath, jsonData, 0644)
	require.NoError(t, err)

	oldEnv := os.Getenv("LOGICPLAN_CONFIG")
	t.Cleanup(func() {
		os.Setenv("LOGICPLAN_CONFIG", oldEnv)
	})
	os.Setenv("LOGICPLAN_CONFIG", configPath)

	cfg := LoadConfigOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigOrDefault_NoConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	t.Cleanup(func() {
		os.Chdir(oldWd)
	})

	cfg := LoadConfigOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "memory", cfg.PlanCache.Backend) // 使用默认值
}

func TestConfigStructTags(t *testing.T) {
	cfg := DefaultConfig()

	jsonData, err := json.Marshal(cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, jsonData)

	var parsed Config
	err = json.Unmarshal(jsonData, &parsed)
	assert.NoError(t, err)
	assert.Equal(t, cfg.Log.Level, parsed.Log.Level)
	assert.Equal(t, cfg.PlanCache.Backend, parsed.PlanCache.Backend)
}
