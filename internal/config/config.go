// Package config 提供引擎及示例 CLI 的配置管理
package config

import (
	"os"
	"strconv"
)

// EngineConfig 包含引擎的全部可调参数
type EngineConfig struct {
	LocalSearchMaxIterations         int    `yaml:"local_search_max_iterations"`
	WindowSize                       int    `yaml:"window_size"`
	BestSolutionsCapacity            int    `yaml:"best_solutions_capacity"`
	AllSolutionsCapacity             int    `yaml:"all_solutions_capacity"`
	AllSolutionIterationExpiry       uint64 `yaml:"all_solution_iteration_expiry"`
	IteratedLocalSearchMaxIterations uint64 `yaml:"iterated_local_search_max_iterations"`
	MaxAllowNoImprovementFor         uint64 `yaml:"max_allow_no_improvement_for"`
	RestartInterval                  uint64 `yaml:"restart_interval"`
	Seed                             string `yaml:"seed"`
}

// DefaultEngineConfig 返回默认引擎配置
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LocalSearchMaxIterations:         1000,
		WindowSize:                       32,
		BestSolutionsCapacity:            16,
		AllSolutionsCapacity:             10_000,
		AllSolutionIterationExpiry:       10_000,
		IteratedLocalSearchMaxIterations: 250,
		MaxAllowNoImprovementFor:         1,
		RestartInterval:                  50,
		Seed:                             "42",
	}
}

// LoadEngineConfig 从环境变量加载引擎配置，缺省值取自 DefaultEngineConfig
func LoadEngineConfig() EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.LocalSearchMaxIterations = getEnvInt("ILS_LOCAL_SEARCH_MAX_ITERATIONS", cfg.LocalSearchMaxIterations)
	cfg.WindowSize = getEnvInt("ILS_WINDOW_SIZE", cfg.WindowSize)
	cfg.BestSolutionsCapacity = getEnvInt("ILS_BEST_SOLUTIONS_CAPACITY", cfg.BestSolutionsCapacity)
	cfg.AllSolutionsCapacity = getEnvInt("ILS_ALL_SOLUTIONS_CAPACITY", cfg.AllSolutionsCapacity)
	cfg.AllSolutionIterationExpiry = getEnvUint64("ILS_ALL_SOLUTION_ITERATION_EXPIRY", cfg.AllSolutionIterationExpiry)
	cfg.IteratedLocalSearchMaxIterations = getEnvUint64("ILS_MAX_ITERATIONS", cfg.IteratedLocalSearchMaxIterations)
	cfg.MaxAllowNoImprovementFor = getEnvUint64("ILS_MAX_ALLOW_NO_IMPROVEMENT_FOR", cfg.MaxAllowNoImprovementFor)
	cfg.RestartInterval = getEnvUint64("ILS_RESTART_INTERVAL", cfg.RestartInterval)
	cfg.Seed = getEnv("ILS_SEED", cfg.Seed)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if u, err := strconv.ParseUint(value, 10, 64); err == nil {
			return u
		}
	}
	return defaultValue
}
