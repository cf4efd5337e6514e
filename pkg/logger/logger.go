// Package logger 提供统一的日志框架
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Config 日志配置
type Config struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"` // json/console
	Output     string `yaml:"output" json:"output"` // stdout/stderr/file
	FilePath   string `yaml:"file_path,omitempty" json:"file_path,omitempty"`
	TimeFormat string `yaml:"time_format,omitempty" json:"time_format,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stderr":
			output = os.Stderr
		case "file":
			if cfg.FilePath != "" {
				f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					output = f
				} else {
					output = os.Stdout
				}
			} else {
				output = os.Stdout
			}
		default:
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		Init(DefaultConfig())
	}
	return &logger
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// SchedulerLogger 排班引擎专用日志器
type SchedulerLogger struct {
	base *zerolog.Logger
}

// NewSchedulerLogger 创建排班引擎日志器
func NewSchedulerLogger() *SchedulerLogger {
	l := Get().With().Str("component", "scheduler").Logger()
	return &SchedulerLogger{base: &l}
}

// StartSchedule 记录排班开始
func (l *SchedulerLogger) StartSchedule(scheduleID string, employees, days int) {
	l.base.Info().
		Str("schedule_id", scheduleID).
		Int("employees", employees).
		Int("days", days).
		Msg("开始生成排班")
}

// ConstraintViolation 记录约束违反
func (l *SchedulerLogger) ConstraintViolation(constraint, details string) {
	l.base.Warn().
		Str("constraint", constraint).
		Str("details", details).
		Msg("约束违反")
}

// ScheduleComplete 记录排班完成
func (l *SchedulerLogger) ScheduleComplete(scheduleID string, duration time.Duration, score float64) {
	l.base.Info().
		Str("schedule_id", scheduleID).
		Dur("duration", duration).
		Float64("score", score).
		Msg("排班生成完成")
}

// SearchLogger 局部搜索/迭代局部搜索专用日志器，挂载固定字段（component、run）标识日志来源
type SearchLogger struct {
	base *zerolog.Logger
}

// NewSearchLogger 创建搜索日志器，run 标识产生日志的搜索组件（如 local-search、iterated-local-search）
func NewSearchLogger(run string) *SearchLogger {
	l := Get().With().Str("component", "ils").Str("run", run).Logger()
	return &SearchLogger{base: &l}
}

// Descent 记录一次局部搜索下降的起止
func (l *SearchLogger) Descent(startScore, endScore string, iterations int) {
	l.base.Debug().
		Str("start_score", startScore).
		Str("end_score", endScore).
		Int("iterations", iterations).
		Msg("local search descent complete")
}

// Round 记录一次外层迭代
func (l *SearchLogger) Round(iteration uint64, currentScore string, accepted bool) {
	l.base.Debug().
		Uint64("iteration", iteration).
		Str("current_score", currentScore).
		Bool("accepted_new", accepted).
		Msg("ils round complete")
}

// BestFound 记录发现了更优的历史最佳解
func (l *SearchLogger) BestFound(iteration uint64, score string) {
	l.base.Debug().
		Uint64("iteration", iteration).
		Str("score", score).
		Msg("new best solution recorded")
}

// Restart 记录周期性随机重启
func (l *SearchLogger) Restart(iteration uint64) {
	l.base.Debug().
		Uint64("iteration", iteration).
		Msg("periodic random restart")
}

