package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hello-hub/hello-hub/internal/config"
)

// InitLogger 创建进程唯一的 JSON logger。访问日志经 AccessLogger 以 info 级别写入同一输出，
// 因此 LogLevel 高于 info 时访问日志会被过滤，见 AccessLogVisible。
func InitLogger(cfg config.GlobalConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("无法解析日志级别: %w", err)
	}

	out, fallbackErr := openOutput(cfg)
	if fallbackErr != nil {
		fmt.Fprintf(os.Stderr, "logger_fallback: %v\n", fallbackErr)
	}

	logger := &logrus.Logger{
		Out:       out,
		Formatter: &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano},
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
		ExitFunc:  os.Exit,
	}

	if fallbackErr != nil {
		logger.WithFields(logrus.Fields{
			"action":             "logger_fallback",
			"path":               cfg.LogFilePath,
			"access_log_visible": AccessLogVisible(logger),
		}).Warn(fallbackErr.Error())
	}
	return logger, nil
}

// AccessLogVisible 报告 info 级别（访问日志所用级别）的条目是否会被输出。
func AccessLogVisible(logger *logrus.Logger) bool {
	return logger != nil && logger.IsLevelEnabled(logrus.InfoLevel)
}

// openOutput 返回 stdout 或 lumberjack 滚动文件；目录无法创建时退回 stdout 并附带原因。
func openOutput(cfg config.GlobalConfig) (io.Writer, error) {
	if cfg.LogFilePath == "" {
		return os.Stdout, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0o755); err != nil {
		return os.Stdout, fmt.Errorf("创建日志目录失败: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.LogFilePath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		Compress:   cfg.LogCompress,
		LocalTime:  true,
	}, nil
}
