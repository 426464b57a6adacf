package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration 提供更灵活的反序列化能力，同时兼容纯秒数与 Go Duration 字符串。
type Duration time.Duration

// UnmarshalText 解析 "30s"、"5m" 或纯数字秒值（允许小数）；Load 的 decode hook 也走这里。
func (d *Duration) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*d = Duration(0)
		return nil
	}

	if parsed, err := time.ParseDuration(raw); err == nil {
		*d = Duration(parsed)
		return nil
	}

	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		*d = Duration(time.Duration(seconds * float64(time.Second)))
		return nil
	}

	return fmt.Errorf("无法解析 Duration 字段: %s", raw)
}

// DurationValue 返回真实的 time.Duration，便于调用方计算。
func (d Duration) DurationValue() time.Duration {
	return time.Duration(d)
}

// 支持的访问日志格式，对应 Fiber logger 中间件的预置模板。
const (
	AccessLogFormatCommon   = "common"
	AccessLogFormatCombined = "combined"
	AccessLogFormatJSON     = "json"
)

// GlobalConfig 描述进程级运行参数：监听地址、日志输出与工作池边界。
type GlobalConfig struct {
	ListenHost              string   `mapstructure:"ListenHost"`
	ListenPort              int      `mapstructure:"ListenPort"`
	LogLevel                string   `mapstructure:"LogLevel"`
	LogFilePath             string   `mapstructure:"LogFilePath"`
	LogMaxSize              int      `mapstructure:"LogMaxSize"`
	LogMaxBackups           int      `mapstructure:"LogMaxBackups"`
	LogCompress             bool     `mapstructure:"LogCompress"`
	AccessLogFormat         string   `mapstructure:"AccessLogFormat"`
	MaxThreads              int      `mapstructure:"MaxThreads"`
	MinThreads              int      `mapstructure:"MinThreads"`
	ThreadIdleTimeoutMillis int      `mapstructure:"ThreadIdleTimeoutMillis"`
	ShutdownTimeout         Duration `mapstructure:"ShutdownTimeout"`
}

// Config 是 TOML 文件映射的整体结构。
type Config struct {
	Global GlobalConfig `mapstructure:",squash"`
}

// ListenAddr 返回 host:port 形式的监听地址。
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Global.ListenHost, c.Global.ListenPort)
}

// PoolBounds 返回工作池三元组 (max, min, idleTimeoutMillis)，0 表示交由服务端默认值决定。
func (c *Config) PoolBounds() (maxThreads, minThreads, idleTimeoutMillis int) {
	g := c.Global
	return g.MaxThreads, g.MinThreads, g.ThreadIdleTimeoutMillis
}

// PoolMode 输出 `bounded` 或 `default`，供启动日志使用。
func (c *Config) PoolMode() string {
	if c.Global.MaxThreads > 0 {
		return "bounded"
	}
	return "default"
}
