package config

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

var supportedAccessLogFormats = map[string]struct{}{
	AccessLogFormatCommon:   {},
	AccessLogFormatCombined: {},
	AccessLogFormatJSON:     {},
}

const supportedAccessLogFormatList = "common|combined|json"

// Validate 针对语义级别做进一步校验，防止非法配置启动服务。
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("配置为空")
	}

	g := c.Global
	if g.ListenPort <= 0 || g.ListenPort > 65535 {
		return newFieldError(globalField("ListenPort"), "必须在 1-65535")
	}
	if strings.Contains(g.ListenHost, " ") {
		return newFieldError(globalField("ListenHost"), "不允许包含空格")
	}
	if _, err := logrus.ParseLevel(g.LogLevel); err != nil {
		return newFieldError(globalField("LogLevel"), "无法识别的日志级别: "+g.LogLevel)
	}
	if g.LogMaxSize < 0 {
		return newFieldError(globalField("LogMaxSize"), "不能为负数")
	}
	if g.LogMaxBackups < 0 {
		return newFieldError(globalField("LogMaxBackups"), "不能为负数")
	}
	if _, ok := supportedAccessLogFormats[g.AccessLogFormat]; !ok {
		return newFieldError(globalField("AccessLogFormat"), "仅支持 "+supportedAccessLogFormatList)
	}

	if g.MaxThreads < 0 {
		return newFieldError(globalField("MaxThreads"), "不能为负数")
	}
	if g.MinThreads < 0 {
		return newFieldError(globalField("MinThreads"), "不能为负数")
	}
	if g.ThreadIdleTimeoutMillis < 0 {
		return newFieldError(globalField("ThreadIdleTimeoutMillis"), "不能为负数")
	}
	// 只校验显式填写的 MinThreads；留空时的默认下限由 server 包决定。
	if g.MaxThreads > 0 && g.MinThreads > g.MaxThreads {
		return newFieldError(globalField("MinThreads"), "不能大于 MaxThreads")
	}
	if g.ShutdownTimeout.DurationValue() < 0 {
		return newFieldError(globalField("ShutdownTimeout"), "不能为负数")
	}

	return nil
}
