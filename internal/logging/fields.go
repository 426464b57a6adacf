package logging

import "github.com/sirupsen/logrus"

// BaseFields 构建 action + 配置路径等基础字段，便于不同入口复用。
func BaseFields(action, configPath string) logrus.Fields {
	return logrus.Fields{
		"action":     action,
		"configPath": configPath,
	}
}

// AccessFields 标记访问日志条目，便于与应用日志区分检索。
func AccessFields() logrus.Fields {
	return logrus.Fields{
		"action": "access",
	}
}

// PoolFields 提供工作池边界字段，供启动与诊断日志复用；bounded=false 时其余字段为 0。
func PoolFields(bounded bool, maxThreads, minThreads, idleTimeoutMillis int) logrus.Fields {
	return logrus.Fields{
		"pool_bounded":    bounded,
		"max_threads":     maxThreads,
		"min_threads":     minThreads,
		"idle_timeout_ms": idleTimeoutMillis,
	}
}

// AccessLogger 返回带访问日志字段的 Entry，交给 accesslog.Sink 使用。
func AccessLogger(logger *logrus.Logger) *logrus.Entry {
	return logger.WithFields(AccessFields())
}
