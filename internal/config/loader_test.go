package config

import (
	"testing"
	"time"
)

func TestLoadFailsWhenFileMissing(t *testing.T) {
	if _, err := Load(testConfigPath(t, "does-not-exist.toml")); err == nil {
		t.Fatalf("配置文件不存在时应返回错误")
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	cfg := `
LogLevel = "info"
ShutdownTimeout = "boom"
`
	path := writeTempConfig(t, cfg)
	if _, err := Load(path); err == nil {
		t.Fatalf("无效 Duration 应失败")
	}
}

func TestLoadAcceptsIntegerSecondsDuration(t *testing.T) {
	cfg := `
ShutdownTimeout = 3
`
	path := writeTempConfig(t, cfg)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load 返回错误: %v", err)
	}
	if got := loaded.Global.ShutdownTimeout.DurationValue(); got != 3*time.Second {
		t.Fatalf("整数秒应解析为 3s，得到 %s", got)
	}
}

func TestLoadNormalizesAccessLogFormat(t *testing.T) {
	cfg := `
AccessLogFormat = " Combined "
`
	path := writeTempConfig(t, cfg)
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load 返回错误: %v", err)
	}
	if loaded.Global.AccessLogFormat != AccessLogFormatCombined {
		t.Fatalf("AccessLogFormat 应被标准化，得到 %q", loaded.Global.AccessLogFormat)
	}
}

func TestLoadParsesShutdownTimeoutForms(t *testing.T) {
	testCases := []struct {
		raw  string
		want time.Duration
	}{
		{`"250ms"`, 250 * time.Millisecond},
		{`"2"`, 2 * time.Second},
		{`"1.5"`, 1500 * time.Millisecond},
		{`" 5m "`, 5 * time.Minute},
		{`7`, 7 * time.Second},
		{`0.5`, 500 * time.Millisecond},
	}
	for _, tc := range testCases {
		path := writeTempConfig(t, "ShutdownTimeout = "+tc.raw+"\n")
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("%s: Load 返回错误: %v", tc.raw, err)
		}
		if got := loaded.Global.ShutdownTimeout.DurationValue(); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.raw, tc.want, got)
		}
	}
}

func TestLoadAndUnmarshalTextAgreeOnDurations(t *testing.T) {
	for _, raw := range []string{"0x3c", "soon", "10 parsecs"} {
		var d Duration
		textErr := d.UnmarshalText([]byte(raw))

		path := writeTempConfig(t, "ShutdownTimeout = \""+raw+"\"\n")
		_, loadErr := Load(path)

		if (textErr == nil) != (loadErr == nil) {
			t.Fatalf("%q: UnmarshalText err=%v, Load err=%v", raw, textErr, loadErr)
		}
		if loadErr == nil {
			t.Fatalf("%q: 无效值应返回错误", raw)
		}
	}

	var d Duration
	if err := d.UnmarshalText([]byte("")); err != nil || d.DurationValue() != 0 {
		t.Fatalf("空字符串应解析为 0，得到 %s (%v)", d.DurationValue(), err)
	}
}
