package config

import (
	"os"
	"path/filepath"
	"testing"
)

// testConfigPath 返回 testdata 下的夹具路径，并确认文件存在（缺失场景除外）。
func testConfigPath(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("testdata", name)
	if _, err := os.Stat(path); err != nil && !os.IsNotExist(err) {
		t.Fatalf("读取夹具失败: %v", err)
	}
	return path
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("写入临时配置失败: %v", err)
	}
	return path
}
