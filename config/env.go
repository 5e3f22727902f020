package env

import "os"

const (
	Key        = "APP_ENV"
	DefaultEnv = "tst001"
)

// GetAppEnv 環境変数取得。未設定の場合はデフォルト
func GetAppEnv() string {
	if env := os.Getenv(Key); env != "" {
		return env
	}
	return DefaultEnv
}
