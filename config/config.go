package env

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	cmdDir    = "cmd"
	configDir = "configs"
)

// Read は環境変数とYAMLファイルから新規のコンフィグを取得
// 呼び出し元が cmd/<name> 配下の場合、configs/<name>/<APP_ENV>.yaml を読む
func Read(config any) error {
	return read(config, GetAppEnv(), getConfigDirPath(2))
}

// ReadWithConfigDirPath は環境変数と指定の設定ディレクトリ名とYAMLファイルから新規のコンフィグを取得
func ReadWithConfigDirPath(config any, cfgDirPath string) error {
	return read(config, GetAppEnv(), cfgDirPath)
}

// read はconfigの読み込みを実施
// 環境変数は「.」を「_」に置き換えた大文字のキーで上書きできる(例: FRAME_BLOCK_SIZE)
func read(cfg any, cfgName string, cfgDirPath string) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(cfgName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfgDirPath)

	if err := v.ReadInConfig(); err != nil {
		return errors.Errorf("read cfg error: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return errors.Errorf("parse cfg error: %w", err)
	}
	return nil
}

// getConfigDirPath configディレクトリの取得(readでのみ使用)
func getConfigDirPath(skip int) string {
	// クロスプラットフォーム対策
	_, file, _, _ := runtime.Caller(skip)
	dirList := strings.Split(filepath.ToSlash(filepath.Dir(file)), "/")
	dirPath := "./"

	for i, dir := range dirList {
		if dir == cmdDir {
			dirPath = filepath.Join(configDir, filepath.Join(dirList[i+1:]...))
			break
		}
	}
	return dirPath
}
