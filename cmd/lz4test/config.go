package main

import (
	"lz4-pkg/frame"
	"lz4-pkg/lz4"
)

// Config はスモークテストの設定
type Config struct {
	LogLevel string      `mapstructure:"log_level"`
	Level    int         `mapstructure:"level"`
	Repeat   int         `mapstructure:"repeat"`
	Frame    FrameConfig `mapstructure:"frame"`
	// Compare は比較のために同じデータを圧縮するコンプレッサー名
	Compare []string `mapstructure:"compare"`
	// Output が空でなければ結果をLZ4圧縮したjsonで保存する
	Output string `mapstructure:"output"`
}

// FrameConfig はフレームの設定
type FrameConfig struct {
	BlockSize       int  `mapstructure:"block_size"`
	BlockChecksum   bool `mapstructure:"block_checksum"`
	ContentChecksum bool `mapstructure:"content_checksum"`
	ContentSize     bool `mapstructure:"content_size"`
}

// DefaultConfig は設定ファイルがない場合の設定
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Level:    lz4.DefaultLevel,
		Repeat:   1,
		Frame:    FrameConfig{BlockSize: int(frame.DefaultBlockSize)},
	}
}

// Options はフレームの設定を圧縮オプションに変換
func (c FrameConfig) Options() frame.Options {
	return frame.Options{
		BlockSize:       frame.BlockSize(c.BlockSize),
		BlockChecksum:   c.BlockChecksum,
		ContentChecksum: c.ContentChecksum,
		ContentSize:     c.ContentSize,
	}
}
