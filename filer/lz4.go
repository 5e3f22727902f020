package filer

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"lz4-pkg/frame"
	"lz4-pkg/lz4"
)

// Filer ファイル入出力用のインターフェース
type Filer interface {
	Save(name string, i any) error
	Load(name string, in any) error
}

// Lz4JsonFiler はjsonをLZ4フレームに圧縮してファイルに入出力する
type Lz4JsonFiler struct {
	Level   int
	Options frame.Options
}

// NewLz4JsonFiler 高速圧縮、デフォルト設定版
func NewLz4JsonFiler() Filer {
	return &Lz4JsonFiler{Level: lz4.DefaultLevel, Options: frame.DefaultOptions()}
}

// Save データをjson形式にしてLZ4フレームでファイル出力
func (f Lz4JsonFiler) Save(name string, i any) error {
	b, err := json.Marshal(i)
	if err != nil {
		return errors.Errorf("failed to json marshal: %w", err)
	}

	dst, err := lz4.CompressFrameWithOptions(b, f.Level, f.Options)
	if err != nil {
		return errors.Errorf("failed to compress %q: %w", name, err)
	}

	// ファイルが存在する場合は内容を全削除して上書き
	if err := os.WriteFile(name, dst, 0o644); err != nil {
		return errors.Errorf("failed to write file %q: %w", name, err)
	}
	return nil
}

// Load ファイルから読み込んだLZ4フレームを解凍し、jsonを任意の構造体に変換
func (f Lz4JsonFiler) Load(name string, in any) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return errors.Errorf("failed to read file: %w", err)
	}

	src, err := lz4.DecompressFrame(b)
	if err != nil {
		return errors.Errorf("failed to decompress %q: %w", name, err)
	}

	if err := json.Unmarshal(src, in); err != nil {
		return errors.Errorf("failed to json unmarshal: %w", err)
	}
	return nil
}
