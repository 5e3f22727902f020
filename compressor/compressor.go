package compressor

import (
	"github.com/cockroachdb/errors"
)

// Compresser 圧縮系のインナーフェース
type Compresser interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// ErrUnknownCompressor 名前に対応するコンプレッサーがない場合のエラー
var ErrUnknownCompressor = errors.New("unknown compressor")

const (
	// NameLz4 はこのモジュールのLZ4フレーム実装
	NameLz4 = "lz4"
	// NameLz4Ref は比較用のLZ4フレーム実装(pierrec/lz4)
	NameLz4Ref = "lz4-ref"
	// NameZstd は klauspost/compress の zstd
	NameZstd = "zstd"
	// NameZstdDd は DataDog/zstd
	NameZstdDd = "zstd-dd"
	// NameNone は無圧縮
	NameNone = "none"
)

// New は名前からコンプレッサーを作成
func New(name string) (Compresser, error) {
	switch name {
	case NameLz4:
		return NewLz4Compressor(), nil
	case NameLz4Ref:
		return &Lz4RefCompressor{}, nil
	case NameZstd:
		return &ZstdCompressor{}, nil
	case NameZstdDd:
		return &DdZstdCompressor{}, nil
	case NameNone:
		return NoneCompressor{}, nil
	default:
		return nil, errors.Errorf("%q: %w", name, ErrUnknownCompressor)
	}
}

// NoneCompressor 無圧縮。入力をコピーして返す
type NoneCompressor struct{}

// Compress 圧縮
func (NoneCompressor) Compress(src []byte) ([]byte, error) {
	return append([]byte{}, src...), nil
}

// Decompress 解凍
func (NoneCompressor) Decompress(src []byte) ([]byte, error) {
	return append([]byte{}, src...), nil
}
