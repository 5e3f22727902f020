package compressor

import (
	ddzstd "github.com/DataDog/zstd"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor zstd用のコンプレッサー(klauspost/compress)
type ZstdCompressor struct{}

// Compress 圧縮
func (z *ZstdCompressor) Compress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil) // nilだと内部バッファを持つエンコーダー
	if err != nil {
		return nil, errors.Errorf("zstd encoder create error: %w", err)
	}
	defer enc.Close()

	// EncodeAll: src を一気に圧縮して []byte を返す
	return enc.EncodeAll(src, nil), nil
}

// Decompress 解凍
func (z *ZstdCompressor) Decompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Errorf("zstd decoder create error: %w", err)
	}
	defer dec.Close()

	// DecodeAll: 圧縮されたデータを一気に展開
	decompressed, err := dec.DecodeAll(src, nil)
	if err != nil {
		return nil, errors.Errorf("zstd decode error: %w", err)
	}
	return decompressed, nil
}

// DdZstdCompressor zstd用のコンプレッサー(DataDog/zstd, cgo)
type DdZstdCompressor struct{}

// Compress 圧縮
func (z *DdZstdCompressor) Compress(src []byte) ([]byte, error) {
	buf := make([]byte, ddzstd.CompressBound(len(src))) // 圧縮後の最大サイズを求めてバッファを確保

	dst, err := ddzstd.CompressLevel(buf, src, ddzstd.DefaultCompression)
	if err != nil {
		return nil, errors.Errorf("zstd compress error: %w", err)
	}
	return dst, nil
}

// Decompress 解凍。フレームに書かれたサイズで出力を確保する
func (z *DdZstdCompressor) Decompress(src []byte) ([]byte, error) {
	dst, err := ddzstd.Decompress(nil, src)
	if err != nil {
		return nil, errors.Errorf("zstd decompress error: %w", err)
	}
	return dst, nil
}
