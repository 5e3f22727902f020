package compressor

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4"
	"github.com/sirupsen/logrus"

	"lz4-pkg/frame"
	nativelz4 "lz4-pkg/lz4"
)

var (
	logger = logrus.WithFields(logrus.Fields{
		"app":       "lz4",
		"component": "compressor",
	})
)

// Lz4Compressor はこのモジュールのLZ4フレーム実装を使うコンプレッサー
type Lz4Compressor struct {
	Level   int
	Options frame.Options
}

// NewLz4Compressor は高速圧縮、デフォルト設定のコンプレッサーを作成
func NewLz4Compressor() *Lz4Compressor {
	return &Lz4Compressor{Level: nativelz4.DefaultLevel, Options: frame.DefaultOptions()}
}

// Compress は引数のバイト列を LZ4 フレームに圧縮して返す。
// 小さくならなくてもフレームとしては正しいので、そのまま返す
func (c *Lz4Compressor) Compress(src []byte) ([]byte, error) {
	dst, err := nativelz4.CompressFrameWithOptions(src, c.Level, c.Options)
	if err != nil {
		return nil, errors.Errorf("failed to compress lz4 frame: %w", err)
	}

	if len(dst) >= len(src) {
		// サイズが小さいと圧縮できない可能性あり
		logger.WithFields(logrus.Fields{"src": len(src), "dst": len(dst)}).Info("lz4 frame not shrunk")
	}
	return dst, nil
}

// Decompress は LZ4 フレームを解凍する
func (c *Lz4Compressor) Decompress(src []byte) ([]byte, error) {
	dst, err := nativelz4.DecompressFrame(src)
	if err != nil {
		return nil, errors.Errorf("failed to decompress lz4 frame: %w", err)
	}
	return dst, nil
}

// Lz4RefCompressor は pierrec/lz4 のフレーム実装を使う比較用のコンプレッサー
type Lz4RefCompressor struct {
	BlockChecksum bool
}

// Compress は pierrec/lz4 で圧縮する
func (c *Lz4RefCompressor) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	w.Header = lz4.Header{BlockChecksum: c.BlockChecksum, BlockMaxSize: int(frame.DefaultBlockSize)}

	if _, err := w.Write(src); err != nil {
		return nil, errors.Errorf("failed to write lz4 frame: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, errors.Errorf("failed to close lz4 writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress は pierrec/lz4 で解凍する
func (c *Lz4RefCompressor) Decompress(src []byte) ([]byte, error) {
	dst, err := io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
	if err != nil {
		return nil, errors.Errorf("failed to read lz4 frame: %w", err)
	}
	return dst, nil
}
