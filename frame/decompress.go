package frame

import (
	"github.com/OneOfOne/xxhash"
	"github.com/cockroachdb/errors"

	"lz4-pkg/block"
	"lz4-pkg/convert"
	"lz4-pkg/lz4err"
)

// Decompress はLZ4フレームを解凍する。
// フレーム終端以降のデータは無視する
func Decompress(src []byte) ([]byte, error) {
	h, err := readHeader(src)
	if err != nil {
		return nil, err
	}

	// content sizeは事前確保にだけ使う。壊れたヘッダーで巨大な確保をしないよう上限を設ける
	capacity := len(src)
	if h.HasContentSize {
		capacity = maxPrealloc
		if h.ContentSize < maxPrealloc {
			capacity = int(h.ContentSize)
		}
	}
	out := make([]byte, 0, capacity)

	window := 0
	if !h.BlockIndependent {
		window = block.WindowSize
	}

	pos := h.Len
	for i := 0; ; i++ {
		field, err := convert.BytesToUint32LE(src[pos:])
		if err != nil {
			return nil, errors.Errorf("block %d size at %d: %w", i, pos, lz4err.ErrTruncatedFrame)
		}
		pos += sizeFieldLen

		if field == 0 {
			break
		}

		// 残りのデータ長を先に確認し、足りていればブロックの上限を確認する
		size := int(field &^ uncompressedBit)
		need := size
		if h.BlockChecksum {
			need += checksumLen
		}
		if len(src)-pos < need {
			return nil, errors.Errorf("block %d needs %d bytes, have %d: %w", i, need, len(src)-pos, lz4err.ErrTruncatedFrame)
		}
		if size > int(h.BlockSize) {
			return nil, errors.Errorf("block %d size %d exceeds max %d: %w", i, size, h.BlockSize, lz4err.ErrMalformedBlock)
		}

		data := src[pos : pos+size]
		pos += size

		// 格納データのチェックサムは解凍前に確認する
		if h.BlockChecksum {
			want, _ := convert.BytesToUint32LE(src[pos:])
			pos += checksumLen
			if got := xxhash.Checksum32(data); got != want {
				return nil, errors.Errorf("block %d checksum 0x%08X, want 0x%08X: %w", i, got, want, lz4err.ErrChecksumMismatch)
			}
		}

		if field&uncompressedBit != 0 {
			out = append(out, data...)
			continue
		}

		if out, err = block.DecompressAppend(out, data, window, int(h.BlockSize)); err != nil {
			return nil, errors.Errorf("block %d: %w", i, err)
		}
	}

	if h.ContentChecksum {
		want, err := convert.BytesToUint32LE(src[pos:])
		if err != nil {
			return nil, errors.Errorf("content checksum: %w", lz4err.ErrTruncatedFrame)
		}
		if got := xxhash.Checksum32(out); got != want {
			return nil, errors.Errorf("content checksum 0x%08X, want 0x%08X: %w", got, want, lz4err.ErrChecksumMismatch)
		}
	}

	if h.HasContentSize && uint64(len(out)) != h.ContentSize {
		return nil, errors.Errorf("decoded %d bytes, header says %d: %w", len(out), h.ContentSize, lz4err.ErrContentSizeMismatch)
	}

	return out[:len(out):len(out)], nil
}
