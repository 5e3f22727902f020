package frame

import (
	"github.com/OneOfOne/xxhash"
	"github.com/cockroachdb/errors"

	"lz4-pkg/block"
	"lz4-pkg/convert"
	"lz4-pkg/lz4err"
)

// Compress は src をLZ4フレームに圧縮する。
// 空の入力はヘッダーと終端だけのフレームになる
func Compress(src []byte, level int, opts Options) ([]byte, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	bs := int(opts.BlockSize)
	scratchLen := bs
	if len(src) < scratchLen {
		scratchLen = len(src)
	}
	scratch := make([]byte, scratchLen)

	// 最終サイズは圧縮が終わるまでわからないので、半分程度から伸ばす
	out := make([]byte, 0, opts.headerLen()+len(src)/2+endMarkLen+checksumLen)
	out = appendHeader(out, opts, len(src))

	for off := 0; off < len(src); off += bs {
		end := off + bs
		if end > len(src) {
			end = len(src)
		}
		raw := src[off:end]

		// 元のサイズ未満に収まらなければ非圧縮で格納する
		stored := raw
		sizeField := uint32(len(raw)) | uncompressedBit

		n, err := block.CompressInto(raw, scratch[:len(raw)-1], level)
		switch {
		case err == nil:
			stored = scratch[:n]
			sizeField = uint32(n)
		case !errors.Is(err, lz4err.ErrCompressionOverflow):
			return nil, errors.Errorf("failed to compress block at %d: %w", off, err)
		}

		out = convert.AppendUint32LE(out, sizeField)
		out = append(out, stored...)
		if opts.BlockChecksum {
			out = convert.AppendUint32LE(out, xxhash.Checksum32(stored))
		}
	}

	out = convert.AppendUint32LE(out, 0)
	if opts.ContentChecksum {
		out = convert.AppendUint32LE(out, xxhash.Checksum32(src))
	}

	return out[:len(out):len(out)], nil
}
