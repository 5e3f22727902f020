package frame

import (
	"github.com/OneOfOne/xxhash"
	"github.com/cockroachdb/errors"

	"lz4-pkg/convert"
	"lz4-pkg/lz4err"
)

// Header はフレームヘッダーの内容
type Header struct {
	BlockIndependent bool
	BlockChecksum    bool
	ContentChecksum  bool
	HasContentSize   bool
	ContentSize      uint64
	BlockSize        BlockSize
	// Len はヘッダーのバイト長
	Len int
}

// appendHeader はオプションからヘッダーを作成して b に付加する
func appendHeader(b []byte, opts Options, contentSize int) []byte {
	b = convert.AppendUint32LE(b, Magic)
	descStart := len(b)

	// このエンコーダーは常に独立ブロックを書く
	flg := byte(flgVersion | flgIndependent)
	if opts.BlockChecksum {
		flg |= flgBlockChecksum
	}
	if opts.ContentSize {
		flg |= flgContentSize
	}
	if opts.ContentChecksum {
		flg |= flgContentChecksum
	}
	bd := opts.BlockSize.ID() << bdSizeShift

	b = append(b, flg, bd)
	if opts.ContentSize {
		b = convert.AppendUint64LE(b, uint64(contentSize))
	}

	return append(b, headerChecksum(b[descStart:]))
}

// headerChecksum はディスクリプタのXXH32の2バイト目
func headerChecksum(desc []byte) byte {
	return byte(xxhash.Checksum32(desc) >> 8)
}

// Info はフレームヘッダーだけを読み取って検証する
func Info(src []byte) (Header, error) {
	return readHeader(src)
}

// readHeader はヘッダーを読み取る
func readHeader(src []byte) (Header, error) {
	if len(src) == 0 {
		return Header{}, errors.Errorf("empty frame: %w", lz4err.ErrInvalidInput)
	}

	magic, err := convert.BytesToUint32LE(src)
	if err != nil {
		return Header{}, errors.Errorf("frame of %d bytes has no magic: %w", len(src), lz4err.ErrTruncatedFrame)
	}
	if magic != Magic {
		return Header{}, errors.Errorf("magic 0x%08X: %w", magic, lz4err.ErrInvalidMagic)
	}

	if len(src) < magicLen+2+1 {
		return Header{}, errors.Errorf("frame header needs at least %d bytes, have %d: %w", magicLen+3, len(src), lz4err.ErrTruncatedFrame)
	}

	flg := src[magicLen]
	bd := src[magicLen+1]

	// フラグの内容を先に確認し、ヘッダーチェックサムは最後に検証する
	if flg&flgVersionMask != flgVersion {
		return Header{}, errors.Errorf("version %d: %w", flg>>6, lz4err.ErrUnsupportedDescriptor)
	}
	if flg&flgReserved != 0 || bd&bdReserved != 0 {
		return Header{}, errors.Errorf("reserved bits set (FLG 0x%02X, BD 0x%02X): %w", flg, bd, lz4err.ErrUnsupportedDescriptor)
	}
	if flg&flgDictID != 0 {
		return Header{}, errors.Errorf("dictionary id: %w", lz4err.ErrUnsupportedDescriptor)
	}

	blockSize, ok := blockSizeFromID((bd >> bdSizeShift) & bdSizeMask)
	if !ok {
		return Header{}, errors.Errorf("block size id %d: %w", (bd>>bdSizeShift)&bdSizeMask, lz4err.ErrUnsupportedDescriptor)
	}

	descLen := 2
	if flg&flgContentSize != 0 {
		descLen += 8
	}
	hcPos := magicLen + descLen
	if len(src) < hcPos+1 {
		return Header{}, errors.Errorf("frame header needs %d bytes, have %d: %w", hcPos+1, len(src), lz4err.ErrTruncatedFrame)
	}

	if hc := headerChecksum(src[magicLen:hcPos]); hc != src[hcPos] {
		return Header{}, errors.Errorf("header checksum 0x%02X, want 0x%02X: %w", src[hcPos], hc, lz4err.ErrChecksumMismatch)
	}

	h := Header{
		BlockIndependent: flg&flgIndependent != 0,
		BlockChecksum:    flg&flgBlockChecksum != 0,
		ContentChecksum:  flg&flgContentChecksum != 0,
		HasContentSize:   flg&flgContentSize != 0,
		BlockSize:        blockSize,
		Len:              hcPos + 1,
	}

	if h.HasContentSize {
		if h.ContentSize, err = convert.BytesToUint64LE(src[magicLen+2:]); err != nil {
			return Header{}, errors.Errorf("content size: %w", lz4err.ErrTruncatedFrame)
		}
	}

	return h, nil
}
