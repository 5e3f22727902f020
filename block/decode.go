package block

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"lz4-pkg/lz4err"
)

// DecompressAppend は src を解凍して dst の末尾に追加したスライスを返す。
// window は一致で参照してよい dst の既存データの長さ(独立ブロックは0、連結ブロックは WindowSize)。
// limit は追加するバイト数の上限で、負の場合は制限しない
func DecompressAppend(dst, src []byte, window, limit int) ([]byte, error) {
	if len(src) == 0 {
		return nil, errors.Errorf("empty block has no token: %w", lz4err.ErrMalformedBlock)
	}
	if dst == nil {
		dst = []byte{}
	}

	base := len(dst)
	floor := base - window
	if floor < 0 {
		floor = 0
	}

	si := 0
	for {
		token := src[si]
		si++

		// literal
		lLen := int(token >> mlBits)
		if lLen == runMask {
			var err error
			if lLen, si, err = readExt(src, si, lLen); err != nil {
				return nil, err
			}
		}
		if lLen > len(src)-si {
			return nil, errors.Errorf("literal run of %d at %d overruns block of %d: %w", lLen, si, len(src), lz4err.ErrMalformedBlock)
		}
		if limit >= 0 && len(dst)-base+lLen > limit {
			return nil, errors.Errorf("output exceeds %d bytes: %w", limit, lz4err.ErrMalformedBlock)
		}
		dst = append(dst, src[si:si+lLen]...)
		si += lLen

		// 最後のシーケンスはliteralのみ
		if si == len(src) {
			break
		}

		// match
		if len(src)-si < 2 {
			return nil, errors.Errorf("truncated offset at %d: %w", si, lz4err.ErrMalformedBlock)
		}
		offset := int(binary.LittleEndian.Uint16(src[si:]))
		si += 2
		if offset == 0 {
			return nil, errors.Errorf("zero offset at %d: %w", si-2, lz4err.ErrMalformedBlock)
		}

		mLen := int(token & runMask)
		if mLen == runMask {
			var err error
			if mLen, si, err = readExt(src, si, mLen); err != nil {
				return nil, err
			}
		}
		mLen += MinMatch

		start := len(dst) - offset
		if start < floor {
			return nil, errors.Errorf("offset %d reaches before output start: %w", offset, lz4err.ErrMalformedBlock)
		}
		if limit >= 0 && len(dst)-base+mLen > limit {
			return nil, errors.Errorf("output exceeds %d bytes: %w", limit, lz4err.ErrMalformedBlock)
		}

		// offset < mLen の場合はコピー元とコピー先が重なる。
		// 既にコピーした分も含めて繰り返しコピーすることで周期offsetのパターンを伸ばす
		for mLen > 0 {
			n := len(dst) - start
			if n > mLen {
				n = mLen
			}
			dst = append(dst, dst[start:start+n]...)
			mLen -= n
		}

		if si >= len(src) {
			return nil, errors.Errorf("block ends with a match, last literals missing: %w", lz4err.ErrMalformedBlock)
		}
	}

	return dst, nil
}

// readExt は長さの追加バイトを読み取り n に加算する
func readExt(src []byte, si, n int) (int, int, error) {
	for {
		if si >= len(src) {
			return 0, 0, errors.Errorf("truncated length at %d: %w", si, lz4err.ErrMalformedBlock)
		}
		b := src[si]
		si++
		n += int(b)
		if b != 255 {
			return n, si, nil
		}
	}
}
