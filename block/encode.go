package block

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"lz4-pkg/lz4err"
)

// hash4 は4バイトのシーケンスをハッシュテーブルの添字に変換する(Knuthの乗算ハッシュ)
func hash4(seq uint32) uint32 {
	return (seq * 2654435761) >> (32 - hashLog)
}

// CompressInto は src を dst に圧縮し、書き込んだバイト数を返す。
// dst が足りない場合は ErrCompressionOverflow を返す。
// CompressBound(len(src)) 以上の dst を渡せば失敗しない
func CompressInto(src, dst []byte, level int) (int, error) {
	var si, di, anchor int

	if len(src) >= minInput {
		ht := getHashTable()
		defer putHashTable(ht)

		accel := Acceleration(level)
		// 一致の開始位置の上限と終了位置の上限
		sn := len(src) - MFLimit
		matchLimit := len(src) - LastLiterals
		searchCount := 1 << skipTrigger

		for si <= sn {
			seq := binary.LittleEndian.Uint32(src[si:])
			h := hash4(seq)
			ref := int(ht[h])
			ht[h] = int32(si)

			offset := si - ref
			if offset <= 0 || offset > MaxOffset || binary.LittleEndian.Uint32(src[ref:]) != seq {
				// 一致が見つからない期間が長いほどスキップ幅を広げる
				si += accel * (searchCount >> skipTrigger)
				searchCount++
				continue
			}

			matchEnd := si + MinMatch

			// 後方へ伸ばしてliteralを減らす
			for si > anchor && ref > 0 && src[si-1] == src[ref-1] {
				si--
				ref--
			}

			// 前方へ伸ばす。末尾LastLiteralsバイトには入らない
			for matchEnd < matchLimit && src[matchEnd] == src[matchEnd-offset] {
				matchEnd++
			}

			var err error
			di, err = writeSequence(dst, di, src[anchor:si], offset, matchEnd-si)
			if err != nil {
				return 0, err
			}

			si = matchEnd
			anchor = si
			searchCount = 1 << skipTrigger

			// 一致の末尾付近も登録しておくと次の一致が見つかりやすい
			if si-2 <= sn {
				ht[hash4(binary.LittleEndian.Uint32(src[si-2:]))] = int32(si - 2)
			}
		}
	}

	return writeLastLiterals(dst, di, src[anchor:])
}

// extLen は長さnを表すのに必要な追加バイト数
func extLen(n int) int {
	if n < runMask {
		return 0
	}
	return (n-runMask)/255 + 1
}

// putExt は長さの追加バイトを書き込む
func putExt(dst []byte, di, n int) int {
	for ; n >= 255; n -= 255 {
		dst[di] = 255
		di++
	}
	dst[di] = byte(n)
	return di + 1
}

func writeSequence(dst []byte, di int, lit []byte, offset, matchLen int) (int, error) {
	lLen := len(lit)
	mLen := matchLen - MinMatch

	need := 1 + extLen(lLen) + lLen + 2 + extLen(mLen)
	if di+need > len(dst) {
		return 0, errors.Errorf("sequence needs %d bytes at %d, dst is %d: %w", need, di, len(dst), lz4err.ErrCompressionOverflow)
	}

	tokenPos := di
	di++

	var token byte
	if lLen >= runMask {
		token = runMask << mlBits
		di = putExt(dst, di, lLen-runMask)
	} else {
		token = byte(lLen << mlBits)
	}

	di += copy(dst[di:], lit)

	binary.LittleEndian.PutUint16(dst[di:], uint16(offset))
	di += 2

	if mLen >= runMask {
		token |= runMask
		di = putExt(dst, di, mLen-runMask)
	} else {
		token |= byte(mLen)
	}

	dst[tokenPos] = token
	return di, nil
}

// writeLastLiterals は一致を持たない最後のシーケンスを書き込む
func writeLastLiterals(dst []byte, di int, lit []byte) (int, error) {
	lLen := len(lit)

	need := 1 + extLen(lLen) + lLen
	if di+need > len(dst) {
		return 0, errors.Errorf("last literals need %d bytes at %d, dst is %d: %w", need, di, len(dst), lz4err.ErrCompressionOverflow)
	}

	if lLen >= runMask {
		dst[di] = runMask << mlBits
		di = putExt(dst, di+1, lLen-runMask)
	} else {
		dst[di] = byte(lLen << mlBits)
		di++
	}

	di += copy(dst[di:], lit)
	return di, nil
}
