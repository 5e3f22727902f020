package convert

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// ErrConvertFromByte Byte配列から変換エラー
var ErrConvertFromByte = errors.New("convert from byte error")

// BytesToUint32LE リトルエンディアンのbyte列をuint32へ変換
func BytesToUint32LE(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, ErrConvertFromByte
	}
	return binary.LittleEndian.Uint32(b), nil
}

// BytesToUint64LE リトルエンディアンのbyte列をuint64へ変換
func BytesToUint64LE(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, ErrConvertFromByte
	}
	return binary.LittleEndian.Uint64(b), nil
}

// AppendUint32LE bにuint32をリトルエンディアンで付加
func AppendUint32LE(b []byte, u uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, u)
}

// AppendUint64LE bにuint64をリトルエンディアンで付加
func AppendUint64LE(b []byte, u uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, u)
}
