// Package block はLZ4のブロックフォーマット(フレームなし)の圧縮と解凍を実装する。
//
// 圧縮ブロックはシーケンスの並びで、各シーケンスは
//
//	token(1) [literal長の追加バイト] literal [offset(2, LE) [match長の追加バイト]]
//
// で構成される。tokenの上位4bitがliteral長、下位4bitがmatch長-4を表し、
// 15の場合は255未満のバイトが現れるまで追加バイトを加算する。
// 最後のシーケンスはliteralのみでoffsetを持たない。
package block

import (
	"sync"
)

const (
	// MinMatch は一致とみなす最小バイト数
	MinMatch = 4
	// LastLiterals はブロック末尾で必ずliteralとして出力するバイト数
	LastLiterals = 5
	// MFLimit はブロック末尾からこのバイト数以内では一致を開始しない
	MFLimit = 12
	// MaxOffset はoffsetの最大値(64KBウィンドウ)
	MaxOffset = 65535
	// WindowSize は連結ブロックで参照できる過去データの長さ
	WindowSize = 64 << 10

	// DefaultLevel は高速圧縮(acceleration 1)
	DefaultLevel = -1
	// MaxAcceleration はスキップ倍率の上限
	MaxAcceleration = 65537

	runMask  = 0x0F
	mlBits   = 4
	hashLog  = 16
	htSize   = 1 << hashLog
	minInput = MFLimit + 1

	// skipTrigger は一致が見つからない時にスキップ幅を広げる速さ
	skipTrigger = 6
)

// hashTablePool は圧縮用ハッシュテーブルのプール
var hashTablePool = sync.Pool{New: func() any { return new([htSize]int32) }}

func getHashTable() *[htSize]int32 {
	return hashTablePool.Get().(*[htSize]int32)
}

// putHashTable はテーブルをゼロクリアしてから返却する。
// 前回の内容が残ると同じ入力でも出力が変わるため
func putHashTable(t *[htSize]int32) {
	*t = [htSize]int32{}
	hashTablePool.Put(t)
}

// CompressBound は長さnの入力を圧縮した時の最大サイズ
func CompressBound(n int) int {
	if n < 0 {
		return 0
	}
	return n + n/255 + 16
}

// Acceleration は圧縮レベルから探索のスキップ倍率を求める。
// 負のレベルはその絶対値、0以上は1(通常の高速圧縮)。上限は MaxAcceleration
func Acceleration(level int) int {
	if level < -MaxAcceleration {
		return MaxAcceleration
	}
	if level < 0 {
		return -level
	}
	return 1
}

// Compress は src をブロック形式で圧縮する
func Compress(src []byte, level int) ([]byte, error) {
	dst := make([]byte, CompressBound(len(src)))
	n, err := CompressInto(src, dst, level)
	if err != nil {
		return nil, err
	}

	// ワーストケース分の領域を持ち続けないよう、ちょうどのサイズにコピーする
	out := make([]byte, n)
	copy(out, dst[:n])
	return out, nil
}

// Decompress は圧縮ブロックを解凍する。
// expectedSize が負の場合は解凍後のサイズを制限しない
func Decompress(src []byte, expectedSize int) ([]byte, error) {
	var dst []byte
	if expectedSize > 0 {
		dst = make([]byte, 0, expectedSize)
	}
	return DecompressAppend(dst, src, 0, expectedSize)
}
