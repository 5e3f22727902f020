// Package lz4 はLZ4フレームの圧縮/解凍の入口
//
// 呼び出しごとに独立しており、グローバルな状態(最後のエラーなど)は持たない。
// 入出力のバッファが別であれば複数のgoroutineから同時に呼び出してよい。
package lz4

import (
	"fmt"

	"lz4-pkg/block"
	"lz4-pkg/frame"
	"lz4-pkg/lz4err"
)

const (
	// VersionMajor などは書き出すフレーム形式に対応するliblz4のバージョン
	VersionMajor  = 1
	VersionMinor  = 10
	VersionBugfix = 0

	// DefaultLevel は高速圧縮
	DefaultLevel = block.DefaultLevel
)

// CompressFrame は data をデフォルト設定(64KBブロック、チェックサムなし)でフレーム圧縮する
func CompressFrame(data []byte, level int) ([]byte, error) {
	return frame.Compress(data, level, frame.DefaultOptions())
}

// CompressFrameWithOptions は設定を指定してフレーム圧縮する
func CompressFrameWithOptions(data []byte, level int, opts frame.Options) ([]byte, error) {
	return frame.Compress(data, level, opts)
}

// DecompressFrame はフレームを解凍する
func DecompressFrame(data []byte) ([]byte, error) {
	return frame.Decompress(data)
}

// CompressBound はデフォルト設定で n バイトを圧縮した時の最大サイズ。
// CompressFrame は内部でバッファを伸ばすので事前に呼ぶ必要はない
// level は上限に影響しない
func CompressBound(n int, level int) int {
	return frame.CompressBound(n, frame.DefaultOptions())
}

// GetVersionNumber はバージョンを数値で返す(major*10000 + minor*100 + bugfix)
func GetVersionNumber() int {
	return VersionMajor*10000 + VersionMinor*100 + VersionBugfix
}

// GetVersionString はバージョンを文字列で返す
func GetVersionString() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionBugfix)
}

// GetErrorName はエラーの種別名を返す
func GetErrorName(err error) string {
	return lz4err.KindOf(err).String()
}
