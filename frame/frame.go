// Package frame はLZ4フレームフォーマットの圧縮と解凍を実装する。
//
//	magic(4) FLG(1) BD(1) [content size(8)] HC(1)
//	{ block size(4) data [block checksum(4)] }...
//	end mark(4) [content checksum(4)]
//
// block size の最上位bitが立っているブロックは非圧縮で格納されている。
package frame

import (
	"github.com/cockroachdb/errors"

	"lz4-pkg/lz4err"
)

const (
	// Magic はフレーム先頭のマジックナンバー
	Magic uint32 = 0x184D2204

	magicLen     = 4
	sizeFieldLen = 4
	checksumLen  = 4
	endMarkLen   = 4

	// MaxHeaderLen はヘッダーの最大長(magic + FLG + BD + content size + HC)
	MaxHeaderLen = magicLen + 2 + 8 + 1

	flgVersionMask     = 0xC0
	flgVersion         = 0x40
	flgIndependent     = 0x20
	flgBlockChecksum   = 0x10
	flgContentSize     = 0x08
	flgContentChecksum = 0x04
	flgReserved        = 0x02
	flgDictID          = 0x01

	bdReserved  = 0x8F
	bdSizeShift = 4
	bdSizeMask  = 0x07

	uncompressedBit = 0x80000000

	// maxPrealloc はヘッダーのcontent sizeを信じて事前確保する上限
	maxPrealloc = 64 << 20
)

// BlockSize はブロックの最大サイズ(非圧縮時)
type BlockSize int

const (
	Block64KB  BlockSize = 64 << 10
	Block256KB BlockSize = 256 << 10
	Block1MB   BlockSize = 1 << 20
	Block4MB   BlockSize = 4 << 20

	// DefaultBlockSize はデフォルトのブロックサイズ
	DefaultBlockSize = Block64KB
)

// ID はBDバイトに格納するブロックサイズID(4〜7)。未対応のサイズは0
func (s BlockSize) ID() byte {
	switch s {
	case Block64KB:
		return 4
	case Block256KB:
		return 5
	case Block1MB:
		return 6
	case Block4MB:
		return 7
	default:
		return 0
	}
}

// IsValid はフレームで表現できるブロックサイズかどうか
func (s BlockSize) IsValid() bool {
	return s.ID() != 0
}

func blockSizeFromID(id byte) (BlockSize, bool) {
	switch id {
	case 4:
		return Block64KB, true
	case 5:
		return Block256KB, true
	case 6:
		return Block1MB, true
	case 7:
		return Block4MB, true
	default:
		return 0, false
	}
}

// Options はフレーム圧縮の設定
type Options struct {
	BlockSize BlockSize
	// BlockChecksum は各ブロックの格納データにチェックサムを付ける
	BlockChecksum bool
	// ContentChecksum は元データ全体のチェックサムを付ける
	ContentChecksum bool
	// ContentSize はヘッダーに元データのサイズを書く
	ContentSize bool
}

// DefaultOptions は64KBブロック、チェックサムなし、サイズなし
func DefaultOptions() Options {
	return Options{BlockSize: DefaultBlockSize}
}

// normalize は未指定のブロックサイズをデフォルトに置き換えて検証する
func (o Options) normalize() (Options, error) {
	if o.BlockSize == 0 {
		o.BlockSize = DefaultBlockSize
	}
	if !o.BlockSize.IsValid() {
		return o, errors.Errorf("block size %d: %w", o.BlockSize, lz4err.ErrInvalidInput)
	}
	return o, nil
}

func (o Options) headerLen() int {
	n := magicLen + 2 + 1
	if o.ContentSize {
		n += 8
	}
	return n
}

// CompressBound は長さnの入力をフレーム圧縮した時の最大サイズ。
// 圧縮で小さくならないブロックは非圧縮で格納するので、
// 入力長 + ヘッダー + ブロックごとのサイズ(とチェックサム) + 終端(とチェックサム) に収まる
func CompressBound(n int, opts Options) int {
	opts, err := opts.normalize()
	if err != nil || n < 0 {
		return 0
	}

	blocks := (n + int(opts.BlockSize) - 1) / int(opts.BlockSize)
	perBlock := sizeFieldLen
	if opts.BlockChecksum {
		perBlock += checksumLen
	}

	bound := opts.headerLen() + blocks*perBlock + n + endMarkLen
	if opts.ContentChecksum {
		bound += checksumLen
	}
	return bound
}
