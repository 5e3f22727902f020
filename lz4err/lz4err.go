package lz4err

import "github.com/cockroachdb/errors"

// Kind はエラー種別を表す
type Kind int8

const (
	// Unknown は種別不明(nil以外で判定できないもの)
	Unknown Kind = iota
	// OK はエラーなし
	OK
	InvalidInput
	CompressionOverflow
	MalformedBlock
	InvalidMagic
	UnsupportedDescriptor
	ChecksumMismatch
	TruncatedFrame
	ContentSizeMismatch
)

// ErrInvalidInput は入力が空などで処理できない場合のエラー
var ErrInvalidInput = errors.New("invalid input")

// ErrCompressionOverflow は圧縮結果が指定の上限サイズに収まらない場合のエラー
var ErrCompressionOverflow = errors.New("compression output exceeds bound")

// ErrMalformedBlock はブロックの構造が壊れている場合のエラー
var ErrMalformedBlock = errors.New("malformed block")

// ErrInvalidMagic はフレーム先頭のマジックナンバーが一致しない場合のエラー
var ErrInvalidMagic = errors.New("invalid magic number")

// ErrUnsupportedDescriptor はフレームディスクリプタのフラグが未対応の場合のエラー
var ErrUnsupportedDescriptor = errors.New("unsupported frame descriptor")

// ErrChecksumMismatch はチェックサムが一致しない場合のエラー
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrTruncatedFrame はフレームのデータ長が足りない場合のエラー
var ErrTruncatedFrame = errors.New("truncated frame")

// ErrContentSizeMismatch はヘッダーのコンテンツサイズと解凍結果のサイズが異なる場合のエラー
var ErrContentSizeMismatch = errors.New("content size mismatch")

var kinds = []struct {
	kind Kind
	err  error
}{
	{InvalidInput, ErrInvalidInput},
	{CompressionOverflow, ErrCompressionOverflow},
	{MalformedBlock, ErrMalformedBlock},
	{InvalidMagic, ErrInvalidMagic},
	{UnsupportedDescriptor, ErrUnsupportedDescriptor},
	{ChecksumMismatch, ErrChecksumMismatch},
	{TruncatedFrame, ErrTruncatedFrame},
	{ContentSizeMismatch, ErrContentSizeMismatch},
}

// KindOf はラップされたエラーから種別を取得
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return Unknown
}

// String は種別名を返す
func (k Kind) String() string {
	switch k {
	case OK:
		return "OK_NoError"
	case InvalidInput:
		return "ERROR_invalidInput"
	case CompressionOverflow:
		return "ERROR_dstMaxSize_tooSmall"
	case MalformedBlock:
		return "ERROR_decompressionFailed"
	case InvalidMagic:
		return "ERROR_frameType_unknown"
	case UnsupportedDescriptor:
		return "ERROR_headerVersion_wrong"
	case ChecksumMismatch:
		return "ERROR_checksum_invalid"
	case TruncatedFrame:
		return "ERROR_srcSize_wrong"
	case ContentSizeMismatch:
		return "ERROR_frameSize_wrong"
	default:
		return "ERROR_GENERIC"
	}
}
