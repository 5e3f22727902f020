package lz4

import (
	"bytes"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lz4-pkg/frame"
	"lz4-pkg/lz4err"
	"lz4-pkg/rand"
)

const testData = "The quick brown fox jumped over the lazy dog. The quick brown fox jumped over the lazy dog."

func TestCompressFrame(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "空データ", input: []byte{}},
		{name: "1バイト", input: []byte("x")},
		{name: "テスト文字列", input: []byte(testData)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := CompressFrame(tt.input, DefaultLevel)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(compressed), CompressBound(len(tt.input), DefaultLevel))

			decompressed, err := DecompressFrame(compressed)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.input, decompressed))
		})
	}
}

// 同じ入力からは常に同じフレームができる
func TestCompressFrame_Reproducible(t *testing.T) {
	first, err := CompressFrame([]byte(testData), DefaultLevel)
	require.NoError(t, err)
	second, err := CompressFrame([]byte(testData), DefaultLevel)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Less(t, len(first), len(testData))
}

func TestCompressFrameWithOptions(t *testing.T) {
	input, err := rand.GenerateWords(100 << 10)
	require.NoError(t, err)

	opts := frame.Options{BlockSize: frame.Block256KB, BlockChecksum: true, ContentChecksum: true, ContentSize: true}
	compressed, err := CompressFrameWithOptions(input, -8, opts)
	require.NoError(t, err)

	decompressed, err := DecompressFrame(compressed)
	require.NoError(t, err)
	assert.Equal(t, input, decompressed)
}

// intの範囲の端のレベルでも圧縮→解凍できる
func TestCompressFrame_ExtremeLevels(t *testing.T) {
	input, err := rand.GenerateWords(200 << 10)
	require.NoError(t, err)

	for _, level := range []int{math.MinInt, math.MaxInt} {
		compressed, err := CompressFrame(input, level)
		require.NoError(t, err, "level %d", level)

		decompressed, err := DecompressFrame(compressed)
		require.NoError(t, err, "level %d", level)
		assert.True(t, bytes.Equal(input, decompressed))
	}
}

// 複数goroutineから同時に呼び出しても結果が混ざらない
func TestCompressFrame_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input, err := rand.GenerateWords(10000 + i*1000)
			if err != nil {
				errs <- err
				return
			}
			compressed, err := CompressFrame(input, DefaultLevel)
			if err != nil {
				errs <- err
				return
			}
			decompressed, err := DecompressFrame(compressed)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(input, decompressed) {
				errs <- errors.Newf("goroutine %d: round trip mismatch", i)
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestDecompressFrame_Errors(t *testing.T) {
	valid, err := CompressFrame([]byte(testData), DefaultLevel)
	require.NoError(t, err)

	badMagic := append([]byte{}, valid...)
	badMagic[0] = 0

	tests := []struct {
		name  string
		input []byte
		kind  lz4err.Kind
	}{
		{name: "空", input: nil, kind: lz4err.InvalidInput},
		{name: "マジックナンバー不一致", input: badMagic, kind: lz4err.InvalidMagic},
		{name: "途中で切れている", input: valid[:len(valid)-2], kind: lz4err.TruncatedFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecompressFrame(tt.input)
			assert.Nil(t, got)
			assert.Equal(t, tt.kind, lz4err.KindOf(err))
			assert.Equal(t, tt.kind.String(), GetErrorName(err))
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, "1.10.0", GetVersionString())
	assert.Equal(t, 11000, GetVersionNumber())
}

func TestGetErrorName(t *testing.T) {
	assert.Equal(t, "OK_NoError", GetErrorName(nil))
	assert.Equal(t, "ERROR_frameType_unknown", GetErrorName(errors.Wrap(lz4err.ErrInvalidMagic, "x")))
}
