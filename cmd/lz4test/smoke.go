package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"lz4-pkg/compressor"
	"lz4-pkg/filer"
)

// TestData は圧縮する固定の文字列
const TestData = "The quick brown fox jumped over the lazy dog. The quick brown fox jumped over the lazy dog."

// Report は1つのコンプレッサーでの圧縮→解凍の結果
type Report struct {
	Name             string `json:"name"`
	OriginalSize     int    `json:"original_size"`
	CompressedSize   int    `json:"compressed_size"`
	DecompressedSize int    `json:"decompressed_size"`
	Equal            bool   `json:"equal"`
}

// Ratio は圧縮率(%)
func (r Report) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return 100 * float64(r.CompressedSize) / float64(r.OriginalSize)
}

// sample は TestData を repeat 回つなげたデータ
func sample(repeat int) []byte {
	if repeat < 1 {
		repeat = 1
	}
	return []byte(strings.Repeat(TestData, repeat))
}

// roundTrip は data を圧縮→解凍して結果をまとめる
func roundTrip(name string, c compressor.Compresser, data []byte) (Report, error) {
	compressed, err := c.Compress(data)
	if err != nil {
		return Report{}, errors.Errorf("%s: failed to compress: %w", name, err)
	}

	decompressed, err := c.Decompress(compressed)
	if err != nil {
		return Report{}, errors.Errorf("%s: failed to decompress: %w", name, err)
	}

	return Report{
		Name:             name,
		OriginalSize:     len(data),
		CompressedSize:   len(compressed),
		DecompressedSize: len(decompressed),
		Equal:            bytes.Equal(data, decompressed),
	}, nil
}

// run は設定に従ってスモークテストを実行し、結果を出力する。
// 先頭の結果がこのモジュールのLZ4フレーム実装
func run(cfg Config, w io.Writer) ([]Report, error) {
	data := sample(cfg.Repeat)

	native := &compressor.Lz4Compressor{Level: cfg.Level, Options: cfg.Frame.Options()}
	report, err := roundTrip(compressor.NameLz4, native, data)
	if err != nil {
		return nil, err
	}
	reports := []Report{report}
	printReport(w, report)

	for _, name := range cfg.Compare {
		c, err := compressor.New(name)
		if err != nil {
			return reports, err
		}
		r, err := roundTrip(name, c, data)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
		printReport(w, r)
	}

	return reports, nil
}

// save は結果を name に保存する
func save(f filer.Filer, name string, reports []Report) error {
	if err := f.Save(name, reports); err != nil {
		return errors.Errorf("failed to save report: %w", err)
	}
	return nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "[%s]\n", r.Name)
	fmt.Fprintf(w, "Compressed data info:\nCompression ratio: %.2f%%\n", r.Ratio())
	fmt.Fprintf(w, "Original size: %d\nCompressed size: %d\n", r.OriginalSize, r.CompressedSize)
	fmt.Fprintf(w, "Original size: %d\nDecompressed size: %d\n", r.OriginalSize, r.DecompressedSize)
	fmt.Fprintf(w, "Decompression equivalence: %t\n", r.Equal)
}
