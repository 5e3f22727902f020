package rand

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

// Letters URL-safe な英数字
const Letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Words 圧縮しやすいテキストを作るための単語
var Words = []string{"the", "quick", "brown", "fox", "jumped", "over", "lazy", "dog", "frame", "block", "token", "match"}

// ErrLength は長さの指定がおかしい場合のエラー
var ErrLength = errors.New("length must be a positive integer")

// GenerateRandomBytes 指定されたバイト数の乱数列を生成します(ほぼ圧縮できないデータ)
func GenerateRandomBytes(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.Errorf("length %d: %w", length, ErrLength)
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}

// GenerateRandomText 指定されたバイト数のランダムな英数字の文字列を生成します
func GenerateRandomText(length int) (string, error) {
	b, err := GenerateRandomBytes(length)
	if err != nil {
		return "", err
	}

	for i := 0; i < length; i++ {
		b[i] = Letters[int(b[i])%len(Letters)]
	}
	return string(b), nil
}

// GenerateWords 単語をランダムに並べた文章を指定バイト数で生成します(圧縮しやすいデータ)
func GenerateWords(length int) ([]byte, error) {
	if length <= 0 {
		return nil, errors.Errorf("length %d: %w", length, ErrLength)
	}

	var sb strings.Builder
	sb.Grow(length + 16)
	limit := big.NewInt(int64(len(Words)))
	for sb.Len() < length {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return nil, errors.Errorf("failed to pick word: %w", err)
		}
		sb.WriteString(Words[n.Int64()])
		sb.WriteByte(' ')
	}

	return []byte(sb.String()[:length]), nil
}
