package lz4err

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: OK},
		{name: "そのまま", err: ErrInvalidMagic, want: InvalidMagic},
		{name: "Errorfでラップ", err: errors.Errorf("block 3: %w", ErrMalformedBlock), want: MalformedBlock},
		{name: "Wrapfでラップ", err: errors.Wrapf(ErrChecksumMismatch, "content"), want: ChecksumMismatch},
		{name: "二重ラップ", err: errors.Wrap(errors.Errorf("x: %w", ErrTruncatedFrame), "y"), want: TruncatedFrame},
		{name: "無関係のエラー", err: errors.New("other"), want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "OK_NoError", OK.String())
	assert.Equal(t, "ERROR_checksum_invalid", ChecksumMismatch.String())
	assert.Equal(t, "ERROR_GENERIC", Unknown.String())
	assert.Equal(t, "ERROR_GENERIC", Kind(100).String())
}
