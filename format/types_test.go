package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindAddress, "address"},
		{KindBytes, "bytes"},
		{KindBool, "bool"},
		{KindUint256, "uint256"},
		{KindUintN, "uintN"},
		{Kind(0), "Unknown"},
		{Kind(0xff), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
		})
	}
}
