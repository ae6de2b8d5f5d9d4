package abi

import (
	"testing"

	"github.com/arloliu/ethpack/format"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestValue_KindAndSize(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		kind     format.Kind
		size     int
		typeName string
	}{
		{"string", String("abc"), format.KindString, 3, "string"},
		{"empty string", String(""), format.KindString, 0, "string"},
		{"address", Address{}, format.KindAddress, 20, "address"},
		{"bytes", Bytes{1, 2, 3, 4}, format.KindBytes, 4, "bytes"},
		{"nil bytes", Bytes(nil), format.KindBytes, 0, "bytes"},
		{"bool", Bool(true), format.KindBool, 1, "bool"},
		{"uint256", Uint64(1), format.KindUint256, 32, "uint256"},
		{"uint24", UintNFromUint64(1, 24), format.KindUintN, 3, "uint24"},
		{"uint8", UintNFromUint64(1, 8), format.KindUintN, 1, "uint8"},
		{"uint256 as uintN", UintNFromUint64(1, 256), format.KindUintN, 32, "uint256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.value.Kind())
			require.Equal(t, tt.size, tt.value.Size())
			require.Len(t, Pack(tt.value), tt.size)
			require.Equal(t, tt.typeName, TypeName(tt.value))
		})
	}
}

func TestTypeName_Nil(t *testing.T) {
	require.Equal(t, "<nil>", TypeName(nil))
}

func TestAddress_Conversions(t *testing.T) {
	ga := common.HexToAddress("0x" + sampleAddressHex)

	a := NewAddress(ga)
	require.Equal(t, ga, a.Common())
	require.Equal(t, HexToAddress(sampleAddressHex), a)
	require.Equal(t, ga.Bytes(), Pack(a))
}

func TestUint256_Constructors(t *testing.T) {
	n := uint256.NewInt(4001)

	u := NewUint256(n)
	require.True(t, n.Eq(u.Int()))
	require.Equal(t, Uint64(4001), u)

	// The value is a copy; mutating the source does not change it.
	n.SetUint64(1)
	require.Equal(t, uint64(4001), u.Int().Uint64())

	require.Equal(t, Uint256{}, NewUint256(nil))
}

func TestUintN_Constructors(t *testing.T) {
	n := uint256.NewInt(3838)

	u := NewUintN(n, 24)
	require.Equal(t, 24, u.Bits())
	require.True(t, n.Eq(u.Int()))
	require.Equal(t, UintNFromUint64(3838, 24), u)

	u.Int().SetUint64(0)
	require.Equal(t, uint64(3838), u.Int().Uint64(), "Int returns a copy")

	zero := NewUintN(nil, 16)
	require.True(t, zero.Int().IsZero())
	require.Equal(t, []byte{0, 0}, Pack(zero))
}

func TestUintN_Fits(t *testing.T) {
	tests := []struct {
		name  string
		value UintN
		fits  bool
	}{
		{"zero in uint8", UintNFromUint64(0, 8), true},
		{"max uint8", UintNFromUint64(255, 8), true},
		{"overflow uint8", UintNFromUint64(256, 8), false},
		{"max uint24", UintNFromUint64(0xffffff, 24), true},
		{"overflow uint24", UintNFromUint64(0x1000000, 24), false},
		{"max uint256", NewUintN(new(uint256.Int).SetAllOne(), 256), true},
		{"zero width zero value", UintNFromUint64(0, 0), true},
		{"zero width nonzero value", UintNFromUint64(1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.fits, tt.value.Fits())
		})
	}
}

func TestValidateWidth(t *testing.T) {
	for bits := 8; bits <= MaxBits; bits += 8 {
		require.NoError(t, ValidateWidth(bits), "bits=%d", bits)
	}

	for _, bits := range []int{-8, 0, 1, 7, 12, 255, 264, 1024} {
		err := ValidateWidth(bits)
		require.ErrorIs(t, err, ErrInvalidWidth, "bits=%d", bits)
	}
}

func TestUintN_ValidateMessage(t *testing.T) {
	err := UintNFromUint64(4001, 8).Validate()

	require.ErrorIs(t, err, ErrOutOfRange)
	require.Contains(t, err.Error(), "4001 needs 12 bits, uint8 holds 8")
}
