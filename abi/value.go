package abi

import (
	"fmt"

	"github.com/arloliu/ethpack/endian"
	"github.com/arloliu/ethpack/format"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// MaxBits is the widest integer the EVM supports.
const MaxBits = 256

// AddressSize is the packed width of an address.
const AddressSize = common.AddressLength

var wordEngine = endian.GetBigEndianEngine()

// Value is a typed input to the packed encoder.
//
// The set of implementations is closed: String, Address, Bytes, Bool,
// Uint256 and UintN. Values are immutable once constructed.
type Value interface {
	// Kind returns the Solidity type family of the value.
	Kind() format.Kind
	// Size returns the number of bytes the value occupies in packed form.
	Size() int

	appendPacked(dst []byte) []byte
}

var (
	_ Value = String("")
	_ Value = Address{}
	_ Value = Bytes(nil)
	_ Value = Bool(false)
	_ Value = Uint256{}
	_ Value = UintN{}
)

// String is a Solidity string, packed as its raw UTF-8 bytes.
type String string

// Kind returns format.KindString.
func (s String) Kind() format.Kind { return format.KindString }

// Size returns the length of the UTF-8 bytes.
func (s String) Size() int { return len(s) }

func (s String) appendPacked(dst []byte) []byte {
	return append(dst, s...)
}

// Address is a 20-byte account address, packed as-is.
type Address common.Address

// NewAddress wraps a go-ethereum address.
func NewAddress(a common.Address) Address {
	return Address(a)
}

// HexToAddress converts a hex string (with or without 0x prefix, any case)
// to an Address. It follows common.HexToAddress: input longer than 20 bytes
// keeps the rightmost 20 bytes and shorter input is left-padded.
func HexToAddress(s string) Address {
	return Address(common.HexToAddress(s))
}

// Common returns the go-ethereum form of the address.
func (a Address) Common() common.Address {
	return common.Address(a)
}

// Kind returns format.KindAddress.
func (a Address) Kind() format.Kind { return format.KindAddress }

// Size returns AddressSize.
func (a Address) Size() int { return AddressSize }

func (a Address) appendPacked(dst []byte) []byte {
	return append(dst, a[:]...)
}

// Bytes is a dynamic byte slice, packed verbatim.
type Bytes []byte

// Kind returns format.KindBytes.
func (b Bytes) Kind() format.Kind { return format.KindBytes }

// Size returns the slice length.
func (b Bytes) Size() int { return len(b) }

func (b Bytes) appendPacked(dst []byte) []byte {
	return append(dst, b...)
}

// Bool is packed as a single byte, 0x01 or 0x00.
type Bool bool

// Kind returns format.KindBool.
func (b Bool) Kind() format.Kind { return format.KindBool }

// Size returns 1.
func (b Bool) Size() int { return 1 }

func (b Bool) appendPacked(dst []byte) []byte {
	if b {
		return append(dst, 0x01)
	}

	return append(dst, 0x00)
}

// Uint256 is a full-width unsigned integer, packed as a 32-byte big-endian word.
type Uint256 uint256.Int

// NewUint256 copies n into a Uint256. A nil n yields zero.
func NewUint256(n *uint256.Int) Uint256 {
	if n == nil {
		return Uint256{}
	}

	return Uint256(*n)
}

// Uint64 returns v as a Uint256.
func Uint64(v uint64) Uint256 {
	return Uint256{v}
}

// Int returns a copy of the value as a *uint256.Int.
func (u Uint256) Int() *uint256.Int {
	n := uint256.Int(u)
	return &n
}

// Kind returns format.KindUint256.
func (u Uint256) Kind() format.Kind { return format.KindUint256 }

// Size returns endian.Word256Size.
func (u Uint256) Size() int { return endian.Word256Size }

func (u Uint256) appendPacked(dst []byte) []byte {
	return endian.AppendWord256(wordEngine, dst, u)
}

// UintN is an unsigned integer declared with a narrower Solidity width
// such as uint24. It packs as the last bits/8 bytes of the 32-byte
// big-endian word.
//
// Packing never checks that the value fits: high-order bytes beyond the
// width are dropped, which is the value modulo 2^bits. Use Validate or the
// strict encoding path to reject such values.
type UintN struct {
	n    uint256.Int
	bits int
}

// NewUintN returns n declared as a bits-wide integer. A nil n yields zero.
func NewUintN(n *uint256.Int, bits int) UintN {
	u := UintN{bits: bits}
	if n != nil {
		u.n = *n
	}

	return u
}

// UintNFromUint64 returns v declared as a bits-wide integer.
func UintNFromUint64(v uint64, bits int) UintN {
	return UintN{n: uint256.Int{v}, bits: bits}
}

// Bits returns the declared bit width.
func (u UintN) Bits() int { return u.bits }

// Int returns a copy of the full, untruncated value.
func (u UintN) Int() *uint256.Int {
	n := u.n
	return &n
}

// Fits reports whether the value is representable in the declared width.
// Widths of 256 bits or more always fit; non-positive widths only fit zero.
func (u UintN) Fits() bool {
	if u.bits <= 0 {
		return u.n.IsZero()
	}

	return u.n.BitLen() <= u.bits
}

// Validate reports whether the width is valid and the value fits in it.
func (u UintN) Validate() error {
	if err := ValidateWidth(u.bits); err != nil {
		return err
	}
	if !u.Fits() {
		return fmt.Errorf("%w: %s needs %d bits, uint%d holds %d",
			ErrOutOfRange, u.n.Dec(), u.n.BitLen(), u.bits, u.bits)
	}

	return nil
}

// Kind returns format.KindUintN for every width.
func (u UintN) Kind() format.Kind { return format.KindUintN }

// Size returns bits/8 clamped to [0, 32]. A width that is not a multiple
// of 8 rounds down.
func (u UintN) Size() int {
	return min(max(u.bits/8, 0), endian.Word256Size)
}

func (u UintN) appendPacked(dst []byte) []byte {
	var word [endian.Word256Size]byte
	endian.PutWord256(wordEngine, word[:], u.n)

	return append(dst, word[endian.Word256Size-u.Size():]...)
}

// ValidateWidth checks that bits is a legal Solidity uintN width:
// a positive multiple of 8 no greater than 256.
func ValidateWidth(bits int) error {
	switch {
	case bits <= 0:
		return fmt.Errorf("%w: %d bits is not positive", ErrInvalidWidth, bits)
	case bits > MaxBits:
		return fmt.Errorf("%w: %d bits exceeds %d", ErrInvalidWidth, bits, MaxBits)
	case bits%8 != 0:
		return fmt.Errorf("%w: %d bits is not a multiple of 8", ErrInvalidWidth, bits)
	}

	return nil
}

// TypeName returns the Solidity type name of v, e.g. "uint24" or "address".
func TypeName(v Value) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case UintN:
		return fmt.Sprintf("uint%d", v.bits)
	default:
		return v.Kind().String()
	}
}
