package abi

import (
	"encoding/hex"
	"fmt"
)

// Pack returns the packed encoding of a single value.
//
// Per-kind layout:
//   - String: raw UTF-8 bytes, no terminator or length prefix
//   - Address: the 20 address bytes
//   - Bytes: the slice, copied
//   - Bool: one byte, 0x01 or 0x00
//   - Uint256: 32 bytes big-endian, zero-padded on the left
//   - UintN: the last bits/8 bytes of the Uint256 layout
//
// Pack panics if v is nil.
func Pack(v Value) []byte {
	return v.appendPacked(make([]byte, 0, v.Size()))
}

// PackedSize returns the total packed width of items.
//
// Panics if any item is nil.
func PackedSize(items ...Value) int {
	size := 0
	for _, v := range items {
		size += v.Size()
	}

	return size
}

// AppendPacked appends the packed encoding of items to dst in input order
// and returns the extended slice.
//
// Panics if any item is nil.
func AppendPacked(dst []byte, items ...Value) []byte {
	for _, v := range items {
		dst = v.appendPacked(dst)
	}

	return dst
}

// EncodePacked concatenates the packed encodings of items in input order,
// equivalent to Solidity's abi.encodePacked.
//
// The output buffer is allocated once with the exact packed size. UintN
// values that do not fit their width are silently truncated.
//
// Parameters:
//   - items: Values to pack, in order
//
// Returns:
//   - []byte: The packed bytes
//   - string: Lowercase hex of the packed bytes, without 0x prefix
//
// Panics if any item is nil.
//
// Example:
//
//	raw, hexStr := abi.EncodePacked(
//	    abi.UintNFromUint64(3838, 24),
//	    abi.Uint64(4001),
//	    abi.String("this-is-a-sample-string"),
//	)
//	digest := crypto.Keccak256(raw)
func EncodePacked(items ...Value) ([]byte, string) {
	packed := AppendPacked(make([]byte, 0, PackedSize(items...)), items...)

	return packed, hex.EncodeToString(packed)
}

// Validate checks items for the strict packing path.
//
// It returns an error wrapping ErrNilValue for nil items, ErrInvalidWidth
// for a UintN whose width is not a positive multiple of 8 up to 256, and
// ErrOutOfRange for a UintN whose value needs more bits than declared.
// The error names the offending item index.
func Validate(items ...Value) error {
	for i, v := range items {
		if err := validateValue(v); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, TypeName(v), err)
		}
	}

	return nil
}

func validateValue(v Value) error {
	switch v := v.(type) {
	case nil:
		return ErrNilValue
	case UintN:
		return v.Validate()
	default:
		return nil
	}
}

// EncodePackedStrict is EncodePacked with validation.
//
// For items that pass Validate the output is byte-for-byte identical to
// EncodePacked. Otherwise nothing is encoded and the validation error is
// returned.
func EncodePackedStrict(items ...Value) ([]byte, string, error) {
	if err := Validate(items...); err != nil {
		return nil, "", err
	}

	packed, hexStr := EncodePacked(items...)

	return packed, hexStr, nil
}
