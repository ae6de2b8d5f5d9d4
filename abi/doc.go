// Package abi implements Solidity's packed ABI encoding (abi.encodePacked).
//
// Packed encoding concatenates the minimal byte form of each value in order,
// with no padding between values, no length prefixes and no type tags. The
// result is usually hashed (keccak256) by the caller to build signature
// payloads, commitments or deterministic identifiers; this package does not
// hash.
//
// # Values
//
// Inputs are Value implementations, a closed set:
//
//	abi.String("ipfs-cid")                 // raw UTF-8 bytes
//	abi.HexToAddress("0xd8b9...3fa8")      // 20 bytes
//	abi.Bytes(payload)                     // the slice, verbatim
//	abi.Bool(true)                         // 0x01 / 0x00
//	abi.Uint64(4001)                       // uint256, 32 bytes big-endian
//	abi.UintNFromUint64(3838, 24)          // uint24, last 3 bytes of the word
//
// Large integers come from github.com/holiman/uint256 via NewUint256 and
// NewUintN. Values can also be parsed from Solidity type names with
// ParseValue and ParseArg, or ParseValueStrict and ParseArgStrict to
// reject uintN literals wider than their type.
//
// # Encoding
//
// EncodePacked returns the packed bytes and their lowercase hex (no 0x
// prefix). It never fails: a UintN whose value does not fit its declared
// width is truncated to the low-order bytes, matching what a narrowing
// cast does in Solidity.
//
//	raw, hexStr := abi.EncodePacked(
//	    abi.UintNFromUint64(3838, 24),
//	    abi.Uint64(4001),
//	)
//	// hexStr == "000efe" + "00...0fa1"
//
// EncodePackedStrict and Encoder with WithStrictWidths(true) reject invalid
// widths (ErrInvalidWidth) and values that would be truncated
// (ErrOutOfRange). For valid input both paths produce identical bytes.
//
// # Thread Safety
//
// Package-level functions are pure and safe for concurrent use.
// An Encoder is not thread-safe; use one encoder per goroutine.
package abi
