// Package endian provides byte order utilities for packing EVM words.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface,
// and adds helpers for emitting 256-bit words stored as four 64-bit limbs.
//
// # Basic Usage
//
// The EVM is big-endian, so packing always uses GetBigEndianEngine():
//
//	import "github.com/arloliu/ethpack/endian"
//
//	engine := endian.GetBigEndianEngine()
//	buf = endian.AppendWord256(engine, buf, [4]uint64(*n))
//
// # Limb Order
//
// A 256-bit integer held as [4]uint64 stores the least-significant limb at
// index 0 (the layout used by github.com/holiman/uint256). AppendWord256 walks
// the limbs from index 3 down to 0, writing each through the engine, so a
// big-endian engine yields the canonical 32-byte big-endian word.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// Word256Size is the size in bytes of one EVM word.
const Word256Size = 32

// LimbCount is the number of 64-bit limbs in a 256-bit word.
const LimbCount = 4

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendWord256 appends the 32-byte representation of a 256-bit word to dst.
//
// The limbs are in little-endian limb order (limbs[0] is least significant).
// They are emitted from the most-significant limb to the least, each one
// through engine. With the big-endian engine the result is the value
// zero-padded on the left to exactly 32 bytes.
//
// Parameters:
//   - engine: Byte order used for each limb (big-endian for EVM words)
//   - dst: Destination slice to append to
//   - limbs: The word as four 64-bit limbs, least significant first
//
// Returns:
//   - []byte: dst extended by Word256Size bytes
func AppendWord256(engine EndianEngine, dst []byte, limbs [LimbCount]uint64) []byte {
	for i := LimbCount - 1; i >= 0; i-- {
		dst = engine.AppendUint64(dst, limbs[i])
	}

	return dst
}

// PutWord256 writes the 32-byte representation of limbs into b.
//
// It panics if len(b) < Word256Size.
func PutWord256(engine EndianEngine, b []byte, limbs [LimbCount]uint64) {
	_ = b[Word256Size-1] // bounds check hint to compiler

	for i := range LimbCount {
		engine.PutUint64(b[i*8:], limbs[LimbCount-1-i])
	}
}
