// Package ethpack packs typed values the way Solidity's abi.encodePacked does.
//
// Packed encoding is the byte string behind most keccak256 commitments built
// on-chain: values are concatenated in order using their minimal
// representation, with no padding between them and no length prefixes.
//
// # Basic Usage
//
//	import (
//	    "github.com/arloliu/ethpack"
//	    "github.com/arloliu/ethpack/abi"
//	)
//
//	raw, hexStr := ethpack.EncodePacked(
//	    abi.UintNFromUint64(3838, 24),                 // uint24
//	    abi.Uint64(4001),                              // uint256
//	    abi.String("this-is-a-sample-string"),         // string
//	    abi.HexToAddress("0xd8b934580fcE35a11B58C6D73aDeE468a2833fa8"),
//	    abi.Uint64(1),
//	)
//	digest := crypto.Keccak256(raw)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the abi
// package. For streaming encoding, parsing Solidity type names and the full
// set of value constructors, use the abi package directly.
package ethpack

import (
	"github.com/arloliu/ethpack/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodePacked packs items in order and returns the bytes together with
// their lowercase hex (no 0x prefix).
//
// Narrow integers (abi.UintN) that exceed their declared width are silently
// truncated to their low-order bytes. Use EncodePackedStrict to reject them.
//
// Parameters:
//   - items: Values to pack, in order
//
// Returns:
//   - []byte: The packed bytes
//   - string: Lowercase hex of the bytes, without prefix
func EncodePacked(items ...abi.Value) ([]byte, string) {
	return abi.EncodePacked(items...)
}

// EncodePackedStrict packs items after validating them.
//
// It returns an error wrapping abi.ErrInvalidWidth or abi.ErrOutOfRange
// when a narrow integer has an illegal width or does not fit it. For valid
// items the result is identical to EncodePacked.
func EncodePackedStrict(items ...abi.Value) ([]byte, string, error) {
	return abi.EncodePackedStrict(items...)
}

// EncodePackedHex packs items and returns the 0x-prefixed hex string, the
// form expected by JSON-RPC and most tooling.
func EncodePackedHex(items ...abi.Value) string {
	raw, _ := abi.EncodePacked(items...)
	return hexutil.Encode(raw)
}

// NewEncoder creates a streaming packed encoder.
//
// Available options:
//   - abi.WithStrictWidths(true|false)
//   - abi.WithCapacity(n)
//
// Example:
//
//	encoder, err := ethpack.NewEncoder(abi.WithStrictWidths(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = encoder.Write(abi.Bool(true))
//	payload := encoder.Finish()
func NewEncoder(opts ...abi.EncoderOption) (*abi.Encoder, error) {
	return abi.NewEncoder(opts...)
}

// NewDefaultEncoder creates an encoder with the default lenient settings,
// matching EncodePacked.
func NewDefaultEncoder() (*abi.Encoder, error) {
	return abi.NewEncoder(abi.WithStrictWidths(false))
}

// NewStrictEncoder creates an encoder that rejects truncating narrow integers.
func NewStrictEncoder() (*abi.Encoder, error) {
	return abi.NewEncoder(abi.WithStrictWidths(true))
}
