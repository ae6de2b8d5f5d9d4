package abi

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// maxFixedBytes is the largest bytesN type.
const maxFixedBytes = 32

// ParseValue builds a Value from a Solidity type name and a text literal.
//
// Supported types:
//   - string: the literal as-is
//   - address: 40 hex digits, optional 0x prefix, any case
//   - bool: true/false (also 1/0, t/f as accepted by strconv.ParseBool)
//   - bytes: 0x-prefixed hex of any length
//   - bytesN (1..32): 0x-prefixed hex of exactly N bytes
//   - uint, uint256: decimal or 0x-prefixed hex
//   - uintN (N a multiple of 8, 8..256): decimal or hex below 2^256
//
// A uintN literal wider than N bits is accepted and truncated when packed,
// as a Solidity narrowing cast would. Use ParseValueStrict to reject it.
//
// Errors wrap ErrUnknownType, ErrInvalidWidth, ErrInvalidLiteral or
// ErrOutOfRange.
func ParseValue(typ, literal string) (Value, error) {
	switch {
	case typ == "string":
		return String(literal), nil

	case typ == "address":
		if !common.IsHexAddress(literal) {
			return nil, fmt.Errorf("%w: %q is not a hex address", ErrInvalidLiteral, literal)
		}

		return HexToAddress(literal), nil

	case typ == "bool":
		b, err := strconv.ParseBool(strings.TrimSpace(literal))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a bool", ErrInvalidLiteral, literal)
		}

		return Bool(b), nil

	case typ == "bytes":
		return parseBytes(literal, 0)

	case strings.HasPrefix(typ, "bytes"):
		size, ok := typeSize(typ[len("bytes"):])
		if !ok || size < 1 || size > maxFixedBytes {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
		}

		return parseBytes(literal, size)

	case typ == "uint" || typ == "uint256":
		n, err := parseUint(literal)
		if err != nil {
			return nil, err
		}

		return NewUint256(n), nil

	case strings.HasPrefix(typ, "uint"):
		bits, ok := typeSize(typ[len("uint"):])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
		}
		if err := ValidateWidth(bits); err != nil {
			return nil, fmt.Errorf("type %q: %w", typ, err)
		}

		n, err := parseUint(literal)
		if err != nil {
			return nil, err
		}

		return NewUintN(n, bits), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
}

// ParseValueStrict is ParseValue that also rejects a uintN literal that
// does not fit in N bits, with an error wrapping ErrOutOfRange.
func ParseValueStrict(typ, literal string) (Value, error) {
	v, err := ParseValue(typ, literal)
	if err != nil {
		return nil, err
	}
	if err := validateValue(v); err != nil {
		return nil, fmt.Errorf("type %q: %w", typ, err)
	}

	return v, nil
}

// ParseArg parses the "TYPE:LITERAL" form, e.g. "uint24:3838" or
// "string:hello:world" (only the first colon separates).
func ParseArg(arg string) (Value, error) {
	typ, literal, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q, expected TYPE:LITERAL", ErrInvalidLiteral, arg)
	}

	return ParseValue(strings.TrimSpace(typ), literal)
}

// ParseArgStrict is ParseArg with the range check of ParseValueStrict.
func ParseArgStrict(arg string) (Value, error) {
	typ, literal, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q, expected TYPE:LITERAL", ErrInvalidLiteral, arg)
	}

	return ParseValueStrict(strings.TrimSpace(typ), literal)
}

// typeSize parses the size suffix of a type name such as uint24 or bytes4.
// Signs and leading zeros are not part of a Solidity type name.
func typeSize(suffix string) (int, bool) {
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 || strconv.Itoa(n) != suffix {
		return 0, false
	}

	return n, true
}

// parseBytes decodes 0x-prefixed hex. When size is positive the decoded
// length must equal it.
func parseBytes(literal string, size int) (Value, error) {
	b, err := hexutil.Decode(strings.TrimSpace(literal))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLiteral, literal, err)
	}
	if size > 0 && len(b) != size {
		return nil, fmt.Errorf("%w: bytes%d needs %d bytes, got %d", ErrInvalidLiteral, size, size, len(b))
	}

	return Bytes(b), nil
}

// parseUint accepts decimal or 0x-prefixed hex. Leading zeros are allowed
// in both forms, unlike uint256.FromHex.
func parseUint(literal string) (*uint256.Int, error) {
	s := strings.TrimSpace(literal)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}

	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an unsigned integer", ErrInvalidLiteral, literal)
	}
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", ErrInvalidLiteral, literal)
	}

	n, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %q exceeds 256 bits", ErrOutOfRange, literal)
	}

	return n, nil
}
