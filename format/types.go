package format

// Kind identifies the Solidity type a packed value is encoded as.
type Kind uint8

const (
	KindString  Kind = 0x1 // KindString represents a UTF-8 string, encoded as its raw bytes.
	KindAddress Kind = 0x2 // KindAddress represents a 20-byte account address.
	KindBytes   Kind = 0x3 // KindBytes represents a dynamic byte slice, copied verbatim.
	KindBool    Kind = 0x4 // KindBool represents a boolean, encoded as a single byte.
	KindUint256 Kind = 0x5 // KindUint256 represents a full 32-byte unsigned integer.
	KindUintN   Kind = 0x6 // KindUintN represents an unsigned integer truncated to N bits.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindAddress:
		return "address"
	case KindBytes:
		return "bytes"
	case KindBool:
		return "bool"
	case KindUint256:
		return "uint256"
	case KindUintN:
		return "uintN"
	default:
		return "Unknown"
	}
}
