package abi

import "errors"

// Errors reported by the strict packing path and by the type parser.
// The lenient path (EncodePacked, Pack) never returns errors.
var (
	ErrInvalidWidth   = errors.New("invalid integer bit width")
	ErrOutOfRange     = errors.New("value does not fit in declared bit width")
	ErrNilValue       = errors.New("nil value")
	ErrUnknownType    = errors.New("unknown solidity type")
	ErrInvalidLiteral = errors.New("invalid literal")
)
