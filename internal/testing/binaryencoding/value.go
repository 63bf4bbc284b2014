package binaryencoding

import (
	"github.com/tetratelabs/wasmread/internal/leb128"
	"github.com/tetratelabs/wasmread/wasm"
)

var noValType = []byte{0}

// encodedValTypes is a cache of size prefixed binary encoding of known val types.
var encodedValTypes = map[wasm.ValueType][]byte{
	wasm.ValueTypeI32: {1, wasm.ValueTypeI32},
	wasm.ValueTypeI64: {1, wasm.ValueTypeI64},
	wasm.ValueTypeF32: {1, wasm.ValueTypeF32},
	wasm.ValueTypeF64: {1, wasm.ValueTypeF64},
}

// EncodeValTypes returns the count-prefixed value types.
func EncodeValTypes(vt []wasm.ValueType) []byte {
	switch len(vt) {
	case 0:
		return noValType
	case 1:
		if encoded, ok := encodedValTypes[vt[0]]; ok {
			return encoded
		}
	}
	count := leb128.EncodeUint32(uint32(len(vt)))
	return append(count, vt...)
}

// EncodeFunctionType returns a type section entry. A nil result encodes a zero result count.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#function-types%E2%91%A4
func EncodeFunctionType(params []wasm.ValueType, result *wasm.ValueType) []byte {
	data := append([]byte{0x60}, EncodeValTypes(params)...)
	if result == nil {
		return append(data, 0)
	}
	return append(data, 1, *result)
}

// EncodeLimitsType returns the `limitsType` (min, max) encoded in WebAssembly 1.0 (20191205) Binary Format.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#limits%E2%91%A6
func EncodeLimitsType(min uint32, max *uint32) []byte {
	if max == nil {
		return append(leb128.EncodeUint32(0x00), leb128.EncodeUint32(min)...)
	}
	return append(leb128.EncodeUint32(0x01), append(leb128.EncodeUint32(min), leb128.EncodeUint32(*max)...)...)
}

// EncodeTableType returns a funcref table with the given limits.
func EncodeTableType(min uint32, max *uint32) []byte {
	return append([]byte{wasm.RefTypeFuncref}, EncodeLimitsType(min, max)...)
}

// EncodeGlobalType returns the value type followed by the mutability flag.
func EncodeGlobalType(vt wasm.ValueType, mutable bool) []byte {
	if mutable {
		return []byte{vt, 1}
	}
	return []byte{vt, 0}
}
