package binaryencoding

import (
	"github.com/tetratelabs/wasmread/internal/leb128"
	"github.com/tetratelabs/wasmread/wasm"
)

// EncodeImport returns an import entry with an already encoded description.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#import-section%E2%91%A0
func EncodeImport(module, field string, kind wasm.ExternType, desc []byte) []byte {
	data := append(EncodeName(module), EncodeName(field)...)
	data = append(data, kind)
	return append(data, desc...)
}

// EncodeImportFunc returns a function import of the given type index.
func EncodeImportFunc(module, field string, typeIndex uint32) []byte {
	return EncodeImport(module, field, wasm.ExternTypeFunc, leb128.EncodeUint32(typeIndex))
}

// EncodeExport returns an export entry.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#export-section%E2%91%A0
func EncodeExport(field string, kind wasm.ExternType, index uint32) []byte {
	data := append(EncodeName(field), kind)
	return append(data, leb128.EncodeUint32(index)...)
}

// EncodeGlobal returns a global entry. init must include its terminating end.
func EncodeGlobal(vt wasm.ValueType, mutable bool, init []byte) []byte {
	return append(EncodeGlobalType(vt, mutable), init...)
}

// EncodeElement returns an active element segment. offset must include its terminating end.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#element-section%E2%91%A0
func EncodeElement(table uint32, offset []byte, funcs ...uint32) (ret []byte) {
	ret = append(ret, leb128.EncodeUint32(table)...)
	ret = append(ret, offset...)
	ret = append(ret, leb128.EncodeUint32(uint32(len(funcs)))...)
	for _, idx := range funcs {
		ret = append(ret, leb128.EncodeUint32(idx)...)
	}
	return
}

// EncodeDataSegment returns an active data segment. offset must include its terminating end.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#data-section%E2%91%A0
func EncodeDataSegment(memory uint32, offset []byte, init []byte) (ret []byte) {
	ret = append(ret, leb128.EncodeUint32(memory)...)
	ret = append(ret, offset...)
	ret = append(ret, encodeSizePrefixed(init)...)
	return
}

// EncodeNameEntry returns one entry of the "name" section: the function name followed by its local names.
func EncodeNameEntry(function string, locals ...string) []byte {
	data := EncodeName(function)
	data = append(data, leb128.EncodeUint32(uint32(len(locals)))...)
	for _, l := range locals {
		data = append(data, EncodeName(l)...)
	}
	return data
}
