package binaryencoding

import (
	"github.com/tetratelabs/wasmread/internal/leb128"
	"github.com/tetratelabs/wasmread/wasm"
)

// EncodeCode returns a code section entry: the size, the local declarations and the body. body must include its
// terminating end.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-code
func EncodeCode(localTypes []wasm.ValueType, body []byte) []byte {
	// local blocks compress locals while preserving index order by grouping locals of the same type.
	localBlockCount := uint32(0)
	var localBlocks []byte
	if n := len(localTypes); n > 0 {
		var runCount uint32
		var lastValueType wasm.ValueType // initialize to an invalid type 0

		// iterate backwards so it is easier to size prefix
		for i := n - 1; i >= 0; i-- {
			vt := localTypes[i]
			if lastValueType != vt {
				if runCount != 0 {
					localBlocks = append(leb128.EncodeUint32(runCount), localBlocks...)
				}
				lastValueType = vt
				localBlocks = append([]byte{vt}, localBlocks...)
				localBlockCount++
				runCount = 1
			} else {
				runCount++
			}
		}
		localBlocks = append(leb128.EncodeUint32(runCount), localBlocks...)
	}
	localBlocks = append(leb128.EncodeUint32(localBlockCount), localBlocks...)
	return encodeSizePrefixed(append(localBlocks, body...))
}

// I32Const returns i32.const v.
func I32Const(v int32) []byte {
	return append([]byte{wasm.OpcodeI32Const}, leb128.EncodeInt32(v)...)
}

// I64Const returns i64.const v.
func I64Const(v int64) []byte {
	return append([]byte{wasm.OpcodeI64Const}, leb128.EncodeInt64(v)...)
}

// ConstExpr returns the instructions followed by end, ex. ConstExpr(I32Const(1)) is a constant expression.
func ConstExpr(instructions ...[]byte) (ret []byte) {
	for _, in := range instructions {
		ret = append(ret, in...)
	}
	return append(ret, wasm.OpcodeEnd)
}
