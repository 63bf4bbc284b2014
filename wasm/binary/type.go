package binary

import (
	"fmt"
	"strings"

	"github.com/tetratelabs/wasmread/wasm"
)

// FunctionTypeForm is the leading byte of every entry in the type section.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-functype
const FunctionTypeForm byte = 0x60

// FunctionType is a function signature. WebAssembly 1.0 allows at most one result.
type FunctionType struct {
	// Params is a sub-slice of the module buffer, already checked to contain only value types.
	Params []wasm.ValueType
	// Result is nil when the function returns nothing.
	Result *wasm.ValueType
}

// String returns the signature in the text format, ex. "(func (param i32 i64) (result f32))"
func (t FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("(func")
	if len(t.Params) > 0 {
		sb.WriteString(" (param")
		for _, p := range t.Params {
			sb.WriteByte(' ')
			sb.WriteString(wasm.ValueTypeName(p))
		}
		sb.WriteByte(')')
	}
	if t.Result != nil {
		sb.WriteString(" (result ")
		sb.WriteString(wasm.ValueTypeName(*t.Result))
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

func decodeFunctionType(r *reader) (FunctionType, error) {
	formOffset := r.offset()
	form, err := r.readByte()
	if err != nil {
		return FunctionType{}, fmt.Errorf("read leading byte: %w", err)
	}
	if form != FunctionTypeForm {
		return FunctionType{}, errUnknownVariant(wasm.DomainTypeForm, uint64(form), formOffset)
	}

	paramCount, err := r.readUint32()
	if err != nil {
		return FunctionType{}, fmt.Errorf("read parameter count: %w", err)
	}
	paramsOffset := r.offset()
	params, err := r.readBytes(paramCount)
	if err != nil {
		return FunctionType{}, fmt.Errorf("read parameter types: %w", err)
	}
	for i, p := range params {
		if !wasm.IsValueType(p) {
			return FunctionType{}, errUnknownVariant(wasm.DomainValueType, uint64(p), paramsOffset+i)
		}
	}

	ret := FunctionType{}
	if paramCount > 0 {
		ret.Params = params
	}

	resultCountOffset := r.offset()
	resultCount, err := r.readUint32()
	if err != nil {
		return FunctionType{}, fmt.Errorf("read result count: %w", err)
	}
	switch resultCount {
	case 0:
	case 1:
		vt, err := r.readValueType()
		if err != nil {
			return FunctionType{}, fmt.Errorf("read result type: %w", err)
		}
		ret.Result = &vt
	default:
		return FunctionType{}, errUnknownVariant(wasm.DomainResultCount, uint64(resultCount), resultCountOffset)
	}
	return ret, nil
}

func decodeTypeIndex(r *reader) (uint32, error) {
	index, err := r.readUint32()
	if err != nil {
		return 0, fmt.Errorf("read type index: %w", err)
	}
	return index, nil
}
