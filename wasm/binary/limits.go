package binary

import (
	"fmt"

	"github.com/tetratelabs/wasmread/wasm"
)

// Limits is the size range of a table (in elements) or a memory (in pages).
//
// See https://www.w3.org/TR/wasm-core-1/#limits%E2%91%A6
type Limits struct {
	Initial uint32
	// Maximum is nil when unbounded.
	Maximum *uint32
}

// TableType is a table declaration.
//
// See https://www.w3.org/TR/wasm-core-1/#table-types%E2%91%A4
type TableType struct {
	ElemType wasm.RefType
	Limits   Limits
}

// decodeLimits reads the flags varint, the initial size and, when the low flag bit is set, the maximum size.
func decodeLimits(r *reader) (Limits, error) {
	flags, err := r.readUint32()
	if err != nil {
		return Limits{}, fmt.Errorf("read limits flags: %w", err)
	}
	ret := Limits{}
	if ret.Initial, err = r.readUint32(); err != nil {
		return Limits{}, fmt.Errorf("read initial of limits: %w", err)
	}
	if flags&0x1 != 0 {
		m, err := r.readUint32()
		if err != nil {
			return Limits{}, fmt.Errorf("read maximum of limits: %w", err)
		}
		ret.Maximum = &m
	}
	return ret, nil
}

func decodeTableType(r *reader) (TableType, error) {
	offset := r.offset()
	b, err := r.readByte()
	if err != nil {
		return TableType{}, fmt.Errorf("read element type: %w", err)
	}
	if b != wasm.RefTypeFuncref {
		return TableType{}, errUnknownVariant(wasm.DomainElementType, uint64(b), offset)
	}
	limits, err := decodeLimits(r)
	if err != nil {
		return TableType{}, err
	}
	return TableType{ElemType: b, Limits: limits}, nil
}
