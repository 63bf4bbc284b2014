package binary

import (
	"fmt"

	"github.com/tetratelabs/wasmread/wasm"
)

// Import is an entry of the import section. Only the Desc* field matching Kind is set.
//
// See https://www.w3.org/TR/wasm-core-1/#import-section%E2%91%A0
type Import struct {
	Module string
	Field  string
	Kind   wasm.ExternType
	// DescFunc is the index of the function's type.
	DescFunc   uint32
	DescTable  TableType
	DescMem    Limits
	DescGlobal GlobalType
}

func decodeImport(r *reader) (i Import, err error) {
	if i.Module, err = r.readName(); err != nil {
		return Import{}, fmt.Errorf("read import module: %w", err)
	}
	if i.Field, err = r.readName(); err != nil {
		return Import{}, fmt.Errorf("read import field: %w", err)
	}

	kindOffset := r.offset()
	if i.Kind, err = r.readByte(); err != nil {
		return Import{}, fmt.Errorf("read import kind: %w", err)
	}
	switch i.Kind {
	case wasm.ExternTypeFunc:
		if i.DescFunc, err = r.readUint32(); err != nil {
			return Import{}, fmt.Errorf("read import func typeindex: %w", err)
		}
	case wasm.ExternTypeTable:
		if i.DescTable, err = decodeTableType(r); err != nil {
			return Import{}, fmt.Errorf("read import table desc: %w", err)
		}
	case wasm.ExternTypeMemory:
		if i.DescMem, err = decodeLimits(r); err != nil {
			return Import{}, fmt.Errorf("read import mem desc: %w", err)
		}
	case wasm.ExternTypeGlobal:
		if i.DescGlobal, err = decodeGlobalType(r); err != nil {
			return Import{}, fmt.Errorf("read import global desc: %w", err)
		}
	default:
		return Import{}, errUnknownVariant(wasm.DomainExternalKind, uint64(i.Kind), kindOffset)
	}
	return
}
