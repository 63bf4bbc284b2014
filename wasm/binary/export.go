package binary

import (
	"fmt"

	"github.com/tetratelabs/wasmread/wasm"
)

// Export is an entry of the export section.
//
// See https://www.w3.org/TR/wasm-core-1/#export-section%E2%91%A0
type Export struct {
	Field string
	Kind  wasm.ExternType
	// Index is into the function, table, memory or global index space, depending on Kind.
	Index uint32
}

func decodeExport(r *reader) (e Export, err error) {
	if e.Field, err = r.readName(); err != nil {
		return Export{}, fmt.Errorf("read export name: %w", err)
	}

	kindOffset := r.offset()
	if e.Kind, err = r.readByte(); err != nil {
		return Export{}, fmt.Errorf("read export kind: %w", err)
	}
	switch e.Kind {
	case wasm.ExternTypeFunc, wasm.ExternTypeTable, wasm.ExternTypeMemory, wasm.ExternTypeGlobal:
	default:
		return Export{}, errUnknownVariant(wasm.DomainExternalKind, uint64(e.Kind), kindOffset)
	}

	if e.Index, err = r.readUint32(); err != nil {
		return Export{}, fmt.Errorf("read export index: %w", err)
	}
	return
}
