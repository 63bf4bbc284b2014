package binary

import (
	"fmt"

	"github.com/tetratelabs/wasmread/wasm"
)

// GlobalType is the value type and mutability of a global.
//
// See https://www.w3.org/TR/wasm-core-1/#global-types%E2%91%A4
type GlobalType struct {
	ValType wasm.ValueType
	Mutable bool
}

func decodeGlobalType(r *reader) (GlobalType, error) {
	vt, err := r.readValueType()
	if err != nil {
		return GlobalType{}, fmt.Errorf("read value type: %w", err)
	}
	mut, err := r.readUint32()
	if err != nil {
		return GlobalType{}, fmt.Errorf("read mutability: %w", err)
	}
	return GlobalType{ValType: vt, Mutable: mut != 0}, nil
}

// GlobalItemKind discriminates GlobalItem.
type GlobalItemKind byte

const (
	// GlobalItemType starts a global: GlobalItem.Type is set.
	GlobalItemType GlobalItemKind = iota
	// GlobalItemOp is one instruction of the initializer of the preceding global: GlobalItem.Op is set.
	GlobalItemOp
)

// GlobalItem is one item of GlobalEntries.
type GlobalItem struct {
	Kind GlobalItemKind
	Type GlobalType
	Op   Op
}

// GlobalEntries yields, for each global, a GlobalItemType followed by the instructions of its initializer, ending
// with the end instruction that closes it.
type GlobalEntries struct {
	r         reader
	remaining uint32
	ops       *OpDecoder
	cur       GlobalItem
	err       error
}

// Next decodes the next item.
func (g *GlobalEntries) Next() bool {
	if g.err != nil {
		return false
	}
	if g.ops != nil {
		if g.ops.Next() {
			g.cur = GlobalItem{Kind: GlobalItemOp, Op: g.ops.Op()}
			return true
		}
		if err := g.ops.Err(); err != nil {
			return g.fail(fmt.Errorf("read global initializer: %w", err))
		}
		g.r, g.ops = g.ops.r, nil
	}
	if g.remaining == 0 {
		return false
	}
	g.remaining--
	gt, err := decodeGlobalType(&g.r)
	if err != nil {
		return g.fail(err)
	}
	g.cur = GlobalItem{Kind: GlobalItemType, Type: gt}
	g.ops = newOpDecoder(g.r)
	return true
}

func (g *GlobalEntries) fail(err error) bool {
	g.cur, g.err, g.ops = GlobalItem{}, err, nil
	return false
}

// Item returns the item decoded by the last call to Next.
func (g *GlobalEntries) Item() GlobalItem {
	return g.cur
}

// Err returns the error that ended the sequence, or nil.
func (g *GlobalEntries) Err() error {
	return g.err
}

// Offset returns the absolute position of the next unread byte.
func (g *GlobalEntries) Offset() int {
	if g.ops != nil {
		return g.ops.Offset()
	}
	return g.r.offset()
}
