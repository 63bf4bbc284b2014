package binary

import "fmt"

// ElementItemKind discriminates ElementItem.
type ElementItemKind byte

const (
	// ElementItemIndex starts a segment: ElementItem.Index is the table index.
	ElementItemIndex ElementItemKind = iota
	// ElementItemOp is one instruction of the segment's offset expression: ElementItem.Op is set.
	ElementItemOp
	// ElementItemFunc is one function index of the segment: ElementItem.Index is set.
	ElementItemFunc
)

// ElementItem is one item of ElementEntries.
type ElementItem struct {
	Kind  ElementItemKind
	Index uint32
	Op    Op
}

type segmentPhase byte

const (
	segmentPhaseStart segmentPhase = iota
	segmentPhaseOffset
	segmentPhaseInit
)

// ElementEntries yields, for each element segment, an ElementItemIndex, the instructions of its offset expression,
// then one ElementItemFunc per function index.
//
// See https://www.w3.org/TR/wasm-core-1/#element-section%E2%91%A0
type ElementEntries struct {
	r         reader
	remaining uint32
	phase     segmentPhase
	ops       *OpDecoder
	funcs     uint32
	cur       ElementItem
	err       error
}

// Next decodes the next item.
func (e *ElementEntries) Next() bool {
	if e.err != nil {
		return false
	}
	for {
		switch e.phase {
		case segmentPhaseOffset:
			if e.ops.Next() {
				e.cur = ElementItem{Kind: ElementItemOp, Op: e.ops.Op()}
				return true
			}
			if err := e.ops.Err(); err != nil {
				return e.fail(fmt.Errorf("read element offset: %w", err))
			}
			e.r, e.ops = e.ops.r, nil
			count, err := e.r.readUint32()
			if err != nil {
				return e.fail(fmt.Errorf("read element count: %w", err))
			}
			e.funcs, e.phase = count, segmentPhaseInit
		case segmentPhaseInit:
			if e.funcs == 0 {
				e.phase = segmentPhaseStart
				continue
			}
			e.funcs--
			index, err := e.r.readUint32()
			if err != nil {
				return e.fail(fmt.Errorf("read function index: %w", err))
			}
			e.cur = ElementItem{Kind: ElementItemFunc, Index: index}
			return true
		default:
			if e.remaining == 0 {
				return false
			}
			e.remaining--
			index, err := e.r.readUint32()
			if err != nil {
				return e.fail(fmt.Errorf("read table index: %w", err))
			}
			e.cur = ElementItem{Kind: ElementItemIndex, Index: index}
			e.ops, e.phase = newOpDecoder(e.r), segmentPhaseOffset
			return true
		}
	}
}

func (e *ElementEntries) fail(err error) bool {
	e.cur, e.err, e.ops = ElementItem{}, err, nil
	return false
}

// Item returns the item decoded by the last call to Next.
func (e *ElementEntries) Item() ElementItem {
	return e.cur
}

// Err returns the error that ended the sequence, or nil.
func (e *ElementEntries) Err() error {
	return e.err
}

// Offset returns the absolute position of the next unread byte.
func (e *ElementEntries) Offset() int {
	if e.ops != nil {
		return e.ops.Offset()
	}
	return e.r.offset()
}
