package binary

import "fmt"

// DataItemKind discriminates DataItem.
type DataItemKind byte

const (
	// DataItemIndex starts a segment: DataItem.Index is the memory index.
	DataItemIndex DataItemKind = iota
	// DataItemOp is one instruction of the segment's offset expression: DataItem.Op is set.
	DataItemOp
	// DataItemBytes ends a segment: DataItem.Bytes is the initial memory content.
	DataItemBytes
)

// DataItem is one item of DataEntries.
type DataItem struct {
	Kind  DataItemKind
	Index uint32
	Op    Op
	// Bytes is a sub-slice of the module buffer.
	Bytes []byte
}

// DataEntries yields, for each data segment, a DataItemIndex, the instructions of its offset expression, then a
// single DataItemBytes.
//
// See https://www.w3.org/TR/wasm-core-1/#data-section%E2%91%A0
type DataEntries struct {
	r         reader
	remaining uint32
	ops       *OpDecoder
	cur       DataItem
	err       error
}

// Next decodes the next item.
func (d *DataEntries) Next() bool {
	if d.err != nil {
		return false
	}
	if d.ops != nil {
		if d.ops.Next() {
			d.cur = DataItem{Kind: DataItemOp, Op: d.ops.Op()}
			return true
		}
		if err := d.ops.Err(); err != nil {
			return d.fail(fmt.Errorf("read data offset: %w", err))
		}
		d.r, d.ops = d.ops.r, nil
		size, err := d.r.readUint32()
		if err != nil {
			return d.fail(fmt.Errorf("read data size: %w", err))
		}
		b, err := d.r.readBytes(size)
		if err != nil {
			return d.fail(fmt.Errorf("read data: %w", err))
		}
		d.cur = DataItem{Kind: DataItemBytes, Bytes: b}
		return true
	}
	if d.remaining == 0 {
		return false
	}
	d.remaining--
	index, err := d.r.readUint32()
	if err != nil {
		return d.fail(fmt.Errorf("read memory index: %w", err))
	}
	d.cur = DataItem{Kind: DataItemIndex, Index: index}
	d.ops = newOpDecoder(d.r)
	return true
}

func (d *DataEntries) fail(err error) bool {
	d.cur, d.err, d.ops = DataItem{}, err, nil
	return false
}

// Item returns the item decoded by the last call to Next.
func (d *DataEntries) Item() DataItem {
	return d.cur
}

// Err returns the error that ended the sequence, or nil.
func (d *DataEntries) Err() error {
	return d.err
}

// Offset returns the absolute position of the next unread byte.
func (d *DataEntries) Offset() int {
	if d.ops != nil {
		return d.ops.Offset()
	}
	return d.r.offset()
}
