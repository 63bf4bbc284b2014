package binary

import "fmt"

// NameItemKind discriminates NameItem.
type NameItemKind byte

const (
	// NameItemFunction is the name of the next function.
	NameItemFunction NameItemKind = iota
	// NameItemLocal is the name of the next local of the preceding function.
	NameItemLocal
)

// NameItem is one item of NameEntries.
type NameItem struct {
	Kind NameItemKind
	Name string
}

// NameEntries yields, for each function counted by the name section, a NameItemFunction followed by one
// NameItemLocal per name in its count-prefixed local name list.
type NameEntries struct {
	r         reader
	remaining uint32
	locals    uint32
	cur       NameItem
	err       error
}

// Next decodes the next item.
func (n *NameEntries) Next() bool {
	if n.err != nil {
		return false
	}
	if n.locals > 0 {
		n.locals--
		name, err := n.r.readName()
		if err != nil {
			return n.fail(fmt.Errorf("read local name: %w", err))
		}
		n.cur = NameItem{Kind: NameItemLocal, Name: name}
		return true
	}
	if n.remaining == 0 {
		return false
	}
	n.remaining--
	name, err := n.r.readName()
	if err != nil {
		return n.fail(fmt.Errorf("read function name: %w", err))
	}
	if n.locals, err = n.r.readUint32(); err != nil {
		return n.fail(fmt.Errorf("read local name count: %w", err))
	}
	n.cur = NameItem{Kind: NameItemFunction, Name: name}
	return true
}

func (n *NameEntries) fail(err error) bool {
	n.cur, n.err, n.locals = NameItem{}, err, 0
	return false
}

// Item returns the item decoded by the last call to Next.
func (n *NameEntries) Item() NameItem {
	return n.cur
}

// Err returns the error that ended the sequence, or nil.
func (n *NameEntries) Err() error {
	return n.err
}

// Offset returns the absolute position of the next unread byte.
func (n *NameEntries) Offset() int {
	return n.r.offset()
}
