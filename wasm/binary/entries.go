package binary

// Entries is a lazy, count-bounded sequence of the fixed-layout entries of a section. Use it like a bufio.Scanner:
// Next decodes one entry, Entry returns it and Err reports the failure that ended the sequence, if any.
//
// The sequence ends once the declared count is reached, regardless of bytes left in the section. After an error,
// Next always returns false.
type Entries[T any] struct {
	r         reader
	remaining uint32
	decode    func(*reader) (T, error)
	cur       T
	err       error
}

func newEntries[T any](c counted, decode func(*reader) (T, error)) *Entries[T] {
	return &Entries[T]{r: c.r, remaining: c.count, decode: decode}
}

// Next decodes the next entry.
func (e *Entries[T]) Next() bool {
	if e.err != nil || e.remaining == 0 {
		return false
	}
	e.remaining--
	v, err := e.decode(&e.r)
	if err != nil {
		var zero T
		e.cur, e.err = zero, err
		return false
	}
	e.cur = v
	return true
}

// Entry returns the entry decoded by the last call to Next.
func (e *Entries[T]) Entry() T {
	return e.cur
}

// Err returns the error that ended the sequence, or nil.
func (e *Entries[T]) Err() error {
	return e.err
}

// Offset returns the absolute position of the next unread byte.
func (e *Entries[T]) Offset() int {
	return e.r.offset()
}
