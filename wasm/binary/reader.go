package binary

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/tetratelabs/wasmread/internal/ieee754"
	"github.com/tetratelabs/wasmread/internal/leb128"
	"github.com/tetratelabs/wasmread/wasm"
)

// reader is a bounded cursor over a sub-slice of the module buffer. It is copied by value to hand a position to a
// child decoder, which is how an instruction stream resumes its parent: the parent takes the child's reader back.
type reader struct {
	buf []byte
	pos int
	// base is the absolute offset of buf[0] in the module buffer, used only for error reporting.
	base int
}

func newReader(buf []byte, base int) reader {
	return reader{buf: buf, base: base}
}

// offset is the absolute position of the cursor in the module buffer.
func (r *reader) offset() int {
	return r.base + r.pos
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) done() bool {
	return r.pos >= len(r.buf)
}

func (r *reader) readByte() (byte, error) {
	if r.done() {
		return 0, errEOF(r.offset(), io.ErrUnexpectedEOF)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readBytes returns the next n bytes as a sub-slice whose capacity ends at its length, so appending to it can never
// write into the rest of the module.
func (r *reader) readBytes(n uint32) ([]byte, error) {
	if uint64(n) > uint64(r.remaining()) {
		return nil, errEOF(r.offset(), io.ErrUnexpectedEOF)
	}
	end := r.pos + int(n)
	b := r.buf[r.pos:end:end]
	r.pos = end
	return b, nil
}

// sub returns a reader over the next n bytes and advances past them.
func (r *reader) sub(n uint32) (reader, error) {
	base := r.offset()
	b, err := r.readBytes(n)
	if err != nil {
		return reader{}, err
	}
	return newReader(b, base), nil
}

func (r *reader) readUint32() (uint32, error) {
	v, n, err := leb128.LoadUint32(r.buf[r.pos:])
	if err != nil {
		return 0, varintError(r.offset(), err)
	}
	r.pos += int(n)
	return v, nil
}

func (r *reader) readInt32() (int32, error) {
	v, n, err := leb128.LoadInt32(r.buf[r.pos:])
	if err != nil {
		return 0, varintError(r.offset(), err)
	}
	r.pos += int(n)
	return v, nil
}

func (r *reader) readInt64() (int64, error) {
	v, n, err := leb128.LoadInt64(r.buf[r.pos:])
	if err != nil {
		return 0, varintError(r.offset(), err)
	}
	r.pos += int(n)
	return v, nil
}

func (r *reader) readFloat32() (float32, error) {
	v, err := ieee754.DecodeFloat32(r.buf[r.pos:])
	if err != nil {
		return 0, errEOF(r.offset(), err)
	}
	r.pos += 4
	return v, nil
}

func (r *reader) readFloat64() (float64, error) {
	v, err := ieee754.DecodeFloat64(r.buf[r.pos:])
	if err != nil {
		return 0, errEOF(r.offset(), err)
	}
	r.pos += 8
	return v, nil
}

// readName reads a length-prefixed UTF-8 string.
//
// See https://www.w3.org/TR/wasm-core-1/#names%E2%91%A4
func (r *reader) readName() (string, error) {
	size, err := r.readUint32()
	if err != nil {
		return "", err
	}
	start := r.offset()
	b, err := r.readBytes(size)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &wasm.Error{Kind: wasm.ErrorKindInvalidUTF8, Offset: start}
	}
	return string(b), nil
}

func (r *reader) readValueType() (wasm.ValueType, error) {
	start := r.offset()
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if !wasm.IsValueType(b) {
		return 0, errUnknownVariant(wasm.DomainValueType, uint64(b), start)
	}
	return b, nil
}

func errEOF(offset int, cause error) error {
	return &wasm.Error{Kind: wasm.ErrorKindEOF, Offset: offset, Err: cause}
}

func errUnknownVariant(domain string, value uint64, offset int) error {
	return &wasm.Error{Kind: wasm.ErrorKindUnknownVariant, Domain: domain, Value: value, Offset: offset}
}

func varintError(offset int, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return errEOF(offset, err)
	}
	return &wasm.Error{Kind: wasm.ErrorKindMalformedVarint, Offset: offset, Err: err}
}
