package binary

import (
	"fmt"

	"github.com/tetratelabs/wasmread/wasm"
)

// FunctionBody is an entry of the code section: the local declarations and instructions of one function.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-code
type FunctionBody struct {
	// Body is a sub-slice of the module buffer, excluding the leading size.
	Body []byte
	// Offset is the absolute position of Body in the module buffer.
	Offset int
}

func decodeFunctionBody(r *reader) (FunctionBody, error) {
	size, err := r.readUint32()
	if err != nil {
		return FunctionBody{}, fmt.Errorf("read size of code: %w", err)
	}
	body, err := r.sub(size)
	if err != nil {
		return FunctionBody{}, fmt.Errorf("read body: %w", err)
	}
	return FunctionBody{Body: body.buf, Offset: body.base}, nil
}

// Contents returns a new sequence over the local declarations and instructions of the body.
func (b FunctionBody) Contents() *FunctionParts {
	return &FunctionParts{r: newReader(b.Body, b.Offset)}
}

// Local declares Count locals of the same type.
type Local struct {
	Count uint32
	Type  wasm.ValueType
}

// FunctionPartKind discriminates FunctionPart.
type FunctionPartKind byte

const (
	// FunctionPartLocal is a local declaration: FunctionPart.Local is set.
	FunctionPartLocal FunctionPartKind = iota
	// FunctionPartOp is an instruction: FunctionPart.Op is set.
	FunctionPartOp
)

// FunctionPart is one item of FunctionParts.
type FunctionPart struct {
	Kind  FunctionPartKind
	Local Local
	Op    Op
}

// FunctionParts yields the local declarations of a function body, then its instructions up to and including the end
// instruction that closes the body.
type FunctionParts struct {
	r       reader
	started bool
	locals  uint32
	ops     *OpDecoder
	cur     FunctionPart
	err     error
}

// Next decodes the next part.
func (f *FunctionParts) Next() bool {
	if f.err != nil {
		return false
	}
	if !f.started {
		f.started = true
		n, err := f.r.readUint32()
		if err != nil {
			return f.fail(fmt.Errorf("read local declaration count: %w", err))
		}
		f.locals = n
	}
	if f.locals > 0 {
		f.locals--
		l, err := decodeLocal(&f.r)
		if err != nil {
			return f.fail(err)
		}
		f.cur = FunctionPart{Kind: FunctionPartLocal, Local: l}
		return true
	}
	if f.ops == nil {
		f.ops = newOpDecoder(f.r)
	}
	if f.ops.Next() {
		f.cur = FunctionPart{Kind: FunctionPartOp, Op: f.ops.Op()}
		return true
	}
	if err := f.ops.Err(); err != nil {
		return f.fail(fmt.Errorf("read instruction: %w", err))
	}
	return false
}

func decodeLocal(r *reader) (Local, error) {
	count, err := r.readUint32()
	if err != nil {
		return Local{}, fmt.Errorf("read n of locals: %w", err)
	}
	vt, err := r.readValueType()
	if err != nil {
		return Local{}, fmt.Errorf("read type of local: %w", err)
	}
	return Local{Count: count, Type: vt}, nil
}

func (f *FunctionParts) fail(err error) bool {
	f.cur, f.err = FunctionPart{}, err
	return false
}

// Part returns the part decoded by the last call to Next.
func (f *FunctionParts) Part() FunctionPart {
	return f.cur
}

// Err returns the error that ended the sequence, or nil.
func (f *FunctionParts) Err() error {
	return f.err
}

// Offset returns the absolute position of the next unread byte.
func (f *FunctionParts) Offset() int {
	if f.ops != nil {
		return f.ops.Offset()
	}
	return f.r.offset()
}
