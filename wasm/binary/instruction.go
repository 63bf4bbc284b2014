package binary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/wasmread/wasm"
)

// MemArg is the immediate of a load or store.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-memarg
type MemArg struct {
	// Align is the base-2 logarithm of the expected alignment.
	Align  uint32
	Offset uint32
}

// BrTable is the immediate of br_table. The arm labels are decoded on demand by Arms.
type BrTable struct {
	// Count is the number of arms, excluding Default.
	Count   uint32
	Default uint32
	arms    reader
}

// Arms returns a new sequence over the Count arm labels.
func (t BrTable) Arms() *BrTableArms {
	return &BrTableArms{r: t.arms, remaining: t.Count}
}

// BrTableArms is the sequence of arm labels of a br_table. Once exhausted, Next keeps returning false.
type BrTableArms struct {
	r         reader
	remaining uint32
	cur       uint32
	err       error
}

// Next decodes the next arm label.
func (a *BrTableArms) Next() bool {
	if a.err != nil || a.remaining == 0 {
		return false
	}
	a.remaining--
	if a.cur, a.err = a.r.readUint32(); a.err != nil {
		return false
	}
	return true
}

// Label returns the label decoded by the last call to Next.
func (a *BrTableArms) Label() uint32 {
	return a.cur
}

// Err returns the error that ended the sequence, or nil.
func (a *BrTableArms) Err() error {
	return a.err
}

// Op is one decoded instruction. Only the immediate fields matching wasm.OpcodeInfo of Opcode are set.
//
// See https://www.w3.org/TR/wasm-core-1/#instructions%E2%91%A6
type Op struct {
	Opcode wasm.Opcode
	// Offset is the absolute position of the opcode byte in the module buffer.
	Offset int

	// BlockType is set for block, loop and if.
	BlockType wasm.BlockType
	// Index is the label of br and br_if, the function of call, the type of call_indirect, or a local or global
	// index.
	Index uint32
	// Reserved is true when the reserved immediate of call_indirect, memory.size or memory.grow is non-zero.
	Reserved bool
	MemArg   MemArg
	BrTable  BrTable
	I32      int32
	I64      int64
	F32      float32
	F64      float64
}

// String returns the instruction in the text format, ex. "i32.load offset=8 align=2"
func (o Op) String() string {
	name, imm, ok := wasm.OpcodeInfo(o.Opcode)
	if !ok {
		return fmt.Sprintf("unknown(%#x)", o.Opcode)
	}
	switch imm {
	case wasm.ImmediateBlockType:
		if o.BlockType == wasm.BlockTypeEmpty {
			return name
		}
		return name + " (result " + wasm.ValueTypeName(o.BlockType) + ")"
	case wasm.ImmediateIndex:
		return name + " " + strconv.FormatUint(uint64(o.Index), 10)
	case wasm.ImmediateCallIndirect:
		return fmt.Sprintf("%s (type %d)", name, o.Index)
	case wasm.ImmediateMemArg:
		return fmt.Sprintf("%s offset=%d align=%d", name, o.MemArg.Offset, o.MemArg.Align)
	case wasm.ImmediateI32:
		return name + " " + strconv.FormatInt(int64(o.I32), 10)
	case wasm.ImmediateI64:
		return name + " " + strconv.FormatInt(o.I64, 10)
	case wasm.ImmediateF32:
		return fmt.Sprintf("%s %g", name, o.F32)
	case wasm.ImmediateF64:
		return fmt.Sprintf("%s %g", name, o.F64)
	case wasm.ImmediateBrTable:
		var sb strings.Builder
		sb.WriteString(name)
		for arms := o.BrTable.Arms(); arms.Next(); {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatUint(uint64(arms.Label()), 10))
		}
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatUint(uint64(o.BrTable.Default), 10))
		return sb.String()
	}
	return name
}

// OpDecoder decodes an instruction stream: a function body or a constant expression. The stream starts inside one
// implicit scope and ends immediately after the end instruction that closes it, so the decoder never reads bytes
// that follow the stream.
//
// Use it like a bufio.Scanner: Next decodes one instruction, Op returns it and Err reports the failure that ended
// the stream, if any. After an error, Next always returns false.
type OpDecoder struct {
	r     reader
	depth int
	cur   Op
	err   error
}

// NewOpDecoder returns a decoder over code, which is typically FunctionBody.Body or a standalone constant expression.
// Offsets are relative to the start of code.
func NewOpDecoder(code []byte) *OpDecoder {
	return newOpDecoder(newReader(code, 0))
}

// newOpDecoder starts a child decoder at the position of r. The parent resumes from the child's r once the child
// is exhausted.
func newOpDecoder(r reader) *OpDecoder {
	return &OpDecoder{r: r, depth: 1}
}

// Next decodes the next instruction. It returns false once the implicit outer scope is closed.
func (d *OpDecoder) Next() bool {
	if d.err != nil || d.depth == 0 {
		return false
	}
	op, err := decodeOp(&d.r)
	if err != nil {
		d.cur, d.err = Op{}, err
		return false
	}
	switch op.Opcode {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf:
		d.depth++
	case wasm.OpcodeEnd:
		d.depth--
	}
	d.cur = op
	return true
}

// Op returns the instruction decoded by the last call to Next.
func (d *OpDecoder) Op() Op {
	return d.cur
}

// Err returns the error that ended the stream, or nil.
func (d *OpDecoder) Err() error {
	return d.err
}

// Depth returns the number of open scopes, including the implicit outer one. It is zero once the stream ended.
func (d *OpDecoder) Depth() int {
	return d.depth
}

// Offset returns the position of the next unread byte.
func (d *OpDecoder) Offset() int {
	return d.r.offset()
}

func decodeOp(r *reader) (op Op, err error) {
	op.Offset = r.offset()
	if op.Opcode, err = r.readByte(); err != nil {
		return Op{}, fmt.Errorf("read opcode: %w", err)
	}
	name, imm, ok := wasm.OpcodeInfo(op.Opcode)
	if !ok {
		return Op{}, errUnknownVariant(wasm.DomainOpcode, uint64(op.Opcode), op.Offset)
	}

	switch imm {
	case wasm.ImmediateNone:
	case wasm.ImmediateBlockType:
		btOffset := r.offset()
		if op.BlockType, err = r.readByte(); err == nil &&
			op.BlockType != wasm.BlockTypeEmpty && !wasm.IsValueType(op.BlockType) {
			return Op{}, errUnknownVariant(wasm.DomainBlockType, uint64(op.BlockType), btOffset)
		}
	case wasm.ImmediateIndex:
		op.Index, err = r.readUint32()
	case wasm.ImmediateCallIndirect:
		if op.Index, err = r.readUint32(); err == nil {
			op.Reserved, err = readReserved(r)
		}
	case wasm.ImmediateReserved:
		op.Reserved, err = readReserved(r)
	case wasm.ImmediateMemArg:
		if op.MemArg.Align, err = r.readUint32(); err == nil {
			op.MemArg.Offset, err = r.readUint32()
		}
	case wasm.ImmediateI32:
		op.I32, err = r.readInt32()
	case wasm.ImmediateI64:
		op.I64, err = r.readInt64()
	case wasm.ImmediateF32:
		op.F32, err = r.readFloat32()
	case wasm.ImmediateF64:
		op.F64, err = r.readFloat64()
	case wasm.ImmediateBrTable:
		op.BrTable, err = decodeBrTable(r)
	}
	if err != nil {
		return Op{}, fmt.Errorf("read %s immediate: %w", name, err)
	}
	return op, nil
}

func readReserved(r *reader) (bool, error) {
	v, err := r.readUint32()
	return v != 0, err
}

// decodeBrTable reads every arm once to find where the default label starts, keeping the arm bytes for Arms.
func decodeBrTable(r *reader) (BrTable, error) {
	count, err := r.readUint32()
	if err != nil {
		return BrTable{}, err
	}
	start, startOffset := r.pos, r.offset()
	for i := uint32(0); i < count; i++ {
		if _, err = r.readUint32(); err != nil {
			return BrTable{}, err
		}
	}
	arms := newReader(r.buf[start:r.pos:r.pos], startOffset)
	def, err := r.readUint32()
	if err != nil {
		return BrTable{}, err
	}
	return BrTable{Count: count, Default: def, arms: arms}, nil
}
