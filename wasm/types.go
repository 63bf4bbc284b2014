// Package wasm holds the vocabulary shared by every layer of the decoder: section ids, value and reference types,
// external kinds, the opcode table and the decode error taxonomy.
package wasm

import "fmt"

// SectionID identifies the sections of a Module in the WebAssembly 1.0 (MVP) Binary Format.
//
// See https://www.w3.org/TR/wasm-core-1/#sections%E2%91%A0
type SectionID = byte

const (
	// SectionIDCustom includes the standard defined name section and possibly others not defined in the standard.
	SectionIDCustom SectionID = iota
	SectionIDType
	SectionIDImport
	SectionIDFunction
	SectionIDTable
	SectionIDMemory
	SectionIDGlobal
	SectionIDExport
	SectionIDStart
	SectionIDElement
	SectionIDCode
	SectionIDData

	// SectionIDMax is the highest section id defined in WebAssembly 1.0.
	SectionIDMax = SectionIDData
)

// SectionIDName returns the canonical name of a module section.
// https://www.w3.org/TR/wasm-core-1/#sections%E2%91%A0
func SectionIDName(sectionID SectionID) string {
	switch sectionID {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	}
	return "unknown"
}

// ValueType is the binary encoding of a type such as i32
// See https://www.w3.org/TR/wasm-core-1/#binary-valtype
//
// Note: This is a type alias so that a validated byte range can be used as a []ValueType without copying.
type ValueType = byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
)

// ValueTypeName returns the type name of the given ValueType as a string.
// These type names match the names used in the WebAssembly text format.
// Note that ValueTypeName returns "unknown", if an undefined ValueType value is passed.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	}
	return "unknown"
}

// IsValueType returns true if b is one of the four WebAssembly 1.0 value types.
func IsValueType(b byte) bool {
	return b >= ValueTypeF64 && b <= ValueTypeI32
}

// ExternType classifies imports and exports with their respective types.
//
// See https://www.w3.org/TR/wasm-core-1/#external-types%E2%91%A0
type ExternType = byte

const (
	ExternTypeFunc   ExternType = 0x00
	ExternTypeTable  ExternType = 0x01
	ExternTypeMemory ExternType = 0x02
	ExternTypeGlobal ExternType = 0x03
)

// ExternTypeName returns the name of the WebAssembly 1.0 (MVP) Text Format field of the given type.
//
// See https://www.w3.org/TR/wasm-core-1/#exports%E2%91%A4
func ExternTypeName(et ExternType) string {
	switch et {
	case ExternTypeFunc:
		return "func"
	case ExternTypeTable:
		return "table"
	case ExternTypeMemory:
		return "memory"
	case ExternTypeGlobal:
		return "global"
	}
	return fmt.Sprintf("%#x", et)
}

// RefType is the element type of a table. WebAssembly 1.0 only defines funcref.
//
// See https://www.w3.org/TR/wasm-core-1/#table-types%E2%91%A0
type RefType = byte

// RefTypeFuncref is the only element type in WebAssembly 1.0, written "anyfunc" in early drafts.
const RefTypeFuncref RefType = 0x70

// RefTypeName returns the text format name of the reference type.
func RefTypeName(t RefType) string {
	if t == RefTypeFuncref {
		return "funcref"
	}
	return "unknown"
}

// BlockType is the inline signature of a block, loop or if instruction: either BlockTypeEmpty or the ValueType of
// its single result.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-blocktype
type BlockType = byte

// BlockTypeEmpty is the block type of a block with no result.
const BlockTypeEmpty BlockType = 0x40

// BlockTypeName returns the text format result annotation of the block type, or an empty string for BlockTypeEmpty.
func BlockTypeName(bt BlockType) string {
	if bt == BlockTypeEmpty {
		return ""
	}
	return ValueTypeName(bt)
}
