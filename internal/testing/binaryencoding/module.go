// Package binaryencoding assembles WebAssembly 1.0 binaries for tests. It intentionally accepts malformed inputs,
// such as unknown opcodes or kinds, so tests can reach every decode failure.
package binaryencoding

import (
	"encoding/binary"

	"github.com/tetratelabs/wasmread/internal/leb128"
	"github.com/tetratelabs/wasmread/wasm"
)

// Magic is the 4 byte preamble (literally "\0asm") of the binary format
var Magic = []byte{0x00, 0x61, 0x73, 0x6D}

// EncodeHeader returns the magic followed by the little-endian version.
func EncodeHeader(version uint32) []byte {
	return binary.LittleEndian.AppendUint32(append([]byte{}, Magic...), version)
}

// EncodeModule returns a version 1 header followed by the already encoded sections.
func EncodeModule(sections ...[]byte) []byte {
	ret := EncodeHeader(1)
	for _, s := range sections {
		ret = append(ret, s...)
	}
	return ret
}

// EncodeSection returns the section id, the size of contents and the contents.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#sections%E2%91%A0
func EncodeSection(sectionID wasm.SectionID, contents []byte) []byte {
	return append([]byte{sectionID}, encodeSizePrefixed(contents)...)
}

// EncodeCustomSection returns a custom section whose declared size covers the name and data.
func EncodeCustomSection(name string, data []byte) []byte {
	return EncodeSection(wasm.SectionIDCustom, append(EncodeName(name), data...))
}

// EncodeVector returns the count of entries followed by the already encoded entries. This is the contents of every
// repeated-entry section.
func EncodeVector(entries ...[]byte) []byte {
	ret := leb128.EncodeUint32(uint32(len(entries)))
	for _, e := range entries {
		ret = append(ret, e...)
	}
	return ret
}

// EncodeName returns the size-prefixed bytes of s, which need not be valid UTF-8.
func EncodeName(s string) []byte {
	return encodeSizePrefixed([]byte(s))
}

// EncodeStartSection encodes a start section pointing to the given function index.
func EncodeStartSection(funcidx uint32) []byte {
	return EncodeSection(wasm.SectionIDStart, leb128.EncodeUint32(funcidx))
}

func encodeSizePrefixed(data []byte) []byte {
	size := leb128.EncodeUint32(uint32(len(data)))
	return append(size, data...)
}
