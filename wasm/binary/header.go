package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tetratelabs/wasmread/wasm"
)

// Magic is the 4 byte preamble (literally "\0asm") of the binary format
// See https://www.w3.org/TR/wasm-core-1/#binary-magic
var Magic = []byte{0x00, 0x61, 0x73, 0x6D}

// Version is the format version written by WebAssembly 1.0 producers. DecodeModule accepts any version.
// See https://www.w3.org/TR/wasm-core-1/#binary-version
const Version uint32 = 1

// headerSize is the length of the magic and version preamble.
const headerSize = 8

// Module is a decoded module header and a view of the sections that follow it. It borrows the buffer passed to
// DecodeModule, which must not be modified while the Module or anything decoded from it is in use.
type Module struct {
	// Version is the little-endian version number that follows the magic.
	Version uint32
	// Payload is everything after the header.
	Payload []byte
}

// DecodeModule validates the header of a module in the WebAssembly 1.0 (MVP) Binary Format. Sections are decoded
// lazily by Module.Sections.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-module
func DecodeModule(buf []byte) (*Module, error) {
	if len(buf) < len(Magic) {
		return nil, &wasm.Error{Kind: wasm.ErrorKindNotWasm, Err: fmt.Errorf("read magic: %w", io.ErrUnexpectedEOF)}
	}
	if !bytes.Equal(buf[:len(Magic)], Magic) {
		return nil, &wasm.Error{Kind: wasm.ErrorKindNotWasm, Err: fmt.Errorf("invalid magic number %#x", buf[:len(Magic)])}
	}
	if len(buf) < headerSize {
		return nil, fmt.Errorf("read version: %w", errEOF(len(Magic), io.ErrUnexpectedEOF))
	}
	return &Module{
		Version: binary.LittleEndian.Uint32(buf[len(Magic):headerSize]),
		Payload: buf[headerSize:],
	}, nil
}

// Sections returns a new sequence over the module's sections, starting from the first one on every call.
func (m *Module) Sections() *Sections {
	return &Sections{r: newReader(m.Payload, headerSize)}
}
