package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tetratelabs/wasmread/internal/testing/binaryencoding"
	"github.com/tetratelabs/wasmread/wasm"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testModule() []byte {
	i32, i64 := wasm.ValueTypeI32, wasm.ValueTypeI64
	two := uint32(2)
	return binaryencoding.EncodeModule(
		binaryencoding.EncodeSection(wasm.SectionIDType, binaryencoding.EncodeVector(
			binaryencoding.EncodeFunctionType([]wasm.ValueType{i32, i32}, &i32),
		)),
		binaryencoding.EncodeSection(wasm.SectionIDImport, binaryencoding.EncodeVector(
			binaryencoding.EncodeImportFunc("env", "f", 0),
			binaryencoding.EncodeImport("env", "m", wasm.ExternTypeMemory, binaryencoding.EncodeLimitsType(1, &two)),
		)),
		binaryencoding.EncodeSection(wasm.SectionIDFunction, binaryencoding.EncodeVector([]byte{0x00})),
		binaryencoding.EncodeSection(wasm.SectionIDTable, binaryencoding.EncodeVector(binaryencoding.EncodeTableType(1, nil))),
		binaryencoding.EncodeSection(wasm.SectionIDGlobal, binaryencoding.EncodeVector(
			binaryencoding.EncodeGlobal(i32, false, binaryencoding.ConstExpr(binaryencoding.I32Const(42))),
		)),
		binaryencoding.EncodeSection(wasm.SectionIDExport, binaryencoding.EncodeVector(
			binaryencoding.EncodeExport("add", wasm.ExternTypeFunc, 1),
		)),
		binaryencoding.EncodeStartSection(1),
		binaryencoding.EncodeSection(wasm.SectionIDElement, binaryencoding.EncodeVector(
			binaryencoding.EncodeElement(0, binaryencoding.ConstExpr(binaryencoding.I32Const(0)), 1),
		)),
		binaryencoding.EncodeSection(wasm.SectionIDCode, binaryencoding.EncodeVector(
			binaryencoding.EncodeCode([]wasm.ValueType{i64}, []byte{
				wasm.OpcodeLocalGet, 0x00,
				wasm.OpcodeLocalGet, 0x01,
				wasm.OpcodeI32Add,
				wasm.OpcodeEnd,
			}),
		)),
		binaryencoding.EncodeSection(wasm.SectionIDData, binaryencoding.EncodeVector(
			binaryencoding.EncodeDataSegment(0, binaryencoding.ConstExpr(binaryencoding.I32Const(8)), []byte("hello")),
		)),
		binaryencoding.EncodeCustomSection("name", binaryencoding.EncodeVector(
			binaryencoding.EncodeNameEntry("add", "a", "b"),
		)),
		binaryencoding.EncodeCustomSection("producers", []byte{0x01, 0x02, 0x03}),
	)
}

const testModuleText = `version 1
--- section type ----------
type 0: (func (param i32 i32) (result i32))
--- section import ----------
env::f: function type=0
env::m: memory initial=1, max=2
--- section function ----------
function 0: type=0
--- section table ----------
table 0: type=funcref, initial=1, max=none
--- section global ----------
global 0: ty=i32, mutable=false
  i32.const 42
  end
--- section export ----------
add: kind=func, index=1
--- section start ----------
start function=1
--- section element ----------
element table=0
  i32.const 0
  end
  funcs 1
--- section code ----------
function 0
  local i64 x 1
  local.get 0
  local.get 1
  i32.add
  end
--- section data ----------
data for memory 0
  offset:
    i32.const 8
    end
  value:
    68 65 6c 6c 6f
--- section custom name ----------
add
  a
  b
--- section custom producers ----------
3 bytes
  01 02 03
`

func writeWasm(t *testing.T, bin []byte) string {
	wasmPath := filepath.Join(t.TempDir(), "test.wasm")
	require.NoError(t, os.WriteFile(wasmPath, bin, 0o600))
	return wasmPath
}

func TestText(t *testing.T) {
	exitCode, stdOut, stdErr := runMain(t, []string{"-color", "never", writeWasm(t, testModule())})
	require.Equal(t, 0, exitCode)
	require.Equal(t, testModuleText, stdOut)
	require.Equal(t, "", stdErr)
}

func TestText_Color(t *testing.T) {
	exitCode, stdOut, _ := runMain(t, []string{"-color", "always", writeWasm(t, testModule())})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdOut, "\x1b[")
	require.Contains(t, stdOut, "type 0: (func (param i32 i32) (result i32))\n")
}

func TestText_DecodeErrors(t *testing.T) {
	bin := binaryencoding.EncodeModule(
		binaryencoding.EncodeSection(wasm.SectionIDType, binaryencoding.EncodeVector(
			binaryencoding.EncodeFunctionType(nil, nil),
			[]byte{0x50},
		)),
		binaryencoding.EncodeSection(wasm.SectionIDFunction, binaryencoding.EncodeVector([]byte{0x00})),
		[]byte{0x0c},
	)
	exitCode, stdOut, _ := runMain(t, []string{"-color", "never", writeWasm(t, bin)})
	require.Equal(t, 1, exitCode)
	require.Equal(t, `version 1
--- section type ----------
type 0: (func)
error: unknown variant "type form" 0x50 at offset 0xe
--- section function ----------
function 0: type=0
error: unknown variant "section id" 0xc at offset 0x13
`, stdOut)
}

func TestYAML(t *testing.T) {
	exitCode, stdOut, stdErr := runMain(t, []string{"-o", "yaml", writeWasm(t, testModule())})
	require.Equal(t, 0, exitCode)
	require.Equal(t, "", stdErr)

	var d moduleDump
	require.NoError(t, yaml.Unmarshal([]byte(stdOut), &d))
	require.Equal(t, uint32(1), d.Version)
	require.Equal(t, 12, len(d.Sections))
	require.Equal(t, sectionDump{
		ID:      "type",
		Offset:  10,
		Size:    7,
		Entries: []string{"type 0: (func (param i32 i32) (result i32))"},
	}, d.Sections[0])
	require.Equal(t, "custom", d.Sections[10].ID)
	require.Equal(t, "name", d.Sections[10].Name)
	require.Empty(t, d.Error)
}

func TestVerbose(t *testing.T) {
	exitCode, _, stdErr := runMain(t, []string{"-v", "-color", "never", writeWasm(t, testModule())})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "framed section")
	require.Contains(t, stdErr, `"id": "type"`)
}

func TestHelp(t *testing.T) {
	exitCode, _, stdErr := runMain(t, []string{"-h"})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "wasmprint CLI\n\nUsage:")
}

func TestErrors(t *testing.T) {
	notWasmPath := writeWasm(t, []byte("pooh"))
	emptyPath := writeWasm(t, nil)
	wasmPath := writeWasm(t, testModule())

	tests := []struct {
		message string
		args    []string
	}{
		{
			message: "missing path to wasm file",
			args:    []string{},
		},
		{
			message: "error reading wasm binary",
			args:    []string{"non-existent.wasm"},
		},
		{
			message: "error decoding wasm binary: not a wasm binary: invalid magic number 0x706f6f68",
			args:    []string{notWasmPath},
		},
		{
			message: "error decoding wasm binary: not a wasm binary: read magic: unexpected EOF",
			args:    []string{emptyPath},
		},
		{
			message: "invalid output format: json",
			args:    []string{"-o", "json", wasmPath},
		},
		{
			message: "invalid color mode: sometimes",
			args:    []string{"-color", "sometimes", wasmPath},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.message, func(t *testing.T) {
			exitCode, _, stdErr := runMain(t, tt.args)

			require.Equal(t, 1, exitCode)
			require.Contains(t, stdErr, tt.message)
		})
	}
}

func runMain(t *testing.T, args []string) (int, string, string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() {
		os.Args = oldArgs
	})
	os.Args = append([]string{"wasmprint"}, args...)

	var exitCode int
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	var exited bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				exited = true
			}
		}()
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
		doMain(stdOut, stdErr, func(code int) {
			exitCode = code
			panic(code)
		})
	}()

	require.True(t, exited)

	return exitCode, stdOut.String(), stdErr.String()
}
