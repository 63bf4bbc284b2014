package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasmread/internal/testing/binaryencoding"
	"github.com/tetratelabs/wasmread/wasm"
)

// collect drains the sequence, returning its entries and the error that ended it.
func collect[T any](e *Entries[T]) (ret []T, err error) {
	for e.Next() {
		ret = append(ret, e.Entry())
	}
	return ret, e.Err()
}

func TestTypeSection(t *testing.T) {
	i32, f64 := wasm.ValueTypeI32, wasm.ValueTypeF64
	tests := []struct {
		name     string
		input    []byte
		expected FunctionType
		text     string
	}{
		{
			name:     "no param no result",
			input:    binaryencoding.EncodeFunctionType(nil, nil),
			expected: FunctionType{},
			text:     "(func)",
		},
		{
			name:     "no param one result",
			input:    binaryencoding.EncodeFunctionType(nil, &i32),
			expected: FunctionType{Result: &i32},
			text:     "(func (result i32))",
		},
		{
			name:  "params and result",
			input: binaryencoding.EncodeFunctionType([]wasm.ValueType{wasm.ValueTypeI64, wasm.ValueTypeF32}, &f64),
			expected: FunctionType{
				Params: []wasm.ValueType{wasm.ValueTypeI64, wasm.ValueTypeF32},
				Result: &f64,
			},
			text: "(func (param i64 f32) (result f64))",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			c := sectionContent(t, binaryencoding.EncodeSection(wasm.SectionIDType, binaryencoding.EncodeVector(tc.input)))
			entries, err := collect(c.(*TypeSection).Entries())
			require.NoError(t, err)
			require.Equal(t, []FunctionType{tc.expected}, entries)
			require.Equal(t, tc.text, entries[0].String())
		})
	}
}

func TestTypeSection_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "pre-final form",
			input:       []byte{0x40, 0x00, 0x00},
			expectedErr: wasm.ErrUnknownVariant,
			expectedMsg: `unknown variant "type form" 0x40 at offset 0xb`,
		},
		{
			name:        "unknown param type",
			input:       []byte{0x60, 0x02, wasm.ValueTypeI32, 0x01, 0x00},
			expectedErr: wasm.ErrUnknownVariant,
			expectedMsg: `unknown variant "value type" 0x1 at offset 0xe`,
		},
		{
			name:        "fewer params than declared",
			input:       []byte{0x60, 0x03, wasm.ValueTypeI32},
			expectedErr: wasm.ErrEOF,
			expectedMsg: "read parameter types: unexpected end of input at offset 0xd: unexpected EOF",
		},
		{
			name:        "multiple results",
			input:       []byte{0x60, 0x00, 0x02, wasm.ValueTypeI32, wasm.ValueTypeI32},
			expectedErr: wasm.ErrUnknownVariant,
			expectedMsg: `unknown variant "result count" 0x2 at offset 0xd`,
		},
		{
			name:        "unknown result type",
			input:       []byte{0x60, 0x00, 0x01, 0x7b},
			expectedErr: wasm.ErrUnknownVariant,
			expectedMsg: `read result type: unknown variant "value type" 0x7b at offset 0xe`,
		},
		{
			name:        "missing result count",
			input:       []byte{0x60, 0x00},
			expectedErr: wasm.ErrEOF,
			expectedMsg: "read result count: unexpected end of input at offset 0xd: unexpected EOF",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			c := sectionContent(t, binaryencoding.EncodeSection(wasm.SectionIDType, binaryencoding.EncodeVector(tc.input)))
			entries, err := collect(c.(*TypeSection).Entries())
			require.Empty(t, entries)
			require.ErrorIs(t, err, tc.expectedErr)
			require.EqualError(t, err, tc.expectedMsg)
		})
	}
}

func TestTypeSection_ParamsBorrowBuffer(t *testing.T) {
	buf := binaryencoding.EncodeModule(binaryencoding.EncodeSection(wasm.SectionIDType,
		binaryencoding.EncodeVector(binaryencoding.EncodeFunctionType([]wasm.ValueType{wasm.ValueTypeI32}, nil))))
	m, err := DecodeModule(buf)
	require.NoError(t, err)
	sections := m.Sections()
	require.True(t, sections.Next())
	c, err := sections.Section().Content()
	require.NoError(t, err)
	types := c.(*TypeSection).Entries()
	require.True(t, types.Next())

	params := types.Entry().Params
	require.Equal(t, 1, cap(params))
	buf[13] = wasm.ValueTypeI64
	require.Equal(t, wasm.ValueTypeI64, params[0])
}

func TestTypeSection_CountBounded(t *testing.T) {
	// One declared entry followed by bytes that would fail to decode.
	c := sectionContent(t, binaryencoding.EncodeSection(wasm.SectionIDType,
		append(binaryencoding.EncodeVector(binaryencoding.EncodeFunctionType(nil, nil)), 0xff, 0xff)))
	ts := c.(*TypeSection)
	require.Equal(t, uint32(1), ts.Count())
	entries, err := collect(ts.Entries())
	require.NoError(t, err)
	require.Equal(t, []FunctionType{{}}, entries)

	// Entries restarts every time.
	entries, err = collect(ts.Entries())
	require.NoError(t, err)
	require.Equal(t, 1, len(entries))
}

func TestFunctionSection(t *testing.T) {
	c := sectionContent(t, binaryencoding.EncodeSection(wasm.SectionIDFunction,
		binaryencoding.EncodeVector([]byte{0x00}, []byte{0x80, 0x01}, []byte{0x05})))
	entries, err := collect(c.(*FunctionSection).Entries())
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 128, 5}, entries)
}

func TestFunctionSection_Errors(t *testing.T) {
	c := sectionContent(t, binaryencoding.EncodeSection(wasm.SectionIDFunction,
		binaryencoding.EncodeVector([]byte{0x01}, []byte{0x80})))
	entries, err := collect(c.(*FunctionSection).Entries())
	require.Equal(t, []uint32{1}, entries)
	require.ErrorIs(t, err, wasm.ErrEOF)
	require.EqualError(t, err, "read type index: unexpected end of input at offset 0xc: unexpected EOF")
}
