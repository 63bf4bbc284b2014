package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/wasmread/internal/testing/binaryencoding"
	"github.com/tetratelabs/wasmread/wasm"
)

// decodeSections returns every section of the module and the error that ended the sequence.
func decodeSections(t *testing.T, buf []byte) ([]Section, error) {
	m, err := DecodeModule(buf)
	require.NoError(t, err)
	var ret []Section
	sections := m.Sections()
	for sections.Next() {
		ret = append(ret, sections.Section())
	}
	require.False(t, sections.Next(), "sequence must stay exhausted")
	return ret, sections.Err()
}

// sectionContent returns the content of the only section in the module.
func sectionContent(t *testing.T, section []byte) SectionContent {
	sections, err := decodeSections(t, binaryencoding.EncodeModule(section))
	require.NoError(t, err)
	require.Equal(t, 1, len(sections))
	c, err := sections[0].Content()
	require.NoError(t, err)
	return c
}

func TestSections(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []Section
	}{
		{
			name:  "no sections",
			input: binaryencoding.EncodeModule(),
		},
		{
			name: "type and custom",
			input: binaryencoding.EncodeModule(
				binaryencoding.EncodeSection(wasm.SectionIDType, binaryencoding.EncodeVector()),
				binaryencoding.EncodeCustomSection("hi", []byte{0xff}),
			),
			expected: []Section{
				{ID: wasm.SectionIDType, Payload: []byte{0x00}, Offset: 10},
				{ID: wasm.SectionIDCustom, Name: "hi", Payload: []byte{0xff}, Offset: 16},
			},
		},
		{
			name: "custom section with only a name",
			input: binaryencoding.EncodeModule(
				binaryencoding.EncodeCustomSection("name", nil),
			),
			expected: []Section{
				{ID: wasm.SectionIDCustom, Name: "name", Payload: []byte{}, Offset: 15},
			},
		},
		{
			name: "empty payload",
			input: binaryencoding.EncodeModule(
				binaryencoding.EncodeSection(wasm.SectionIDData, nil),
			),
			expected: []Section{
				{ID: wasm.SectionIDData, Payload: []byte{}, Offset: 10},
			},
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			sections, err := decodeSections(t, tc.input)
			require.NoError(t, err)
			require.Equal(t, len(tc.expected), len(sections))
			for i, s := range sections {
				require.Equal(t, tc.expected[i].ID, s.ID)
				require.Equal(t, tc.expected[i].Name, s.Name)
				require.Equal(t, tc.expected[i].Payload, s.Payload)
				require.Equal(t, tc.expected[i].Offset, s.Offset)
			}
		})
	}
}

func TestSections_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "declared length exceeds remaining",
			input:       []byte{wasm.SectionIDType, 0x0a, 1, 2, 3, 4},
			expectedErr: wasm.ErrEOF,
			expectedMsg: "type section declares 10 bytes: unexpected end of input at offset 0xa: unexpected EOF",
		},
		{
			name:        "unknown section id",
			input:       []byte{0x0c, 0x00},
			expectedErr: wasm.ErrUnknownVariant,
			expectedMsg: `unknown variant "section id" 0xc at offset 0x8`,
		},
		{
			name:        "malformed section id",
			input:       []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00},
			expectedErr: wasm.ErrMalformedVarint,
			expectedMsg: "read section id: malformed varint at offset 0x8: leb128: overflow",
		},
		{
			name:        "missing size",
			input:       []byte{wasm.SectionIDType},
			expectedErr: wasm.ErrEOF,
			expectedMsg: "read size of type section: unexpected end of input at offset 0x9: unexpected EOF",
		},
		{
			name:        "custom name overruns declared size",
			input:       []byte{wasm.SectionIDCustom, 0x02, 0x05, 'a', 'b', 'c', 'd', 'e'},
			expectedErr: wasm.ErrEOF,
			expectedMsg: "read custom section name: unexpected end of input at offset 0xb: unexpected EOF",
		},
		{
			name:        "custom name invalid UTF-8",
			input:       []byte{wasm.SectionIDCustom, 0x02, 0x01, 0xff},
			expectedErr: wasm.ErrInvalidUTF8,
			expectedMsg: "read custom section name: invalid UTF-8 at offset 0xb",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			sections, err := decodeSections(t, append(binaryencoding.EncodeModule(), tc.input...))
			require.Empty(t, sections)
			require.ErrorIs(t, err, tc.expectedErr)
			require.EqualError(t, err, tc.expectedMsg)
		})
	}
}

func TestSections_ValidSectionsBeforeError(t *testing.T) {
	buf := binaryencoding.EncodeModule(
		binaryencoding.EncodeStartSection(3),
		[]byte{0x0c, 0x00},
		binaryencoding.EncodeStartSection(4),
	)
	sections, err := decodeSections(t, buf)
	require.ErrorIs(t, err, wasm.ErrUnknownVariant)
	require.Equal(t, 1, len(sections))

	c, err := sections[0].Content()
	require.NoError(t, err)
	require.Equal(t, StartSection(3), c)
}

func TestSections_Restartable(t *testing.T) {
	buf := binaryencoding.EncodeModule(
		binaryencoding.EncodeStartSection(3),
		binaryencoding.EncodeCustomSection("a", []byte{1}),
	)
	m, err := DecodeModule(buf)
	require.NoError(t, err)

	first := m.Sections()
	require.True(t, first.Next())
	second := m.Sections()
	require.True(t, second.Next())
	require.Equal(t, first.Section(), second.Section())
	require.True(t, first.Next())
	require.False(t, first.Next())
	require.True(t, second.Next())
	require.Equal(t, first.Section(), second.Section())
	require.NoError(t, first.Err())
}

func TestSection_Content(t *testing.T) {
	empty := binaryencoding.EncodeVector()
	tests := []struct {
		name     string
		input    []byte
		expected SectionContent
	}{
		{name: "type", input: binaryencoding.EncodeSection(wasm.SectionIDType, empty), expected: &TypeSection{}},
		{name: "import", input: binaryencoding.EncodeSection(wasm.SectionIDImport, empty), expected: &ImportSection{}},
		{name: "function", input: binaryencoding.EncodeSection(wasm.SectionIDFunction, empty), expected: &FunctionSection{}},
		{name: "table", input: binaryencoding.EncodeSection(wasm.SectionIDTable, empty), expected: &TableSection{}},
		{name: "memory", input: binaryencoding.EncodeSection(wasm.SectionIDMemory, empty), expected: &MemorySection{}},
		{name: "global", input: binaryencoding.EncodeSection(wasm.SectionIDGlobal, empty), expected: &GlobalSection{}},
		{name: "export", input: binaryencoding.EncodeSection(wasm.SectionIDExport, empty), expected: &ExportSection{}},
		{name: "start", input: binaryencoding.EncodeStartSection(0), expected: StartSection(0)},
		{name: "element", input: binaryencoding.EncodeSection(wasm.SectionIDElement, empty), expected: &ElementSection{}},
		{name: "code", input: binaryencoding.EncodeSection(wasm.SectionIDCode, empty), expected: &CodeSection{}},
		{name: "data", input: binaryencoding.EncodeSection(wasm.SectionIDData, empty), expected: &DataSection{}},
		{name: "name", input: binaryencoding.EncodeCustomSection("name", empty), expected: &NameSection{}},
		{name: "custom", input: binaryencoding.EncodeCustomSection("producers", []byte{1, 2}), expected: &CustomSection{}},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			c := sectionContent(t, tc.input)
			require.IsType(t, tc.expected, c)
			require.Equal(t, tc.expected.SectionID(), c.SectionID())
		})
	}
}

func TestSection_Content_Count(t *testing.T) {
	c := sectionContent(t, binaryencoding.EncodeSection(wasm.SectionIDFunction,
		binaryencoding.EncodeVector([]byte{0}, []byte{1}, []byte{2})))
	require.Equal(t, uint32(3), c.(*FunctionSection).Count())
}

func TestSection_Content_Custom(t *testing.T) {
	c := sectionContent(t, binaryencoding.EncodeCustomSection("producers", []byte{1, 2}))
	require.Equal(t, &CustomSection{Name: "producers", Data: []byte{1, 2}}, c)
}

func TestSection_Content_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr error
		expectedMsg string
	}{
		{
			name:        "missing count",
			input:       binaryencoding.EncodeSection(wasm.SectionIDType, nil),
			expectedErr: wasm.ErrEOF,
			expectedMsg: "read type section count: unexpected end of input at offset 0xa: unexpected EOF",
		},
		{
			name:        "missing start index",
			input:       binaryencoding.EncodeSection(wasm.SectionIDStart, nil),
			expectedErr: wasm.ErrEOF,
			expectedMsg: "read start function index: unexpected end of input at offset 0xa: unexpected EOF",
		},
		{
			name:        "malformed name count",
			input:       binaryencoding.EncodeCustomSection("name", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}),
			expectedErr: wasm.ErrMalformedVarint,
			expectedMsg: "read custom section count: malformed varint at offset 0xf: leb128: overflow",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			sections, err := decodeSections(t, binaryencoding.EncodeModule(tc.input))
			require.NoError(t, err)
			_, err = sections[0].Content()
			require.ErrorIs(t, err, tc.expectedErr)
			require.EqualError(t, err, tc.expectedMsg)
		})
	}
}
