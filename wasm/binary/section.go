package binary

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tetratelabs/wasmread/wasm"
)

// Section is one top-level section of a module. Payload is a sub-slice of the module buffer.
//
// See https://www.w3.org/TR/wasm-core-1/#sections%E2%91%A0
type Section struct {
	ID wasm.SectionID
	// Name is only set for wasm.SectionIDCustom.
	Name string
	// Payload excludes the id, the size and the custom section name.
	Payload []byte
	// Offset is the absolute position of Payload in the module buffer.
	Offset int
}

// Sections is a lazy sequence of the sections of a Module. Use it like a bufio.Scanner:
//
//	sections := m.Sections()
//	for sections.Next() {
//		s := sections.Section()
//	}
//	if err := sections.Err(); err != nil {
//
// A framing error ends the sequence. Sections already returned remain valid.
type Sections struct {
	r   reader
	cur Section
	err error
}

// Next frames the next section, returning false at the end of the module or on the first error.
func (s *Sections) Next() bool {
	if s.err != nil || s.r.done() {
		return false
	}
	section, err := decodeSection(&s.r)
	if err != nil {
		Logger().Debug("section framing failed", zap.Int("offset", s.r.offset()), zap.Error(err))
		s.err = err
		s.cur = Section{}
		return false
	}
	Logger().Debug("framed section",
		zap.String("id", wasm.SectionIDName(section.ID)),
		zap.String("name", section.Name),
		zap.Int("offset", section.Offset),
		zap.Int("size", len(section.Payload)))
	s.cur = section
	return true
}

// Section returns the section framed by the last call to Next.
func (s *Sections) Section() Section {
	return s.cur
}

// Err returns the error that ended the sequence, or nil if it ended cleanly.
func (s *Sections) Err() error {
	return s.err
}

func decodeSection(r *reader) (Section, error) {
	idOffset := r.offset()
	id, err := r.readUint32()
	if err != nil {
		return Section{}, fmt.Errorf("read section id: %w", err)
	}
	if id > uint32(wasm.SectionIDMax) {
		return Section{}, errUnknownVariant(wasm.DomainSectionID, uint64(id), idOffset)
	}

	size, err := r.readUint32()
	if err != nil {
		return Section{}, fmt.Errorf("read size of %s section: %w", wasm.SectionIDName(byte(id)), err)
	}
	body, err := r.sub(size)
	if err != nil {
		return Section{}, fmt.Errorf("%s section declares %d bytes: %w", wasm.SectionIDName(byte(id)), size, err)
	}

	s := Section{ID: byte(id)}
	if s.ID == wasm.SectionIDCustom {
		// The declared size includes the name, so it is read from within the section.
		if s.Name, err = body.readName(); err != nil {
			return Section{}, fmt.Errorf("read custom section name: %w", err)
		}
	}
	s.Offset = body.offset()
	s.Payload = body.buf[body.pos:]
	return s, nil
}

// SectionContent is the typed view of a section's payload returned by Section.Content. The concrete type is one of
// *TypeSection, *ImportSection, *FunctionSection, *TableSection, *MemorySection, *GlobalSection, *ExportSection,
// StartSection, *ElementSection, *CodeSection, *DataSection, *NameSection or *CustomSection.
type SectionContent interface {
	// SectionID returns the id of the section the content was decoded from.
	SectionID() wasm.SectionID
}

// NameSectionName is the custom section name reserved for debug names.
const NameSectionName = "name"

// Content reads the leading entry count of the section and returns its typed view.
func (s Section) Content() (SectionContent, error) {
	r := newReader(s.Payload, s.Offset)
	if s.ID == wasm.SectionIDStart {
		index, err := r.readUint32()
		if err != nil {
			return nil, fmt.Errorf("read start function index: %w", err)
		}
		return StartSection(index), nil
	}
	if s.ID == wasm.SectionIDCustom && s.Name != NameSectionName {
		return &CustomSection{Name: s.Name, Data: s.Payload}, nil
	}

	count, err := r.readUint32()
	if err != nil {
		return nil, fmt.Errorf("read %s section count: %w", wasm.SectionIDName(s.ID), err)
	}
	c := counted{count: count, r: r}
	switch s.ID {
	case wasm.SectionIDCustom:
		return &NameSection{c}, nil
	case wasm.SectionIDType:
		return &TypeSection{c}, nil
	case wasm.SectionIDImport:
		return &ImportSection{c}, nil
	case wasm.SectionIDFunction:
		return &FunctionSection{c}, nil
	case wasm.SectionIDTable:
		return &TableSection{c}, nil
	case wasm.SectionIDMemory:
		return &MemorySection{c}, nil
	case wasm.SectionIDGlobal:
		return &GlobalSection{c}, nil
	case wasm.SectionIDExport:
		return &ExportSection{c}, nil
	case wasm.SectionIDElement:
		return &ElementSection{c}, nil
	case wasm.SectionIDCode:
		return &CodeSection{c}, nil
	case wasm.SectionIDData:
		return &DataSection{c}, nil
	}
	return nil, errUnknownVariant(wasm.DomainSectionID, uint64(s.ID), s.Offset)
}

// counted is the entry count and remaining payload shared by every repeated-entry section.
type counted struct {
	count uint32
	r     reader
}

// Count returns the number of entries declared by the section.
func (c counted) Count() uint32 {
	return c.count
}

// StartSection is the index of the start function.
//
// See https://www.w3.org/TR/wasm-core-1/#start-section%E2%91%A0
type StartSection uint32

func (StartSection) SectionID() wasm.SectionID { return wasm.SectionIDStart }

// CustomSection is a custom section other than the name section. Its payload is opaque.
//
// See https://www.w3.org/TR/wasm-core-1/#custom-section%E2%91%A0
type CustomSection struct {
	Name string
	Data []byte
}

func (*CustomSection) SectionID() wasm.SectionID { return wasm.SectionIDCustom }

// TypeSection declares function signatures.
//
// See https://www.w3.org/TR/wasm-core-1/#type-section%E2%91%A0
type TypeSection struct{ counted }

func (*TypeSection) SectionID() wasm.SectionID { return wasm.SectionIDType }

// Entries returns a new sequence over the section's function types.
func (s *TypeSection) Entries() *Entries[FunctionType] {
	return newEntries(s.counted, decodeFunctionType)
}

// ImportSection declares imports.
//
// See https://www.w3.org/TR/wasm-core-1/#import-section%E2%91%A0
type ImportSection struct{ counted }

func (*ImportSection) SectionID() wasm.SectionID { return wasm.SectionIDImport }

// Entries returns a new sequence over the section's imports.
func (s *ImportSection) Entries() *Entries[Import] {
	return newEntries(s.counted, decodeImport)
}

// FunctionSection declares the type index of each function defined in the module.
//
// See https://www.w3.org/TR/wasm-core-1/#function-section%E2%91%A0
type FunctionSection struct{ counted }

func (*FunctionSection) SectionID() wasm.SectionID { return wasm.SectionIDFunction }

// Entries returns a new sequence over the section's type indices.
func (s *FunctionSection) Entries() *Entries[uint32] {
	return newEntries(s.counted, decodeTypeIndex)
}

// TableSection declares tables.
//
// See https://www.w3.org/TR/wasm-core-1/#table-section%E2%91%A0
type TableSection struct{ counted }

func (*TableSection) SectionID() wasm.SectionID { return wasm.SectionIDTable }

// Entries returns a new sequence over the section's tables.
func (s *TableSection) Entries() *Entries[TableType] {
	return newEntries(s.counted, decodeTableType)
}

// MemorySection declares linear memories.
//
// See https://www.w3.org/TR/wasm-core-1/#memory-section%E2%91%A0
type MemorySection struct{ counted }

func (*MemorySection) SectionID() wasm.SectionID { return wasm.SectionIDMemory }

// Entries returns a new sequence over the section's memory limits.
func (s *MemorySection) Entries() *Entries[Limits] {
	return newEntries(s.counted, decodeLimits)
}

// GlobalSection declares globals and their initializers.
//
// See https://www.w3.org/TR/wasm-core-1/#global-section%E2%91%A0
type GlobalSection struct{ counted }

func (*GlobalSection) SectionID() wasm.SectionID { return wasm.SectionIDGlobal }

// Entries returns a new sequence over the section's globals, each followed by its initializer.
func (s *GlobalSection) Entries() *GlobalEntries {
	return &GlobalEntries{r: s.r, remaining: s.count}
}

// ExportSection declares exports.
//
// See https://www.w3.org/TR/wasm-core-1/#export-section%E2%91%A0
type ExportSection struct{ counted }

func (*ExportSection) SectionID() wasm.SectionID { return wasm.SectionIDExport }

// Entries returns a new sequence over the section's exports.
func (s *ExportSection) Entries() *Entries[Export] {
	return newEntries(s.counted, decodeExport)
}

// ElementSection declares table initializers.
//
// See https://www.w3.org/TR/wasm-core-1/#element-section%E2%91%A0
type ElementSection struct{ counted }

func (*ElementSection) SectionID() wasm.SectionID { return wasm.SectionIDElement }

// Entries returns a new sequence over the section's element segments.
func (s *ElementSection) Entries() *ElementEntries {
	return &ElementEntries{r: s.r, remaining: s.count}
}

// CodeSection holds function bodies.
//
// See https://www.w3.org/TR/wasm-core-1/#code-section%E2%91%A0
type CodeSection struct{ counted }

func (*CodeSection) SectionID() wasm.SectionID { return wasm.SectionIDCode }

// Entries returns a new sequence over the section's function bodies.
func (s *CodeSection) Entries() *Entries[FunctionBody] {
	return newEntries(s.counted, decodeFunctionBody)
}

// DataSection declares memory initializers.
//
// See https://www.w3.org/TR/wasm-core-1/#data-section%E2%91%A0
type DataSection struct{ counted }

func (*DataSection) SectionID() wasm.SectionID { return wasm.SectionIDData }

// Entries returns a new sequence over the section's data segments.
func (s *DataSection) Entries() *DataEntries {
	return &DataEntries{r: s.r, remaining: s.count}
}

// NameSection is the "name" custom section: per function, its name and the names of its locals.
type NameSection struct{ counted }

func (*NameSection) SectionID() wasm.SectionID { return wasm.SectionIDCustom }

// Entries returns a new sequence over the section's function and local names.
func (s *NameSection) Entries() *NameEntries {
	return &NameEntries{r: s.r, remaining: s.count}
}
