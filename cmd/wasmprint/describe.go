package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/wasmread/wasm"
	"github.com/tetratelabs/wasmread/wasm/binary"
)

// hexRowSize is the number of bytes per row when dumping opaque data.
const hexRowSize = 16

// moduleView is a module rendered to lines, section by section.
type moduleView struct {
	Version  uint32
	Sections []sectionView
	// Err is the framing error that ended the section sequence, if any.
	Err error
}

// sectionView is one section rendered to lines. Err is set when the section content could not be fully decoded;
// Lines then holds everything decoded before the failure.
type sectionView struct {
	ID     wasm.SectionID
	Name   string
	Offset int
	Size   int
	Lines  []string
	Err    error
}

func (s *sectionView) title() string {
	if s.ID == wasm.SectionIDCustom {
		return wasm.SectionIDName(s.ID) + " " + s.Name
	}
	return wasm.SectionIDName(s.ID)
}

// failed returns true if any part of the module could not be decoded.
func (m *moduleView) failed() bool {
	if m.Err != nil {
		return true
	}
	for i := range m.Sections {
		if m.Sections[i].Err != nil {
			return true
		}
	}
	return false
}

func describeModule(buf []byte) (*moduleView, error) {
	m, err := binary.DecodeModule(buf)
	if err != nil {
		return nil, err
	}
	ret := &moduleView{Version: m.Version}
	sections := m.Sections()
	for sections.Next() {
		s := sections.Section()
		v := sectionView{ID: s.ID, Name: s.Name, Offset: s.Offset, Size: len(s.Payload)}
		v.Lines, v.Err = describeSection(s)
		ret.Sections = append(ret.Sections, v)
	}
	ret.Err = sections.Err()
	return ret, nil
}

type lines []string

func (l *lines) add(format string, args ...interface{}) {
	*l = append(*l, fmt.Sprintf(format, args...))
}

func (l *lines) addHex(indent string, data []byte) {
	for len(data) > 0 {
		n := hexRowSize
		if len(data) < n {
			n = len(data)
		}
		*l = append(*l, fmt.Sprintf("%s% x", indent, data[:n]))
		data = data[n:]
	}
}

func describeSection(s binary.Section) ([]string, error) {
	c, err := s.Content()
	if err != nil {
		return nil, err
	}
	var l lines
	switch c := c.(type) {
	case *binary.TypeSection:
		err = describeTypes(&l, c.Entries())
	case *binary.ImportSection:
		err = describeImports(&l, c.Entries())
	case *binary.FunctionSection:
		e := c.Entries()
		for i := 0; e.Next(); i++ {
			l.add("function %d: type=%d", i, e.Entry())
		}
		err = e.Err()
	case *binary.TableSection:
		e := c.Entries()
		for i := 0; e.Next(); i++ {
			tt := e.Entry()
			l.add("table %d: type=%s, initial=%d, max=%s", i, wasm.RefTypeName(tt.ElemType), tt.Limits.Initial, maximum(tt.Limits))
		}
		err = e.Err()
	case *binary.MemorySection:
		e := c.Entries()
		for i := 0; e.Next(); i++ {
			l.add("memory %d: initial=%d, max=%s", i, e.Entry().Initial, maximum(e.Entry()))
		}
		err = e.Err()
	case *binary.GlobalSection:
		err = describeGlobals(&l, c.Entries())
	case *binary.ExportSection:
		e := c.Entries()
		for e.Next() {
			x := e.Entry()
			l.add("%s: kind=%s, index=%d", x.Field, wasm.ExternTypeName(x.Kind), x.Index)
		}
		err = e.Err()
	case binary.StartSection:
		l.add("start function=%d", uint32(c))
	case *binary.ElementSection:
		err = describeElements(&l, c.Entries())
	case *binary.CodeSection:
		err = describeCode(&l, c.Entries())
	case *binary.DataSection:
		err = describeData(&l, c.Entries())
	case *binary.NameSection:
		e := c.Entries()
		for e.Next() {
			if item := e.Item(); item.Kind == binary.NameItemFunction {
				l.add("%s", item.Name)
			} else {
				l.add("  %s", item.Name)
			}
		}
		err = e.Err()
	case *binary.CustomSection:
		l.add("%d bytes", len(c.Data))
		l.addHex("  ", c.Data)
	}
	return l, err
}

func maximum(l binary.Limits) string {
	if l.Maximum == nil {
		return "none"
	}
	return strconv.FormatUint(uint64(*l.Maximum), 10)
}

func describeTypes(l *lines, e *binary.Entries[binary.FunctionType]) error {
	for i := 0; e.Next(); i++ {
		l.add("type %d: %s", i, e.Entry())
	}
	return e.Err()
}

func describeImports(l *lines, e *binary.Entries[binary.Import]) error {
	for e.Next() {
		i := e.Entry()
		switch i.Kind {
		case wasm.ExternTypeFunc:
			l.add("%s::%s: function type=%d", i.Module, i.Field, i.DescFunc)
		case wasm.ExternTypeTable:
			l.add("%s::%s: table type=%s, initial=%d, max=%s", i.Module, i.Field,
				wasm.RefTypeName(i.DescTable.ElemType), i.DescTable.Limits.Initial, maximum(i.DescTable.Limits))
		case wasm.ExternTypeMemory:
			l.add("%s::%s: memory initial=%d, max=%s", i.Module, i.Field, i.DescMem.Initial, maximum(i.DescMem))
		case wasm.ExternTypeGlobal:
			l.add("%s::%s: global ty=%s, mutable=%t", i.Module, i.Field,
				wasm.ValueTypeName(i.DescGlobal.ValType), i.DescGlobal.Mutable)
		}
	}
	return e.Err()
}

func describeGlobals(l *lines, e *binary.GlobalEntries) error {
	var i int
	for e.Next() {
		item := e.Item()
		switch item.Kind {
		case binary.GlobalItemType:
			l.add("global %d: ty=%s, mutable=%t", i, wasm.ValueTypeName(item.Type.ValType), item.Type.Mutable)
			i++
		case binary.GlobalItemOp:
			l.add("  %s", item.Op)
		}
	}
	return e.Err()
}

func describeElements(l *lines, e *binary.ElementEntries) error {
	var funcs []string
	flush := func() {
		if funcs != nil {
			l.add("  funcs %s", strings.Join(funcs, " "))
			funcs = nil
		}
	}
	for e.Next() {
		item := e.Item()
		switch item.Kind {
		case binary.ElementItemIndex:
			flush()
			l.add("element table=%d", item.Index)
		case binary.ElementItemOp:
			l.add("  %s", item.Op)
		case binary.ElementItemFunc:
			funcs = append(funcs, strconv.FormatUint(uint64(item.Index), 10))
		}
	}
	flush()
	return e.Err()
}

func describeCode(l *lines, e *binary.Entries[binary.FunctionBody]) error {
	for i := 0; e.Next(); i++ {
		l.add("function %d", i)
		parts := e.Entry().Contents()
		for parts.Next() {
			p := parts.Part()
			switch p.Kind {
			case binary.FunctionPartLocal:
				l.add("  local %s x %d", wasm.ValueTypeName(p.Local.Type), p.Local.Count)
			case binary.FunctionPartOp:
				l.add("  %s", p.Op)
			}
		}
		if err := parts.Err(); err != nil {
			return fmt.Errorf("function %d: %w", i, err)
		}
	}
	return e.Err()
}

func describeData(l *lines, e *binary.DataEntries) error {
	for e.Next() {
		item := e.Item()
		switch item.Kind {
		case binary.DataItemIndex:
			l.add("data for memory %d", item.Index)
			l.add("  offset:")
		case binary.DataItemOp:
			l.add("    %s", item.Op)
		case binary.DataItemBytes:
			l.add("  value:")
			l.addHex("    ", item.Bytes)
		}
	}
	return e.Err()
}
