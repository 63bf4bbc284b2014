// Package vs holds the fixtures and the module walk shared by the integration tests that compare this decoder with
// other WebAssembly runtimes.
package vs

import (
	"fmt"

	"github.com/tetratelabs/wasmread/wasm"
	"github.com/tetratelabs/wasmread/wasm/binary"
)

// Fixture is a module in the text format. Fixtures avoid $identifiers so encoders do not add a name section.
type Fixture struct {
	Name    string
	Wat     string
	Exports []string
}

var Fixtures = []Fixture{
	{
		Name: "factorial",
		Wat: `(module
  (type (func (param i64) (result i64)))
  (func (type 0)
    local.get 0
    i64.const 1
    i64.lt_s
    if (result i64)
      i64.const 1
    else
      local.get 0
      local.get 0
      i64.const 1
      i64.sub
      call 0
      i64.mul
    end)
  (export "fac" (func 0)))`,
		Exports: []string{"fac"},
	},
	{
		Name: "memory",
		Wat: `(module
  (import "env" "log" (func (param i32 i32)))
  (memory 1 2)
  (global (mut i32) (i32.const 16))
  (data (i32.const 8) "hello world")
  (func (result i32)
    global.get 0
    i32.load offset=4 align=2
    memory.size
    i32.add
    f64.const 1.5
    f32.const -0.25
    drop
    drop)
  (export "memory" (memory 0))
  (export "load" (func 1)))`,
		Exports: []string{"memory", "load"},
	},
	{
		Name: "table",
		Wat: `(module
  (type (func (result i32)))
  (table 2 funcref)
  (elem (i32.const 0) 0 1)
  (func (type 0) i32.const 1)
  (func (type 0) i32.const 2)
  (func (param i32) (result i32)
    block
      block
        local.get 0
        br_table 0 1 1
      end
      i32.const 10
      return
    end
    local.get 0
    call_indirect (type 0))
  (export "dispatch" (func 2)))`,
		Exports: []string{"dispatch"},
	},
}

// Stats summarizes a module by walking every section, entry and instruction.
type Stats struct {
	Sections  int
	Types     []string
	Imports   []string
	Functions int
	Exports   []string
	Bodies    int
	Ops       int
	Data      int
}

// Walk decodes the whole module. The name section is treated as opaque, as encoders may use a layout newer than
// the one this decoder reads.
func Walk(bin []byte) (*Stats, error) {
	m, err := binary.DecodeModule(bin)
	if err != nil {
		return nil, err
	}
	ret := &Stats{}
	sections := m.Sections()
	for sections.Next() {
		ret.Sections++
		s := sections.Section()
		if s.ID == wasm.SectionIDCustom {
			continue
		}
		c, err := s.Content()
		if err != nil {
			return nil, err
		}
		if err = ret.add(c); err != nil {
			return nil, fmt.Errorf("%s section: %w", wasm.SectionIDName(s.ID), err)
		}
	}
	return ret, sections.Err()
}

func (st *Stats) add(c binary.SectionContent) error {
	switch c := c.(type) {
	case *binary.TypeSection:
		e := c.Entries()
		for e.Next() {
			st.Types = append(st.Types, e.Entry().String())
		}
		return e.Err()
	case *binary.ImportSection:
		e := c.Entries()
		for e.Next() {
			st.Imports = append(st.Imports, e.Entry().Module+"."+e.Entry().Field)
		}
		return e.Err()
	case *binary.FunctionSection:
		e := c.Entries()
		for e.Next() {
			st.Functions++
		}
		return e.Err()
	case *binary.ExportSection:
		e := c.Entries()
		for e.Next() {
			st.Exports = append(st.Exports, e.Entry().Field)
		}
		return e.Err()
	case *binary.GlobalSection:
		e := c.Entries()
		for e.Next() {
			if e.Item().Kind == binary.GlobalItemOp {
				st.Ops++
			}
		}
		return e.Err()
	case *binary.ElementSection:
		e := c.Entries()
		for e.Next() {
			if e.Item().Kind == binary.ElementItemOp {
				st.Ops++
			}
		}
		return e.Err()
	case *binary.DataSection:
		e := c.Entries()
		for e.Next() {
			switch e.Item().Kind {
			case binary.DataItemOp:
				st.Ops++
			case binary.DataItemBytes:
				st.Data += len(e.Item().Bytes)
			}
		}
		return e.Err()
	case *binary.CodeSection:
		e := c.Entries()
		for e.Next() {
			st.Bodies++
			parts := e.Entry().Contents()
			for parts.Next() {
				if parts.Part().Kind == binary.FunctionPartOp {
					st.Ops++
				}
			}
			if err := parts.Err(); err != nil {
				return err
			}
		}
		return e.Err()
	case *binary.TableSection:
		e := c.Entries()
		for e.Next() {
		}
		return e.Err()
	case *binary.MemorySection:
		e := c.Entries()
		for e.Next() {
		}
		return e.Err()
	}
	return nil
}
