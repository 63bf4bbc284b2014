package main

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// loadFile maps the file read-only. The returned buffer is valid until release is called.
func loadFile(path string) (buf []byte, release func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	// Empty files cannot be mapped.
	if fi.Size() == 0 {
		return []byte{}, func() error { return nil }, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, nil, err
	}
	return m, m.Unmap, nil
}
