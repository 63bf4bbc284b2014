// Package leb128 decodes the LEB128 variable-length integers used throughout the WebAssembly binary format.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#integers%E2%91%A4
package leb128

import (
	"errors"
	"io"
)

const (
	maxVarintLen32 = 5
	maxVarintLen64 = 10
)

// ErrOverflow is returned when an encoding does not terminate within the maximum width of its target size, or when
// the unused bits of its final byte are not a valid zero or sign extension.
var ErrOverflow = errors.New("leb128: overflow")

// EncodeInt32 encodes the signed value into a buffer in LEB128 format
//
// See https://en.wikipedia.org/wiki/LEB128#Encode_signed_integer
func EncodeInt32(value int32) []byte {
	return EncodeInt64(int64(value))
}

// EncodeInt64 encodes the signed value into a buffer in LEB128 format
//
// See https://en.wikipedia.org/wiki/LEB128#Encode_signed_integer
func EncodeInt64(value int64) (buf []byte) {
	for {
		// Take 7 remaining low-order bits from the value into b.
		b := uint8(value & 0x7f)
		// Extract the sign bit.
		s := uint8(value & 0x40)
		value >>= 7

		// The encoding unsigned numbers is simpler as it only needs to check if the value is non-zero to tell if there
		// are more bits to encode. Signed is a little more complicated as you have to double-check the sign bit.
		// If either case, set the high-order bit to tell the reader there are more bytes in this int.
		if (value != -1 || s == 0) && (value != 0 || s != 0) {
			b |= 0x80
		}

		// Append b into the buffer
		buf = append(buf, b)
		if b&0x80 == 0 {
			break
		}
	}
	return buf
}

// EncodeUint32 encodes the value into a buffer in LEB128 format
//
// See https://en.wikipedia.org/wiki/LEB128#Encode_unsigned_integer
func EncodeUint32(value uint32) []byte {
	return EncodeUint64(uint64(value))
}

// EncodeUint64 encodes the value into a buffer in LEB128 format
//
// See https://en.wikipedia.org/wiki/LEB128#Encode_unsigned_integer
func EncodeUint64(value uint64) (buf []byte) {
	// This is effectively a do/while loop where we take 7 bits of the value and encode them until it is zero.
	for {
		// Take 7 remaining low-order bits from the value into b.
		b := uint8(value & 0x7f)
		value = value >> 7

		// If there are remaining bits, the value won't be zero: Set the high-
		// order bit to tell the reader there are more bytes in this uint.
		if value != 0 {
			b |= 0x80
		}

		// Append b into the buffer
		buf = append(buf, b)
		if b&0x80 == 0 {
			return buf
		}
	}
}

// LoadUint32 decodes an unsigned 32-bit value from the head of buf, returning it with the count of bytes consumed.
func LoadUint32(buf []byte) (ret uint32, bytesRead uint64, err error) {
	var shift uint
	for i := 0; i < maxVarintLen32; i++ {
		if i >= len(buf) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := buf[i]
		if b < 0x80 {
			// Only the low 4 bits of the fifth byte fit into 32 bits.
			if i == maxVarintLen32-1 && b&0xf0 != 0 {
				return 0, 0, ErrOverflow
			}
			return ret | uint32(b)<<shift, uint64(i) + 1, nil
		}
		ret |= uint32(b&0x7f) << shift
		shift += 7
	}
	return 0, 0, ErrOverflow
}

// LoadUint64 decodes an unsigned 64-bit value from the head of buf, returning it with the count of bytes consumed.
func LoadUint64(buf []byte) (ret uint64, bytesRead uint64, err error) {
	var shift uint
	for i := 0; i < maxVarintLen64; i++ {
		if i >= len(buf) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := buf[i]
		if b < 0x80 {
			// Only the lowest bit of the tenth byte fits into 64 bits.
			if i == maxVarintLen64-1 && b > 1 {
				return 0, 0, ErrOverflow
			}
			return ret | uint64(b)<<shift, uint64(i) + 1, nil
		}
		ret |= uint64(b&0x7f) << shift
		shift += 7
	}
	return 0, 0, ErrOverflow
}

// LoadInt32 decodes a signed 32-bit value from the head of buf, returning it with the count of bytes consumed.
func LoadInt32(buf []byte) (ret int32, bytesRead uint64, err error) {
	var shift uint
	for i := 0; i < maxVarintLen32; i++ {
		if i >= len(buf) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := buf[i]
		ret |= int32(b&0x7f) << shift
		shift += 7
		if b&0x80 != 0 {
			continue
		}
		if i == maxVarintLen32-1 {
			// Bits 4-6 of the fifth byte must repeat the sign bit (bit 3).
			if unused := b & 0x70; (b&0x08 == 0 && unused != 0) || (b&0x08 != 0 && unused != 0x70) {
				return 0, 0, ErrOverflow
			}
		} else if b&0x40 != 0 {
			ret |= -1 << shift
		}
		return ret, uint64(i) + 1, nil
	}
	return 0, 0, ErrOverflow
}

// LoadInt64 decodes a signed 64-bit value from the head of buf, returning it with the count of bytes consumed.
func LoadInt64(buf []byte) (ret int64, bytesRead uint64, err error) {
	var shift uint
	for i := 0; i < maxVarintLen64; i++ {
		if i >= len(buf) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := buf[i]
		ret |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 != 0 {
			continue
		}
		if i == maxVarintLen64-1 {
			// The tenth byte carries bit 63 only, so it is either all zeros or all ones.
			if b != 0 && b != 0x7f {
				return 0, 0, ErrOverflow
			}
		} else if b&0x40 != 0 {
			ret |= -1 << shift
		}
		return ret, uint64(i) + 1, nil
	}
	return 0, 0, ErrOverflow
}
