// Package std140 encodes uniform-block data using the std140 layout rules,
// producing the exact byte image a GPU expects for a `layout(std140)` block.
//
// Alignment rules: float/uint align to 4 bytes, vec2 to 8, vec3 and vec4 to
// 16. A vec3 occupies 12 bytes after alignment, so a following scalar may
// pack into the trailing 4 bytes. A mat4 is laid out as four consecutive
// vec4 columns (64 bytes). Array-of-struct strides round up to 16.
package std140

import (
	"encoding/binary"
	"math"

	"github.com/xlab/linmath"
)

// Scalar and vector alignments in bytes.
const (
	AlignFloat = 4
	AlignVec2  = 8
	AlignVec3  = 16
	AlignVec4  = 16
	AlignMat4  = 16

	SizeFloat = 4
	SizeVec2  = 8
	SizeVec3  = 12
	SizeVec4  = 16
	SizeMat4  = 64
)

// Align rounds offset up to the next multiple of alignment.
func Align(offset, alignment int) int {
	return (offset + alignment - 1) &^ (alignment - 1)
}

// Writer fills a fixed-size uniform block image. All writes are
// little-endian IEEE-754, matching GPU memory expectations.
type Writer struct {
	buf []byte
	off int
}

// NewWriter allocates a writer for a block of the given byte size.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, size)}
}

// Reset rewinds the writer to offset zero, reusing the underlying buffer.
// Existing contents are zeroed.
func (w *Writer) Reset() {
	for i := range w.buf {
		w.buf[i] = 0
	}
	w.off = 0
}

// Offset reports the current write offset.
func (w *Writer) Offset() int {
	return w.off
}

// Bytes returns the full block image, including any trailing padding.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Pad advances the write offset to the given absolute offset. Panics if the
// writer is already past it; padding never moves backwards.
func (w *Writer) Pad(to int) {
	if to < w.off {
		panic("std140: pad before current offset")
	}
	w.off = to
}

func (w *Writer) align(alignment int) {
	w.off = Align(w.off, alignment)
}

func (w *Writer) put32(bits uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], bits)
	w.off += 4
}

// PutFloat32 writes a float scalar.
func (w *Writer) PutFloat32(v float32) {
	w.align(AlignFloat)
	w.put32(math.Float32bits(v))
}

// PutUint32 writes an unsigned integer scalar.
func (w *Writer) PutUint32(v uint32) {
	w.align(AlignFloat)
	w.put32(v)
}

// PutVec2 writes a vec2 (8-byte aligned).
func (w *Writer) PutVec2(x, y float32) {
	w.align(AlignVec2)
	w.put32(math.Float32bits(x))
	w.put32(math.Float32bits(y))
}

// PutVec3 writes a vec3. The offset advances 12 bytes past the 16-byte
// alignment point; the next scalar may pack into the trailing 4 bytes.
func (w *Writer) PutVec3(x, y, z float32) {
	w.align(AlignVec3)
	w.put32(math.Float32bits(x))
	w.put32(math.Float32bits(y))
	w.put32(math.Float32bits(z))
}

// PutVec4 writes a vec4.
func (w *Writer) PutVec4(x, y, z, ww float32) {
	w.align(AlignVec4)
	w.put32(math.Float32bits(x))
	w.put32(math.Float32bits(y))
	w.put32(math.Float32bits(z))
	w.put32(math.Float32bits(ww))
}

// PutMat4 writes a mat4 as four consecutive vec4 columns.
func (w *Writer) PutMat4(m linmath.Mat4x4) {
	w.align(AlignMat4)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			w.put32(math.Float32bits(m[col][row]))
		}
	}
}
