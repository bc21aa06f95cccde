package std140

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/xlab/linmath"
)

func readFloat(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestAlign(t *testing.T) {
	cases := []struct {
		offset, alignment, want int
	}{
		{0, 16, 0},
		{1, 16, 16},
		{12, 16, 16},
		{16, 16, 16},
		{17, 4, 20},
		{64, 4, 64},
	}
	for _, c := range cases {
		if got := Align(c.offset, c.alignment); got != c.want {
			t.Errorf("Align(%d, %d) = %d, want %d", c.offset, c.alignment, got, c.want)
		}
	}
}

func TestVec3ThenScalarPacks(t *testing.T) {
	// vec3 + float must occupy a single 16-byte slot, like
	// AmbientLight { color: vec3; intensity: float }.
	w := NewWriter(16)
	w.PutVec3(1, 2, 3)

	if w.Offset() != 12 {
		t.Fatalf("offset after vec3 = %d, want 12", w.Offset())
	}

	w.PutFloat32(0.5)

	if w.Offset() != 16 {
		t.Errorf("offset after packed scalar = %d, want 16", w.Offset())
	}

	if got := readFloat(w.Bytes(), 12); got != 0.5 {
		t.Errorf("packed scalar at offset 12 = %f, want 0.5", got)
	}
}

func TestVec3ThenVec3Aligns(t *testing.T) {
	w := NewWriter(32)
	w.PutVec3(1, 1, 1)
	w.PutVec3(2, 2, 2)

	if got := readFloat(w.Bytes(), 16); got != 2 {
		t.Errorf("second vec3 should start at offset 16, got %f there", got)
	}
}

func TestPutMat4ColumnMajor(t *testing.T) {
	var m linmath.Mat4x4
	m[0] = linmath.Vec4{1, 2, 3, 4}
	m[3] = linmath.Vec4{13, 14, 15, 16}

	w := NewWriter(64)
	w.PutMat4(m)

	if w.Offset() != SizeMat4 {
		t.Fatalf("offset after mat4 = %d, want %d", w.Offset(), SizeMat4)
	}

	if got := readFloat(w.Bytes(), 0); got != 1 {
		t.Errorf("m[0][0] at offset 0 = %f, want 1", got)
	}
	if got := readFloat(w.Bytes(), 4); got != 2 {
		t.Errorf("m[0][1] at offset 4 = %f, want 2", got)
	}
	if got := readFloat(w.Bytes(), 48); got != 13 {
		t.Errorf("m[3][0] at offset 48 = %f, want 13", got)
	}
}

func TestPadAndReset(t *testing.T) {
	w := NewWriter(32)
	w.PutFloat32(1)
	w.Pad(16)

	if w.Offset() != 16 {
		t.Errorf("offset after pad = %d, want 16", w.Offset())
	}

	w.PutFloat32(2)
	w.Reset()

	if w.Offset() != 0 {
		t.Errorf("offset after reset = %d, want 0", w.Offset())
	}

	for i, b := range w.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after reset", i)
		}
	}
}

func TestPadBackwardsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pad before current offset should panic")
		}
	}()

	w := NewWriter(16)
	w.PutVec4(1, 2, 3, 4)
	w.Pad(4)
}

func TestLittleEndianEncoding(t *testing.T) {
	w := NewWriter(4)
	w.PutFloat32(1.0)

	// 1.0f = 0x3F800000, little-endian.
	want := []byte{0x00, 0x00, 0x80, 0x3F}
	for i, b := range want {
		if w.Bytes()[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, w.Bytes()[i], b)
		}
	}
}
