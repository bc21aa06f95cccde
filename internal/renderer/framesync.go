package renderer

import (
	"Troika3D/internal/std140"
)

// UniformBuffer double-buffers one uniform block's byte image so the host
// never mutates bytes an in-flight draw is reading. Stage writes into the
// back slot; Flip publishes it once the previous draw has been submitted.
type UniformBuffer struct {
	slots  [2]*std140.Writer
	size   int
	front  int
	staged bool
}

// NewUniformBuffer allocates both slots for a block of the given size.
func NewUniformBuffer(size int) *UniformBuffer {
	return &UniformBuffer{
		slots: [2]*std140.Writer{
			std140.NewWriter(size),
			std140.NewWriter(size),
		},
		size: size,
	}
}

// NewUniformBufferFor sizes the buffer for a specific block schema.
func NewUniformBufferFor(b Block) *UniformBuffer {
	return NewUniformBuffer(b.Size())
}

// Stage encodes a block into the back slot. The front slot, and any draw
// reading it, is untouched. Blocks larger than the buffer are rejected at
// construction time of the writer, so Stage panics on schema mismatch.
func (u *UniformBuffer) Stage(b Block) {
	if b.Size() != u.size {
		panic("renderer: staged block size does not match buffer")
	}
	back := u.slots[1-u.front]
	back.Reset()
	b.Encode(back)
	u.staged = true
}

// Flip publishes the staged slot. Call between draws, never while a draw
// using Front is still being recorded.
func (u *UniformBuffer) Flip() {
	if !u.staged {
		return
	}
	u.front = 1 - u.front
	u.staged = false
}

// Front returns the published byte image, stable until the next Flip.
func (u *UniformBuffer) Front() []byte {
	return u.slots[u.front].Bytes()
}
