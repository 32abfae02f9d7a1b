// internal/transport/transport.go
package transport

import (
	"errors"
	"fmt"
)

// PacketSize is the badge's HID report size. Every packet is exactly this long.
const PacketSize = 64

var (
	ErrDeviceNotFound = errors.New("transport: device not found")
	ErrTransport      = errors.New("transport: write failed")
)

// Transport delivers one fully assembled message.
//
// Write is all-or-nothing from the caller's point of view: on error the
// device state is undefined and the only recovery is a full re-send.
// Implementations never retry.
type Transport interface {
	Write(buf []byte) error
}

// Error reports which step of a write failed. It matches ErrTransport.
type Error struct {
	Op    string // open, write, dump
	Chunk int    // packet index, -1 when not packet related
	Err   error
}

func (e *Error) Error() string {
	if e.Chunk < 0 {
		return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("transport: %s packet %d: %v", e.Op, e.Chunk, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrTransport }

// Chunk splits buf into packets of size bytes, zero-padding the last one.
// buf is not modified.
func Chunk(buf []byte, size int) [][]byte {
	if size <= 0 || len(buf) == 0 {
		return nil
	}

	n := (len(buf) + size - 1) / size
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		pkt := make([]byte, size)
		copy(pkt, buf[i*size:])
		out[i] = pkt
	}
	return out
}
