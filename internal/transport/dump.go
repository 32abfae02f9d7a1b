// internal/transport/dump.go
package transport

import (
	"fmt"
	"io"
	"sync"
)

// Dump writes the packets that would go to the badge as a hex listing.
type Dump struct {
	mu sync.Mutex
	w  io.Writer
}

func NewDump(w io.Writer) *Dump {
	return &Dump{w: w}
}

func (d *Dump) Write(buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, pkt := range Chunk(buf, PacketSize) {
		if _, err := fmt.Fprintf(d.w, "%04x: % x\n", i*PacketSize, pkt); err != nil {
			return &Error{Op: "dump", Chunk: i, Err: err}
		}
	}
	return nil
}
