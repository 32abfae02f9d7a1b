// internal/badge/pipeline.go
package badge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tamzrod/led-badge/internal/glyph"
	"github.com/tamzrod/led-badge/internal/header"
	"github.com/tamzrod/led-badge/internal/log"
	"github.com/tamzrod/led-badge/internal/message"
	"github.com/tamzrod/led-badge/internal/render"
	"github.com/tamzrod/led-badge/internal/transport"
)

// Slot is one of up to header.MaxSlots messages stored on the badge.
type Slot struct {
	Text  string
	Speed int // 1..8
	Mode  header.Mode
	Blink bool
	Ants  bool
}

// Message is everything sent in one write.
type Message struct {
	Slots      []Slot
	Brightness int       // 25, 50, 75, 100; 0 = default
	Stamp      time.Time // optional header timestamp
}

// Pipeline runs render -> header -> assemble -> transport.
type Pipeline struct {
	renderer  render.Renderer
	transport transport.Transport
	log       *log.Logger
}

func New(r render.Renderer, t transport.Transport, lg *log.Logger) (*Pipeline, error) {
	if r == nil {
		return nil, errors.New("badge: renderer required")
	}
	if t == nil {
		return nil, errors.New("badge: transport required")
	}
	return &Pipeline{renderer: r, transport: t, log: lg}, nil
}

// Render renders every slot concurrently. Results are in slot order; on
// failure the error of the lowest failing slot is returned.
func (p *Pipeline) Render(slots []Slot) ([]glyph.Bitmap, []int, error) {
	n := len(slots)
	if n == 0 || n > header.MaxSlots {
		return nil, nil, fmt.Errorf("%w: %d slots (want 1..%d)", header.ErrInvalidSlotCount, n, header.MaxSlots)
	}

	bitmaps := make([]glyph.Bitmap, n)
	cols := make([]int, n)
	errs := make([]error, n)

	var eg errgroup.Group
	for i, s := range slots {
		i, s := i, s
		eg.Go(func() error {
			b, c, err := p.renderer.Render(s.Text)
			if err != nil {
				errs[i] = fmt.Errorf("badge: slot %d: %w", i+1, err)
				return errs[i]
			}
			bitmaps[i], cols[i] = b, c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		for _, e := range errs {
			if e != nil {
				return nil, nil, e
			}
		}
		return nil, nil, err
	}

	return bitmaps, cols, nil
}

// Build produces the complete device message. It performs no I/O.
func (p *Pipeline) Build(msg Message) ([]byte, error) {
	bitmaps, cols, err := p.Render(msg.Slots)
	if err != nil {
		return nil, err
	}

	n := len(msg.Slots)
	params := header.Params{
		Lengths:    cols,
		Speeds:     make([]int, n),
		Modes:      make([]header.Mode, n),
		Blinks:     make([]bool, n),
		Ants:       make([]bool, n),
		Brightness: msg.Brightness,
		Stamp:      msg.Stamp,
	}
	for i, s := range msg.Slots {
		params.Speeds[i] = s.Speed
		params.Modes[i] = s.Mode
		params.Blinks[i] = s.Blink
		params.Ants[i] = s.Ants
	}

	hdr, err := header.Encode(params)
	if err != nil {
		return nil, err
	}

	buf, err := message.Assemble(hdr, bitmaps)
	if err != nil {
		return nil, err
	}

	p.log.Debug("message built", "slots", n, "columns", cols, "bytes", len(buf))
	return buf, nil
}

// Send builds msg and writes it to the transport.
//
// ctx is only consulted before the write starts: once packets are flowing
// the write runs to completion, because the badge cannot be told that a
// message was abandoned. To undo a write, send a new full message.
func (p *Pipeline) Send(ctx context.Context, msg Message) error {
	buf, err := p.Build(msg)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.transport.Write(buf); err != nil {
		return err
	}

	p.log.Info("message sent", "slots", len(msg.Slots), "bytes", len(buf))
	return nil
}
