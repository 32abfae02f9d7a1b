// internal/transport/hid.go
package transport

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/karalabe/hid"

	"github.com/tamzrod/led-badge/internal/log"
)

// USB identity of the badge.
const (
	DefaultVendorID  uint16 = 0x0416
	DefaultProductID uint16 = 0x5020
)

// device is the subset of *hid.Device the writer needs.
type device interface {
	Write(b []byte) (int, error)
	Close() error
}

type opener func(vendorID, productID uint16) (device, error)

type HIDConfig struct {
	VendorID  uint16 // 0 means DefaultVendorID
	ProductID uint16 // 0 means DefaultProductID
	Logger    *log.Logger
}

// HID writes messages to the first attached badge.
// The device is opened per write and closed afterwards; writes are serialized.
type HID struct {
	mu   sync.Mutex
	cfg  HIDConfig
	open opener

	// reportID prefixes every packet with report ID 0. hidapi takes the
	// report ID from the first byte on all platforms but Windows, where
	// the hid package adds it itself.
	reportID bool
}

func NewHID(cfg HIDConfig) *HID {
	if cfg.VendorID == 0 {
		cfg.VendorID = DefaultVendorID
	}
	if cfg.ProductID == 0 {
		cfg.ProductID = DefaultProductID
	}
	return &HID{
		cfg:      cfg,
		open:     openHID,
		reportID: runtime.GOOS != "windows",
	}
}

func openHID(vendorID, productID uint16) (device, error) {
	if !hid.Supported() {
		return nil, fmt.Errorf("hid not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	infos := hid.Enumerate(vendorID, productID)
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: %04x:%04x", ErrDeviceNotFound, vendorID, productID)
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Write opens the badge, sends buf as PacketSize packets in order and
// closes the badge. The first failing packet aborts the write.
func (t *HID) Write(buf []byte) error {
	if len(buf) == 0 {
		return &Error{Op: "write", Chunk: -1, Err: errors.New("empty buffer")}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	dev, err := t.open(t.cfg.VendorID, t.cfg.ProductID)
	if err != nil {
		if errors.Is(err, ErrDeviceNotFound) {
			return err
		}
		return &Error{Op: "open", Chunk: -1, Err: err}
	}
	defer func() {
		if err := dev.Close(); err != nil {
			t.cfg.Logger.Warn("badge close failed", "err", err)
		}
	}()

	packets := Chunk(buf, PacketSize)
	for i, pkt := range packets {
		report := pkt
		if t.reportID {
			report = append([]byte{0x00}, pkt...)
		}

		n, err := dev.Write(report)
		if err != nil {
			return &Error{Op: "write", Chunk: i, Err: err}
		}
		if n < len(report) {
			return &Error{Op: "write", Chunk: i, Err: fmt.Errorf("short write: %d of %d bytes", n, len(report))}
		}
	}

	t.cfg.Logger.Debug("badge written",
		"bytes", len(buf),
		"packets", len(packets),
		"device", fmt.Sprintf("%04x:%04x", t.cfg.VendorID, t.cfg.ProductID))
	return nil
}
