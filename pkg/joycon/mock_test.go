package joycon_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jccolor/pkg/joycon"
)

// mockDevice scripts the frames a controller would send back. Each Read
// pops one frame; running out of frames behaves like a read timeout.
type mockDevice struct {
	writes  [][]byte
	replies [][]byte

	writeErr error
	shortBy  int
	closed   int
}

func (d *mockDevice) Write(p []byte) (int, error) {
	if d.writeErr != nil {
		return 0, d.writeErr
	}
	cp := make([]byte, len(p))
	copy(cp, p)
	d.writes = append(d.writes, cp)
	return len(p) - d.shortBy, nil
}

func (d *mockDevice) Read(p []byte, _ time.Duration) (int, error) {
	if len(d.replies) == 0 {
		return 0, nil
	}
	f := d.replies[0]
	d.replies = d.replies[1:]
	return copy(p, f), nil
}

func (d *mockDevice) Close() error {
	d.closed++
	return nil
}

type mockTransport struct {
	devices map[uint16][]joycon.DeviceInfo
	dev     joycon.Device
	openErr error
	enumErr error
}

func (t *mockTransport) Enumerate(vendorID, productID uint16) ([]joycon.DeviceInfo, error) {
	if t.enumErr != nil {
		return nil, t.enumErr
	}
	return t.devices[productID], nil
}

func (t *mockTransport) Open(path string) (joycon.Device, error) {
	if t.openErr != nil {
		return nil, t.openErr
	}
	return t.dev, nil
}

// subReply builds a valid 49-byte sub-command ack for subID carrying payload.
func subReply(subID byte, ack bool, payload []byte) []byte {
	f := make([]byte, 49)
	f[0] = 0x21
	if ack {
		f[13] = 0x80
	}
	f[14] = subID
	copy(f[15:], payload)
	return f
}

// flashReadReply builds the ack for an SPI read of data at offset.
func flashReadReply(offset uint32, data []byte) []byte {
	payload := make([]byte, 5+len(data))
	payload[0] = byte(offset)
	payload[1] = byte(offset >> 8)
	payload[2] = byte(offset >> 16)
	payload[3] = byte(offset >> 24)
	payload[4] = byte(len(data))
	copy(payload[5:], data)
	return subReply(0x10, true, payload)
}

var errMock = errors.New("mock failure")

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// openTestSession opens a session against a scripted device. The player
// light init exchange is handled here; extra replies are what the test's
// own operations will consume.
func openTestSession(t *testing.T, typ joycon.ControllerType, dev *mockDevice) *joycon.Session {
	t.Helper()
	dev.replies = append([][]byte{subReply(0x30, true, nil)}, dev.replies...)
	tr := &mockTransport{dev: dev}
	s, err := joycon.Open(tr, joycon.Descriptor{Type: typ, Serial: "XCW10000000000", Path: "mock"}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	// Init consumed one write; drop it so tests only see their own traffic.
	dev.writes = nil
	return s
}
