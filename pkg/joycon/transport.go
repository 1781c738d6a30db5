package joycon

import (
	"errors"
	"time"

	"github.com/sstallion/go-hid"
)

// DeviceInfo is the subset of an HID enumeration entry the enumerator needs.
type DeviceInfo struct {
	Path      string
	Serial    string
	ProductID uint16
}

// Transport abstracts the HID subsystem so the protocol layer can be tested
// against a mock. The production implementation is HIDTransport.
type Transport interface {
	Enumerate(vendorID, productID uint16) ([]DeviceInfo, error)
	Open(path string) (Device, error)
}

// Device is one open HID handle. Read blocks for at most the given timeout
// and returns n == 0 with a nil error when the deadline expires without a
// frame; a timeout of zero blocks indefinitely.
type Device interface {
	Write(p []byte) (int, error)
	Read(p []byte, timeout time.Duration) (int, error)
	Close() error
}

// HIDTransport is the hidapi-backed Transport used against real hardware.
type HIDTransport struct{}

var _ Transport = HIDTransport{}

// Init initializes the hidapi library. Call once before using HIDTransport.
func Init() error { return hid.Init() }

// Exit releases the hidapi library.
func Exit() error { return hid.Exit() }

func (HIDTransport) Enumerate(vendorID, productID uint16) ([]DeviceInfo, error) {
	var out []DeviceInfo
	err := hid.Enumerate(vendorID, productID, func(info *hid.DeviceInfo) error {
		out = append(out, DeviceInfo{
			Path:      info.Path,
			Serial:    info.SerialNbr,
			ProductID: info.ProductID,
		})
		return nil
	})
	if err != nil {
		return nil, &TransportError{Op: "enumerate", Err: err}
	}
	return out, nil
}

func (HIDTransport) Open(path string) (Device, error) {
	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, err
	}
	return hidDevice{dev}, nil
}

type hidDevice struct {
	dev *hid.Device
}

func (d hidDevice) Write(p []byte) (int, error) { return d.dev.Write(p) }

func (d hidDevice) Read(p []byte, timeout time.Duration) (int, error) {
	if timeout <= 0 {
		return d.dev.Read(p)
	}
	return readResult(d.dev.ReadWithTimeout(p, timeout))
}

// readResult normalizes hidapi's deadline signal, hid.ErrTimeout, to the
// Device contract of n == 0 with a nil error.
func readResult(n int, err error) (int, error) {
	if errors.Is(err, hid.ErrTimeout) {
		return 0, nil
	}
	return n, err
}

func (d hidDevice) Close() error { return d.dev.Close() }
