package joycon

import (
	"errors"
	"fmt"
)

var (
	// ErrNak is returned when the controller explicitly rejects a
	// sub-command (ack flag clear in the reply).
	ErrNak = errors.New("controller rejected sub-command")

	// ErrTimeout is returned when the controller does not produce a
	// sub-command reply within the read deadline, or keeps flooding the
	// channel with state notifications.
	ErrTimeout = errors.New("timed out waiting for sub-command reply")

	// ErrPayloadTooLarge is returned for flash transfers above
	// FlashMaxTransfer. The limit is a hardware buffer size; callers are
	// expected to never exceed it.
	ErrPayloadTooLarge = errors.New("flash transfer exceeds hardware limit")
)

// ConnectionError wraps a failure to open a controller or to run the
// initialization sub-command at session setup.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TransportError wraps an HID write or read failure, including zero-byte
// reads.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hid %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BadReplyError reports a sub-command reply frame that does not match the
// expected shape.
type BadReplyError struct {
	Reason string
	SubID  byte
}

func (e *BadReplyError) Error() string {
	return fmt.Sprintf("bad reply to sub-command 0x%02X: %s", e.SubID, e.Reason)
}

// VerificationError reports a flash reply whose echoed offset/length does
// not match the request, or a nonzero flash write status.
type VerificationError struct {
	Op     string
	Detail string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("flash %s verification failed: %s", e.Op, e.Detail)
}

// InvalidStateError reports a device setting byte this protocol revision
// does not understand.
type InvalidStateError struct {
	Offset uint32
	Value  byte
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("unrecognized device state 0x%02X at flash offset 0x%X", e.Value, e.Offset)
}
