package joycon

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// reportOutput is the output report ID carrying a sub-command.
	reportOutput = 0x01
	// reportSubReply acks a sub-command; reportStatus is the unsolicited
	// state push the controller emits on its own, which the engine discards
	// while waiting for a reply.
	reportSubReply = 0x21
	reportStatus   = 0x30

	// subReplyLen is the fixed size of a sub-command ack frame.
	subReplyLen = 49

	subcmdDeviceInfo   = 0x02
	subcmdFlashRead    = 0x10
	subcmdFlashWrite   = 0x11
	subcmdPlayerLights = 0x30
)

// Bounds on the reply wait. The original tooling waits forever; a stalled
// controller would hang the process, so both the per-read deadline and the
// number of tolerated status pushes are capped.
const (
	replyReadTimeout  = time.Second
	maxStatusDiscards = 16
)

var errSessionClosed = errors.New("session closed")

// Session is one open controller. All sub-command traffic for the device
// goes through the session's transaction lock: HID framing for a single
// handle is strictly sequential, so only one write-then-read round trip may
// be in flight at a time. The 4-bit packet sequence counter is per session
// and advances under the same lock.
type Session struct {
	typ    ControllerType
	logger *slog.Logger

	mu  sync.Mutex
	dev Device
	seq uint8
}

// Open connects to the controller behind the descriptor and establishes the
// sub-command channel by setting the player LEDs once. If the init
// sub-command fails the handle is closed and no session is returned.
func Open(t Transport, d Descriptor, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dev, err := t.Open(d.Path)
	if err != nil {
		return nil, &ConnectionError{Path: d.Path, Err: err}
	}
	s := &Session{
		typ:    d.Type,
		logger: logger.With("controller", d.Type.String(), "serial", d.Serial),
	}
	s.dev = dev
	if err := s.SetPlayerLights(0x01); err != nil {
		_ = s.Close()
		return nil, &ConnectionError{Path: d.Path, Err: err}
	}
	s.logger.Debug("session established")
	return s, nil
}

// Type returns the controller type the session was opened for.
func (s *Session) Type() ControllerType { return s.typ }

// Close releases the device handle. It is idempotent and safe to call after
// a failed operation.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dev == nil {
		return nil
	}
	err := s.dev.Close()
	s.dev = nil
	return err
}

// SendSubcommand runs one blocking sub-command round trip and returns the
// 34-byte reply payload. Unsolicited status frames received while waiting
// are discarded, up to maxStatusDiscards.
func (s *Session) SendSubcommand(id, subID byte, payload []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dev == nil {
		return nil, &TransportError{Op: "write", Err: errSessionClosed}
	}

	seq := s.seq & 0x0F
	s.seq++

	buf := make([]byte, 0, 11+len(payload))
	buf = append(buf, id, seq, 0x00, 0x01, 0x40, 0x40, 0x00, 0x01, 0x40, 0x40, subID)
	buf = append(buf, payload...)

	s.logger.Debug("sub-command", "id", id, "subId", fmt.Sprintf("0x%02X", subID), "seq", seq)

	n, err := s.dev.Write(buf)
	if err != nil {
		return nil, &TransportError{Op: "write", Err: err}
	}
	if n != len(buf) {
		return nil, &TransportError{Op: "write", Err: fmt.Errorf("short write: %d of %d bytes", n, len(buf))}
	}

	frame := make([]byte, 256)
	for discarded := 0; ; discarded++ {
		if discarded >= maxStatusDiscards {
			return nil, &TransportError{Op: "read", Err: ErrTimeout}
		}
		n, err := s.dev.Read(frame, replyReadTimeout)
		if err != nil {
			return nil, &TransportError{Op: "read", Err: err}
		}
		if n == 0 {
			return nil, &TransportError{Op: "read", Err: ErrTimeout}
		}
		if frame[0] == reportStatus {
			continue
		}
		return validateReply(frame[:n], subID)
	}
}

func validateReply(frame []byte, subID byte) ([]byte, error) {
	if len(frame) != subReplyLen {
		return nil, &BadReplyError{SubID: subID, Reason: fmt.Sprintf("frame is %d bytes, want %d", len(frame), subReplyLen)}
	}
	if frame[0] != reportSubReply {
		return nil, &BadReplyError{SubID: subID, Reason: fmt.Sprintf("unexpected report ID 0x%02X", frame[0])}
	}
	if frame[14] != subID {
		return nil, &BadReplyError{SubID: subID, Reason: fmt.Sprintf("reply echoes sub-command 0x%02X", frame[14])}
	}
	if frame[13]&0x80 == 0 {
		return nil, ErrNak
	}
	return frame[15:subReplyLen], nil
}

// SetPlayerLights sets the player indicator LED pattern. The low four bits
// light LEDs steadily, the high four blink them.
func (s *Session) SetPlayerLights(pattern byte) error {
	_, err := s.SendSubcommand(reportOutput, subcmdPlayerLights, []byte{pattern})
	return err
}

// FirmwareInfo is the controller's self-description from the device info
// sub-command.
type FirmwareInfo struct {
	Major, Minor uint8
	MAC          [6]byte
}

// Version formats the firmware revision as "major.minor".
func (f FirmwareInfo) Version() string {
	return fmt.Sprintf("%d.%02d", f.Major, f.Minor)
}

// MACString formats the Bluetooth MAC address.
func (f FirmwareInfo) MACString() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		f.MAC[0], f.MAC[1], f.MAC[2], f.MAC[3], f.MAC[4], f.MAC[5])
}

// DeviceInfo queries the controller for its firmware revision and Bluetooth
// MAC address.
func (s *Session) DeviceInfo() (FirmwareInfo, error) {
	reply, err := s.SendSubcommand(reportOutput, subcmdDeviceInfo, nil)
	if err != nil {
		return FirmwareInfo{}, err
	}
	info := FirmwareInfo{Major: reply[0], Minor: reply[1]}
	copy(info.MAC[:], reply[4:10])
	return info, nil
}
