package joycon

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Flash layout the color tooling touches. Offsets are into the controller's
// SPI flash, reached through the vendor read/write sub-commands rather than
// any direct bus access.
const (
	flashSerialOffset = 0x6002
	flashSerialLen    = 0x0E
	flashGripEnable   = 0x601B
	flashColorsOffset = 0x6050

	gripColorsInactive = 1
	gripColorsActive   = 2
)

// FlashMaxTransfer is the largest read or write the controller's transfer
// buffer accepts in one sub-command.
const FlashMaxTransfer = 0x1D

// ReadFlash reads length bytes of SPI flash starting at offset. The reply
// echoes the requested offset and length; a mismatch means the reply belongs
// to some other request and the data cannot be trusted.
func (s *Session) ReadFlash(offset uint32, length byte) ([]byte, error) {
	if length > FlashMaxTransfer {
		return nil, fmt.Errorf("read of %d bytes: %w", length, ErrPayloadTooLarge)
	}
	var req [5]byte
	binary.LittleEndian.PutUint32(req[0:4], offset)
	req[4] = length

	reply, err := s.SendSubcommand(reportOutput, subcmdFlashRead, req[:])
	if err != nil {
		return nil, err
	}
	if got := binary.LittleEndian.Uint32(reply[0:4]); got != offset {
		return nil, &VerificationError{Op: "read", Detail: fmt.Sprintf("offset echo 0x%X, want 0x%X", got, offset)}
	}
	if reply[4] != length {
		return nil, &VerificationError{Op: "read", Detail: fmt.Sprintf("length echo %d, want %d", reply[4], length)}
	}
	return reply[5 : 5+int(length)], nil
}

// WriteFlash writes data to SPI flash at offset.
func (s *Session) WriteFlash(offset uint32, data []byte) error {
	if len(data) > FlashMaxTransfer {
		return fmt.Errorf("write of %d bytes: %w", len(data), ErrPayloadTooLarge)
	}
	req := make([]byte, 5, 5+len(data))
	binary.LittleEndian.PutUint32(req[0:4], offset)
	req[4] = byte(len(data))
	req = append(req, data...)

	reply, err := s.SendSubcommand(reportOutput, subcmdFlashWrite, req)
	if err != nil {
		return err
	}
	if reply[0] != 0x00 {
		return &VerificationError{Op: "write", Detail: fmt.Sprintf("status byte 0x%02X", reply[0])}
	}
	return nil
}

// Colors reads the controller's stored color palette.
func (s *Session) Colors() (Colors, error) {
	b, err := s.ReadFlash(flashColorsOffset, ColorsBlockLen)
	if err != nil {
		return Colors{}, err
	}
	return DecodeColors(b)
}

// SetColors writes the color palette to flash. For controllers without grip
// colors the grip fields are serialized as the 0xFF sentinel; the caller's
// grip values are ignored.
func (s *Session) SetColors(c Colors) error {
	block := c.Encode(s.typ.HasGripColors())
	return s.WriteFlash(flashColorsOffset, block[:])
}

// GripColorsNeedEnable reports whether grip colors are stored in flash but
// not yet activated, in which case the console ignores them until
// EnableGripColors is called. Controllers without grip colors never need
// enabling and are answered without touching the device.
func (s *Session) GripColorsNeedEnable() (bool, error) {
	if !s.typ.HasGripColors() {
		return false, nil
	}
	b, err := s.ReadFlash(flashGripEnable, 1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case gripColorsInactive:
		return true, nil
	case gripColorsActive:
		return false, nil
	default:
		return false, &InvalidStateError{Offset: flashGripEnable, Value: b[0]}
	}
}

// EnableGripColors activates the grip color fields. Calling it for a
// controller without grip colors is a caller bug.
func (s *Session) EnableGripColors() error {
	if !s.typ.HasGripColors() {
		return errors.New("controller has no grip colors")
	}
	return s.WriteFlash(flashGripEnable, []byte{gripColorsActive})
}

// Serial reads the controller's serial number from flash, trimming the
// padding bytes unprogrammed units carry.
func (s *Session) Serial() (string, error) {
	b, err := s.ReadFlash(flashSerialOffset, flashSerialLen)
	if err != nil {
		return "", err
	}
	return strings.Trim(string(b), "\x00\xff"), nil
}
