package joycon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jccolor/pkg/joycon"
)

func TestReadFlash(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	dev := &mockDevice{replies: [][]byte{flashReadReply(0x6050, data)}}
	s := openTestSession(t, joycon.ProController, dev)

	got, err := s.ReadFlash(0x6050, 4)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.Len(t, dev.writes, 1)
	// 11-byte header, then LE offset and length.
	req := dev.writes[0]
	assert.Equal(t, byte(0x10), req[10])
	assert.Equal(t, []byte{0x50, 0x60, 0x00, 0x00, 0x04}, req[11:])
}

func TestReadFlashEchoMismatch(t *testing.T) {
	tests := []struct {
		name  string
		reply []byte
	}{
		{name: "offset mismatch", reply: flashReadReply(0x6060, make([]byte, 4))},
		{name: "length mismatch", reply: flashReadReply(0x6050, make([]byte, 5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &mockDevice{replies: [][]byte{tt.reply}}
			s := openTestSession(t, joycon.ProController, dev)

			_, err := s.ReadFlash(0x6050, 4)
			var verifyErr *joycon.VerificationError
			assert.ErrorAs(t, err, &verifyErr)
		})
	}
}

func TestWriteFlash(t *testing.T) {
	dev := &mockDevice{replies: [][]byte{subReply(0x11, true, []byte{0x00})}}
	s := openTestSession(t, joycon.ProController, dev)

	require.NoError(t, s.WriteFlash(0x601B, []byte{0x02}))

	require.Len(t, dev.writes, 1)
	req := dev.writes[0]
	assert.Equal(t, byte(0x11), req[10])
	assert.Equal(t, []byte{0x1B, 0x60, 0x00, 0x00, 0x01, 0x02}, req[11:])
}

func TestWriteFlashStatusFailure(t *testing.T) {
	dev := &mockDevice{replies: [][]byte{subReply(0x11, true, []byte{0x01})}}
	s := openTestSession(t, joycon.ProController, dev)

	err := s.WriteFlash(0x601B, []byte{0x02})
	var verifyErr *joycon.VerificationError
	assert.ErrorAs(t, err, &verifyErr)
}

func TestFlashTransferLimit(t *testing.T) {
	dev := &mockDevice{}
	s := openTestSession(t, joycon.ProController, dev)

	_, err := s.ReadFlash(0x6000, 0x1E)
	assert.ErrorIs(t, err, joycon.ErrPayloadTooLarge)

	err = s.WriteFlash(0x6000, make([]byte, 0x1E))
	assert.ErrorIs(t, err, joycon.ErrPayloadTooLarge)

	// Oversized requests must be rejected before any traffic happens.
	assert.Empty(t, dev.writes)
}

func TestSessionColors(t *testing.T) {
	block := []byte{
		0x1E, 0xDC, 0x00,
		0x00, 0x28, 0x28,
		0xE6, 0xE6, 0xE6,
		0x32, 0x32, 0x32,
	}
	dev := &mockDevice{replies: [][]byte{flashReadReply(0x6050, block)}}
	s := openTestSession(t, joycon.ProController, dev)

	got, err := s.Colors()
	require.NoError(t, err)
	assert.Equal(t, joycon.Colors{
		Body:      joycon.Color{0x1E, 0xDC, 0x00},
		Buttons:   joycon.Color{0x00, 0x28, 0x28},
		LeftGrip:  joycon.Color{0xE6, 0xE6, 0xE6},
		RightGrip: joycon.Color{0x32, 0x32, 0x32},
	}, got)
}

func TestSessionSetColors(t *testing.T) {
	palette := joycon.Colors{
		Body:      joycon.Color{0x1E, 0xDC, 0x00},
		Buttons:   joycon.Color{0x00, 0x28, 0x28},
		LeftGrip:  joycon.Color{0xE6, 0xE6, 0xE6},
		RightGrip: joycon.Color{0x32, 0x32, 0x32},
	}

	t.Run("pro controller keeps grips", func(t *testing.T) {
		dev := &mockDevice{replies: [][]byte{subReply(0x11, true, []byte{0x00})}}
		s := openTestSession(t, joycon.ProController, dev)

		require.NoError(t, s.SetColors(palette))
		req := dev.writes[0]
		assert.Equal(t, []byte{0xE6, 0xE6, 0xE6, 0x32, 0x32, 0x32}, req[22:])
	})

	t.Run("joycon writes grip sentinel", func(t *testing.T) {
		dev := &mockDevice{replies: [][]byte{subReply(0x11, true, []byte{0x00})}}
		s := openTestSession(t, joycon.JoyConLeft, dev)

		require.NoError(t, s.SetColors(palette))
		req := dev.writes[0]
		assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, req[22:])
	})
}

func TestGripColorsNeedEnable(t *testing.T) {
	tests := []struct {
		name    string
		flag    byte
		want    bool
		invalid bool
	}{
		{name: "stored but inactive", flag: 1, want: true},
		{name: "already active", flag: 2, want: false},
		{name: "unknown setting", flag: 3, invalid: true},
		{name: "unknown zero", flag: 0, invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &mockDevice{replies: [][]byte{flashReadReply(0x601B, []byte{tt.flag})}}
			s := openTestSession(t, joycon.ProController, dev)

			got, err := s.GripColorsNeedEnable()
			if tt.invalid {
				var stateErr *joycon.InvalidStateError
				require.ErrorAs(t, err, &stateErr)
				assert.Equal(t, tt.flag, stateErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGripColorsOnJoyCon(t *testing.T) {
	dev := &mockDevice{}
	s := openTestSession(t, joycon.JoyConRight, dev)

	need, err := s.GripColorsNeedEnable()
	require.NoError(t, err)
	assert.False(t, need)

	assert.Error(t, s.EnableGripColors())
	// Neither call may touch the device on a controller without grips.
	assert.Empty(t, dev.writes)
}

func TestEnableGripColors(t *testing.T) {
	dev := &mockDevice{replies: [][]byte{subReply(0x11, true, []byte{0x00})}}
	s := openTestSession(t, joycon.ProController, dev)

	require.NoError(t, s.EnableGripColors())
	req := dev.writes[0]
	assert.Equal(t, []byte{0x1B, 0x60, 0x00, 0x00, 0x01, 0x02}, req[11:])
}

func TestSessionSerial(t *testing.T) {
	raw := append([]byte("XCW10012345678"), 0x00, 0x00)
	dev := &mockDevice{replies: [][]byte{flashReadReply(0x6002, raw[:14])}}
	s := openTestSession(t, joycon.ProController, dev)

	serial, err := s.Serial()
	require.NoError(t, err)
	assert.Equal(t, "XCW10012345678", serial)
}
