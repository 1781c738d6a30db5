package joycon

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is one RGB triple as stored in controller flash: three single bytes,
// no alpha.
type Color struct {
	R, G, B uint8
}

// ParseColor parses a hex color string of the form "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{b[0], b[1], b[2]}, nil
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colors is the full palette block a controller stores at flash offset
// 0x6050: body, buttons, then the two grips, three bytes each.
type Colors struct {
	Body      Color
	Buttons   Color
	LeftGrip  Color
	RightGrip Color
}

// ColorsBlockLen is the serialized size of a Colors palette.
const ColorsBlockLen = 12

// Encode serializes the palette to its 12-byte flash layout. When withGrips
// is false (any controller but the Pro Controller) the last six bytes are
// the 0xFF sentinel regardless of the grip values; the console treats 0xFF×6
// as "no grip colors". The result is always exactly 12 bytes.
func (c Colors) Encode(withGrips bool) [ColorsBlockLen]byte {
	var b [ColorsBlockLen]byte
	b[0], b[1], b[2] = c.Body.R, c.Body.G, c.Body.B
	b[3], b[4], b[5] = c.Buttons.R, c.Buttons.G, c.Buttons.B
	if withGrips {
		b[6], b[7], b[8] = c.LeftGrip.R, c.LeftGrip.G, c.LeftGrip.B
		b[9], b[10], b[11] = c.RightGrip.R, c.RightGrip.G, c.RightGrip.B
	} else {
		for i := 6; i < ColorsBlockLen; i++ {
			b[i] = 0xFF
		}
	}
	return b
}

// DecodeColors parses a 12-byte flash palette block.
func DecodeColors(b []byte) (Colors, error) {
	if len(b) != ColorsBlockLen {
		return Colors{}, fmt.Errorf("color block is %d bytes, want %d", len(b), ColorsBlockLen)
	}
	return Colors{
		Body:      Color{b[0], b[1], b[2]},
		Buttons:   Color{b[3], b[4], b[5]},
		LeftGrip:  Color{b[6], b[7], b[8]},
		RightGrip: Color{b[9], b[10], b[11]},
	}, nil
}
