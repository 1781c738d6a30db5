// Package joycon speaks the Nintendo Switch controller sub-command protocol
// over HID and exposes the pieces of it needed to read and write the color
// scheme stored in a controller's flash memory.
package joycon

// VendorNintendo is the USB vendor ID shared by all Switch controllers.
const VendorNintendo = 0x057E

// wiredSerial is reported by units connected over USB instead of a wireless
// pairing. The sub-command channel is not usable on those.
const wiredSerial = "000000000001"

// ControllerType identifies one of the three supported controller families.
type ControllerType int

const (
	JoyConLeft ControllerType = iota
	JoyConRight
	ProController
)

// ControllerTypes lists every supported type, in enumeration order.
var ControllerTypes = []ControllerType{JoyConLeft, JoyConRight, ProController}

// ProductID returns the USB product ID for the controller type.
func (t ControllerType) ProductID() uint16 {
	switch t {
	case JoyConLeft:
		return 0x2006
	case JoyConRight:
		return 0x2007
	case ProController:
		return 0x2009
	}
	return 0
}

// HasGripColors reports whether the controller has the two extra grip color
// fields. Only the Pro Controller does.
func (t ControllerType) HasGripColors() bool {
	return t == ProController
}

func (t ControllerType) String() string {
	switch t {
	case JoyConLeft:
		return "Joy-Con (L)"
	case JoyConRight:
		return "Joy-Con (R)"
	case ProController:
		return "Pro Controller"
	}
	return "unknown controller"
}

// Descriptor identifies an enumerated controller. It holds no live resources;
// it is only valid for as long as the underlying HID listing stays unchanged.
type Descriptor struct {
	Type   ControllerType
	Serial string
	Path   string
}
