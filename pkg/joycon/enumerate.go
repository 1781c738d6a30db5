package joycon

// ListControllers walks the HID listing for each supported controller type
// and returns a descriptor per wireless-paired unit. USB-wired units report
// the placeholder serial and are skipped: the sub-command channel only works
// over a wireless pairing. An empty result is not an error, and no handles
// are retained; call again to refresh.
func ListControllers(t Transport) ([]Descriptor, error) {
	var out []Descriptor
	for _, typ := range ControllerTypes {
		infos, err := t.Enumerate(VendorNintendo, typ.ProductID())
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if info.Serial == wiredSerial {
				continue
			}
			out = append(out, Descriptor{
				Type:   typ,
				Serial: info.Serial,
				Path:   info.Path,
			})
		}
	}
	return out, nil
}
