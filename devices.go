package resval

import (
	"sort"
	"strings"
)

// Device is a reference screen used for previews and tests.
type Device struct {
	Name       string
	Dimensions Dimensions
	Platform   Platform
	Notch      bool
}

// Reference devices, portrait. IPhoneX is the default design target.
var (
	IPhoneSE = Device{
		Name:       "iphone-se",
		Dimensions: Dimensions{Width: 375, Height: 667},
		Platform:   Platform{OS: OSIOS},
	}
	IPhoneX = Device{
		Name:       "iphone-x",
		Dimensions: Dimensions{Width: 375, Height: 812},
		Platform:   Platform{OS: OSIOS},
		Notch:      true,
	}
	IPhone11 = Device{
		Name:       "iphone-11",
		Dimensions: Dimensions{Width: 414, Height: 896},
		Platform:   Platform{OS: OSIOS},
		Notch:      true,
	}
	Pixel5 = Device{
		Name:       "pixel-5",
		Dimensions: Dimensions{Width: 393, Height: 851},
		Platform:   Platform{OS: OSAndroid, StatusBarHeight: 28},
		Notch:      true,
	}
	GalaxyS8 = Device{
		Name:       "galaxy-s8",
		Dimensions: Dimensions{Width: 360, Height: 740},
		Platform:   Platform{OS: OSAndroid},
	}
)

// Devices lists the reference devices by name.
var Devices = map[string]Device{
	IPhoneSE.Name: IPhoneSE,
	IPhoneX.Name:  IPhoneX,
	IPhone11.Name: IPhone11,
	Pixel5.Name:   Pixel5,
	GalaxyS8.Name: GalaxyS8,
}

// LookupDevice finds a reference device by case-insensitive name.
func LookupDevice(name string) (Device, bool) {
	d, ok := Devices[strings.ToLower(name)]
	return d, ok
}

// DeviceNames returns the reference device names, sorted.
func DeviceNames() []string {
	names := make([]string, 0, len(Devices))
	for name := range Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Landscape returns d rotated a quarter turn.
func (d Device) Landscape() Device {
	d.Dimensions = Dimensions{Width: d.Dimensions.Height, Height: d.Dimensions.Width}
	return d
}

// Engine builds an Engine backed by a sync MemoryProvider showing d.
// Useful for previews and tests.
func (d Device) Engine() (*Engine, *MemoryProvider) {
	p := NewSyncMemoryProvider(d.Dimensions)
	return New(p).Platform(d.Platform).Probe(StaticProbe(d.Notch)).SyncMode(), p
}
