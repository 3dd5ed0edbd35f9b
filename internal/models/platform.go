package models

import (
	"fmt"
	"strings"
)

// Platform is a distribution target an item may be downloadable on
type Platform int

const (
	PlatformWindows Platform = iota
	PlatformMac
	PlatformAndroid
	PlatformIOS
)

type platformInfo struct {
	name string
	link func(*Item) *string
}

// platforms maps each platform to its display name and link field.
var platforms = [...]platformInfo{
	PlatformWindows: {"Windows", func(i *Item) *string { return i.LinkWindows }},
	PlatformMac:     {"Mac", func(i *Item) *string { return i.LinkMac }},
	PlatformAndroid: {"Android", func(i *Item) *string { return i.LinkAndroid }},
	PlatformIOS:     {"iOS", func(i *Item) *string { return i.LinkIOS }},
}

// AllPlatforms returns every platform in display order
func AllPlatforms() []Platform {
	return []Platform{PlatformAndroid, PlatformMac, PlatformWindows, PlatformIOS}
}

// ParsePlatform resolves a platform name case-insensitively
func ParsePlatform(name string) (Platform, error) {
	for p, info := range platforms {
		if strings.EqualFold(strings.TrimSpace(name), info.name) {
			return Platform(p), nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", name)
}

func (p Platform) valid() bool {
	return p >= 0 && int(p) < len(platforms)
}

func (p Platform) String() string {
	if !p.valid() {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platforms[p].name
}

func (p Platform) link(i *Item) *string {
	if !p.valid() {
		return nil
	}
	return platforms[p].link(i)
}

// MarshalText implements encoding.TextMarshaler
func (p Platform) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("invalid platform %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
