package color

import (
	"fmt"
	"strings"
)

// System is a negotiated color-depth tier
type System uint8

const (
	SystemNone System = iota
	System3Bit
	System4Bit
	System8Bit
	SystemTrueColor
)

var systemNames = map[System]string{
	SystemNone:      "none",
	System3Bit:      "3bit",
	System4Bit:      "standard",
	System8Bit:      "256",
	SystemTrueColor: "truecolor",
}

func (s System) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("System(%d)", uint8(s))
}

// Palette returns the fixed palette of the system, or nil for systems
// without one.
func (s System) Palette() Palette {
	switch s {
	case System3Bit:
		return ThreeBitPalette
	case System4Bit:
		return StandardPalette
	case System8Bit:
		return EightBitPalette
	default:
		return nil
	}
}

// ParseSystem maps a configuration value to a System. "auto" and "" report
// ok=false so callers keep the probed value.
func ParseSystem(text string) (sys System, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "auto":
		return SystemNone, false, nil
	case "none", "no", "off", "mono":
		return SystemNone, true, nil
	case "3bit", "8", "windows":
		return System3Bit, true, nil
	case "4bit", "16", "standard":
		return System4Bit, true, nil
	case "8bit", "256", "eight_bit":
		return System8Bit, true, nil
	case "truecolor", "24bit", "true":
		return SystemTrueColor, true, nil
	}
	return SystemNone, false, fmt.Errorf("unknown color system %q", text)
}
