package color

import "sync"

type degradeKey struct {
	rgb    RGB
	system System
}

// Palette matches are memoised; Degrade is pure so the cache never needs
// invalidation.
var degradeCache sync.Map // degradeKey -> Color

// Degrade maps c onto the target color system. Truecolor passes through,
// SystemNone yields the default color (no escape code), and the palette
// systems keep colors they can already display and otherwise pick the nearest
// palette entry.
func Degrade(c Color, target System) Color {
	if c.IsDefault() {
		return c
	}
	switch target {
	case SystemTrueColor:
		return c
	case SystemNone:
		return Default()
	case System8Bit:
		if c.Type != TypeTrueColor {
			return c
		}
	case System4Bit:
		switch {
		case c.Type == TypeStandard:
			return c
		case c.Type == TypeEightBit && c.Number < 16:
			return Standard(c.Number)
		}
	case System3Bit:
		if c.Type == TypeStandard || c.Type == TypeEightBit {
			if c.Number < 8 {
				return Standard(c.Number)
			}
			if c.Number < 16 {
				return Standard(c.Number - 8)
			}
		}
	}
	return nearest(c.RGB, target)
}

func nearest(rgb RGB, target System) Color {
	key := degradeKey{rgb: rgb, system: target}
	if cached, ok := degradeCache.Load(key); ok {
		return cached.(Color)
	}

	idx := target.Palette().Match(rgb)
	var out Color
	if target == System8Bit {
		out = EightBit(uint8(idx))
	} else {
		out = Standard(uint8(idx))
	}
	degradeCache.Store(key, out)
	return out
}
