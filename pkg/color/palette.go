package color

// Palette is an ordered, fixed set of colors a color system can display
type Palette []RGB

// StandardPalette is the 16 standard ANSI colors
var StandardPalette = Palette{
	{0, 0, 0},
	{170, 0, 0},
	{0, 170, 0},
	{170, 85, 0},
	{0, 0, 170},
	{170, 0, 170},
	{0, 170, 170},
	{170, 170, 170},
	{85, 85, 85},
	{255, 85, 85},
	{85, 255, 85},
	{255, 255, 85},
	{85, 85, 255},
	{255, 85, 255},
	{85, 255, 255},
	{255, 255, 255},
}

// ThreeBitPalette is the 8 colors of a legacy console
var ThreeBitPalette = StandardPalette[:8]

// EightBitPalette is the xterm 256-color palette: the standard colors, a
// 6x6x6 color cube and a 24 step grayscale ramp.
var EightBitPalette = buildEightBitPalette()

// Color cube levels for indices 16-231
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func buildEightBitPalette() Palette {
	p := make(Palette, 0, 256)
	p = append(p, StandardPalette...)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, RGB{cubeLevels[r], cubeLevels[g], cubeLevels[b]})
			}
		}
	}
	for i := 0; i < 24; i++ {
		level := uint8(8 + 10*i)
		p = append(p, RGB{level, level, level})
	}
	return p
}

// Match returns the index of the palette entry nearest to c. Ties resolve to
// the lowest index. Matching against an empty palette is a programming error.
func (p Palette) Match(c RGB) int {
	if len(p) == 0 {
		panic("color: cannot match against an empty palette")
	}
	best := 0
	bestDist := distance(c, p[0])
	for i := 1; i < len(p); i++ {
		if d := distance(c, p[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// distance is the squared "redmean" weighted RGB distance, a cheap
// approximation of perceptual difference.
func distance(a, b RGB) int {
	rmean := (int(a.R) + int(b.R)) / 2
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return (((512 + rmean) * dr * dr) >> 8) + 4*dg*dg + (((767 - rmean) * db * db) >> 8)
}

var standardNames = [16]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright_black",
	"bright_red",
	"bright_green",
	"bright_yellow",
	"bright_blue",
	"bright_magenta",
	"bright_cyan",
	"bright_white",
}

var standardByName = func() map[string]uint8 {
	m := make(map[string]uint8, len(standardNames))
	for i, name := range standardNames {
		m[name] = uint8(i)
	}
	return m
}()

// Named entries of the 256-color palette
var eightBitByName = func() map[string]uint8 {
	m := map[string]uint8{
		"grey0":       16,
		"navy_blue":   17,
		"dark_blue":   18,
		"blue1":       21,
		"dark_green":  22,
		"green1":      46,
		"cyan1":       51,
		"red1":        196,
		"magenta1":    201,
		"orange1":     214,
		"gold1":       220,
		"yellow1":     226,
		"grey100":     231,
		"dark_orange": 208,
	}
	grays := []string{
		"grey3", "grey7", "grey11", "grey15", "grey19", "grey23",
		"grey27", "grey30", "grey35", "grey39", "grey42", "grey46",
		"grey50", "grey54", "grey58", "grey62", "grey66", "grey70",
		"grey74", "grey78", "grey82", "grey85", "grey89", "grey93",
	}
	for i, name := range grays {
		m[name] = uint8(232 + i)
	}
	for name, n := range m {
		if len(name) > 4 && name[:4] == "grey" {
			m["gray"+name[4:]] = n
		}
	}
	return m
}()

// Names returns every color name Parse accepts, standard names first
func Names() []string {
	names := make([]string, 0, len(standardNames)+len(eightBitByName))
	names = append(names, standardNames[:]...)
	for name := range eightBitByName {
		names = append(names, name)
	}
	return names
}
