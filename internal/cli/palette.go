package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkwell/pkg/color"
	"github.com/arthur-debert/inkwell/pkg/layout"
	"github.com/arthur-debert/inkwell/pkg/markup"
)

// paletteSamples are shown when no colors are given
var paletteSamples = []string{
	"red",
	"bright_cyan",
	"dark_orange",
	"color(57)",
	"grey50",
	"#ff8800",
	"#1e90ff",
	"rgb(46,139,87)",
}

var paletteSystems = []color.System{
	color.System3Bit,
	color.System4Bit,
	color.System8Bit,
	color.SystemTrueColor,
}

func newPaletteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "palette [color...]",
		Short:   MsgPaletteShort,
		Long:    MsgPaletteLong,
		GroupID: "render",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = paletteSamples
			}
			colors := make([]color.Color, len(names))
			for i, name := range names {
				c, err := color.Parse(name)
				if err != nil {
					return err
				}
				colors[i] = c
			}

			s, err := newSession(cmd, g)
			if err != nil {
				return err
			}
			t, err := paletteTable(names, colors, s.console.Capabilities().ColorSystem)
			if err != nil {
				return err
			}
			return s.console.Print(t)
		},
	}
}

// paletteTable lays out each color degraded to every system up to detected.
// Without color support every system is listed so the mapping can still be
// read.
func paletteTable(names []string, colors []color.Color, detected color.System) (*layout.Table, error) {
	var systems []color.System
	for _, sys := range paletteSystems {
		if detected == color.SystemNone || sys <= detected {
			systems = append(systems, sys)
		}
	}

	headers := []string{"color"}
	for _, sys := range systems {
		headers = append(headers, sys.String())
	}
	t, err := layout.NewTable(nil, headers...)
	if err != nil {
		return nil, err
	}
	if err := t.SetTitle(fmt.Sprintf("Detected: [bold]%s[/]", detected)); err != nil {
		return nil, err
	}

	for i, c := range colors {
		row := []interface{}{markup.Escape(names[i])}
		for _, sys := range systems {
			d := color.Degrade(c, sys)
			row = append(row, fmt.Sprintf("[%s]██[/] %s", d, d))
		}
		if err := t.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
